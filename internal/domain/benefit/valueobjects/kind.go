package valueobjects

// BenefitKind identifies which benefit program a record belongs to: daily
// lunch combo deliveries or a cash-like compensation budget. An employee
// may hold at most one active benefit, of one kind, at a time.
type BenefitKind string

const (
	KindLunch        BenefitKind = "lunch"
	KindCompensation BenefitKind = "compensation"
)

func (k BenefitKind) IsValid() bool {
	return k == KindLunch || k == KindCompensation
}

func (k BenefitKind) IsLunch() bool {
	return k == KindLunch
}

func (k BenefitKind) IsCompensation() bool {
	return k == KindCompensation
}

func (k BenefitKind) String() string {
	return string(k)
}

var ValidKinds = map[BenefitKind]bool{
	KindLunch:        true,
	KindCompensation: true,
}
