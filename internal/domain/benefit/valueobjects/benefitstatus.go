package valueobjects

// BenefitStatus is the lifecycle state of a benefit aggregate.
type BenefitStatus string

const (
	BenefitStatusDraft     BenefitStatus = "draft"
	BenefitStatusActive    BenefitStatus = "active"
	BenefitStatusPaused    BenefitStatus = "paused"
	BenefitStatusCancelled BenefitStatus = "cancelled"
	BenefitStatusCompleted BenefitStatus = "completed"
)

func (s BenefitStatus) String() string {
	return string(s)
}

func (s BenefitStatus) IsValid() bool {
	return ValidBenefitStatuses[s]
}

// IsCurrent reports whether the benefit still occupies the employee's
// active slot for its kind (at most one per employee and kind).
func (s BenefitStatus) IsCurrent() bool {
	return s == BenefitStatusActive || s == BenefitStatusPaused
}

func (s BenefitStatus) IsTerminal() bool {
	return s == BenefitStatusCancelled || s == BenefitStatusCompleted
}

// CanTransitionTo reports whether the lifecycle allows moving to target.
func (s BenefitStatus) CanTransitionTo(target BenefitStatus) bool {
	transitions := map[BenefitStatus][]BenefitStatus{
		BenefitStatusDraft:     {BenefitStatusActive},
		BenefitStatusActive:    {BenefitStatusPaused, BenefitStatusCancelled, BenefitStatusCompleted},
		BenefitStatusPaused:    {BenefitStatusActive, BenefitStatusCancelled},
		BenefitStatusCancelled: {},
		BenefitStatusCompleted: {},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

var ValidBenefitStatuses = map[BenefitStatus]bool{
	BenefitStatusDraft:     true,
	BenefitStatusActive:    true,
	BenefitStatusPaused:    true,
	BenefitStatusCancelled: true,
	BenefitStatusCompleted: true,
}
