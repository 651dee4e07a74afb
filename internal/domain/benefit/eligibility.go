package benefit

import (
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
)

// EligibilityResult is the typed outcome of an eligibility check. Business
// rule rejections are values, not errors: bulk callers collect them per
// employee and keep going.
type EligibilityResult struct {
	OK     bool
	Reason string
}

func eligible() EligibilityResult {
	return EligibilityResult{OK: true}
}

func rejected(reason string) EligibilityResult {
	return EligibilityResult{Reason: reason}
}

// CheckEligibility decides whether a benefit of the requested kind may be
// created for the employee. Rules run in fixed order and short-circuit on
// the first failure:
//
//  1. service type must match the requested kind,
//  2. no active benefit of the requested kind may exist,
//  3. lunch only: the effective calendar must contain a business day,
//  4. lunch only: the recurrence pattern must be achievable on the calendar.
//
// The recurrence argument is ignored for compensation, which is always
// daily over working days.
func CheckEligibility(emp *employee.Employee, kind vo.BenefitKind, rec schedule.Recurrence, cfg BusinessConfig) EligibilityResult {
	switch emp.ServiceType {
	case employee.ServiceUnset:
		return rejected(ReasonServiceTypeUnset)
	case employee.ServiceLunch:
		if kind != vo.KindLunch {
			return rejected(ReasonServiceTypeLunchOnly)
		}
	case employee.ServiceCompensation:
		if kind != vo.KindCompensation {
			return rejected(ReasonServiceTypeCompensationOnly)
		}
	}

	if kind.IsLunch() && emp.ActiveLunchBenefitID != nil {
		return rejected(ReasonAlreadyHasLunch)
	}
	if kind.IsCompensation() && emp.ActiveCompensationID != nil {
		return rejected(ReasonAlreadyHasCompensation)
	}

	if kind.IsLunch() {
		workingDays := schedule.EffectiveWorkingDays(emp.WorkingDays, cfg.DefaultWorkingDays)
		if workingDays.Intersect(schedule.MondayToFriday).IsEmpty() {
			return rejected(ReasonNoBusinessDays)
		}
		if !rec.CompatibleWith(workingDays) {
			return rejected(ReasonRecurrenceIncompatible)
		}
	}

	return eligible()
}
