package benefit

// Machine-readable reason codes surfaced to callers. State conflict codes
// ride on AppError.Reason; eligibility codes are returned as values, never
// as errors, so bulk callers can keep processing other employees.
const (
	// State conflicts.
	ReasonCutoffPassed        = "cutoff_passed"
	ReasonFreezeQuotaExceeded = "freeze_quota_exceeded"
	ReasonAlreadyCancelled    = "already_cancelled"
	ReasonAlreadyCompleted    = "already_completed"
	ReasonNotFrozen           = "not_frozen"
	ReasonNotPaused           = "not_paused"
	ReasonNotActive           = "not_active"
	ReasonDayConsumed         = "day_consumed"

	// Eligibility rejections (EligibilityResult.Reason).
	ReasonServiceTypeLunchOnly        = "service_type_lunch_only"
	ReasonServiceTypeCompensationOnly = "service_type_compensation_only"
	ReasonServiceTypeUnset            = "service_type_unset"
	ReasonAlreadyHasLunch             = "already_has_lunch"
	ReasonAlreadyHasCompensation      = "already_has_compensation"
	ReasonNoBusinessDays              = "no_business_days"
	ReasonRecurrenceIncompatible      = "recurrence_incompatible"

	// Bulk per-item failures that are not eligibility rejections.
	ReasonBelowMinDays     = "below_min_subscription_days"
	ReasonPersistenceError = "persistence_error"
)
