// Package targeting implements the bulk-assignment candidate pipeline: a
// fixed sequence of filters over a company's employees, with per-stage pass
// counts so an empty candidate list can always be explained, plus the
// selection partition that keeps admin check-marks stable across filter
// changes.
package targeting

import (
	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
)

// Stage names, in pipeline order.
const (
	StageIsActive        = "is_active"
	StageInviteAccepted  = "invite_accepted"
	StageServiceType     = "service_type"
	StageNoActiveBenefit = "no_active_benefit"
	StageWorkingDays     = "working_days"
	StageRecurrence      = "recurrence"
	StageShift           = "shift"
)

// Criteria is the admin's current filter selection for a bulk assignment.
type Criteria struct {
	Kind       vo.BenefitKind
	Recurrence schedule.Recurrence
	Shift      employee.ShiftType
}

// StageCount reports how many candidates survived a pipeline stage.
type StageCount struct {
	Stage  string `json:"stage"`
	Passed int    `json:"passed"`
}

// Result is the filtered candidate set plus the per-stage diagnostics.
type Result struct {
	Candidates  []*employee.Employee
	StageCounts []StageCount
}

// CandidateIDs returns the ids of the surviving candidates.
func (r Result) CandidateIDs() []uint {
	ids := make([]uint, 0, len(r.Candidates))
	for _, e := range r.Candidates {
		ids = append(ids, e.ID)
	}
	return ids
}

type stage struct {
	name string
	pass func(*employee.Employee) bool
}

// Run applies the pipeline in fixed stage order and records the pass count
// after each stage. The input snapshot is never mutated.
func Run(employees []*employee.Employee, criteria Criteria, cfg benefit.BusinessConfig) Result {
	stages := buildStages(criteria, cfg)

	current := employees
	counts := make([]StageCount, 0, len(stages))
	for _, st := range stages {
		next := make([]*employee.Employee, 0, len(current))
		for _, e := range current {
			if st.pass(e) {
				next = append(next, e)
			}
		}
		current = next
		counts = append(counts, StageCount{Stage: st.name, Passed: len(current)})
	}

	return Result{Candidates: current, StageCounts: counts}
}

func buildStages(criteria Criteria, cfg benefit.BusinessConfig) []stage {
	kind := criteria.Kind

	return []stage{
		{StageIsActive, func(e *employee.Employee) bool {
			return e.IsActive
		}},
		{StageInviteAccepted, func(e *employee.Employee) bool {
			return e.InviteStatus == employee.InviteAccepted
		}},
		{StageServiceType, func(e *employee.Employee) bool {
			switch kind {
			case vo.KindLunch:
				return e.ServiceType == employee.ServiceLunch
			case vo.KindCompensation:
				return e.ServiceType == employee.ServiceCompensation
			default:
				return false
			}
		}},
		{StageNoActiveBenefit, func(e *employee.Employee) bool {
			if kind.IsLunch() {
				return e.ActiveLunchBenefitID == nil
			}
			return e.ActiveCompensationID == nil
		}},
		{StageWorkingDays, func(e *employee.Employee) bool {
			days := schedule.EffectiveWorkingDays(e.WorkingDays, cfg.DefaultWorkingDays)
			if kind.IsLunch() {
				return !days.Intersect(schedule.MondayToFriday).IsEmpty()
			}
			return !days.IsEmpty()
		}},
		{StageRecurrence, func(e *employee.Employee) bool {
			if !kind.IsLunch() {
				return true
			}
			days := schedule.EffectiveWorkingDays(e.WorkingDays, cfg.DefaultWorkingDays)
			return criteria.Recurrence.CompatibleWith(days)
		}},
		{StageShift, func(e *employee.Employee) bool {
			if criteria.Shift == "" {
				return true
			}
			return e.ShiftType == criteria.Shift
		}},
	}
}
