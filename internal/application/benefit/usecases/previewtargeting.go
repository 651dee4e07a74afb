package usecases

import (
	"context"
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/domain/targeting"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

type PreviewTargetingQuery struct {
	CompanyID   uint
	Kind        string
	Recurrence  string
	CustomDates []biztime.Date
	Shift       string
	StartDate   biztime.Date
	EndDate     biztime.Date
	ComboType   string
	// SelectedIDs is the admin's current check-marks, partitioned against
	// the filtered candidates rather than silently pruned.
	SelectedIDs []uint
}

type PreviewTargetingResult struct {
	StageCounts     []targeting.StageCount
	Candidates      []*employee.Employee
	CandidateIDs    []uint
	Partition       targeting.Partition
	TotalDays       int
	PerEmployeeDays map[uint]int
	EstimateCents   int64
	Currency        string
}

type PreviewTargetingUseCase struct {
	employeeRepo employee.Repository
	configs      benefit.ConfigProvider
	logger       logger.Interface
	now          func() time.Time
}

func NewPreviewTargetingUseCase(
	employeeRepo employee.Repository,
	configs benefit.ConfigProvider,
	logger logger.Interface,
) *PreviewTargetingUseCase {
	return &PreviewTargetingUseCase{
		employeeRepo: employeeRepo,
		configs:      configs,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *PreviewTargetingUseCase) Execute(ctx context.Context, q PreviewTargetingQuery) (*PreviewTargetingResult, error) {
	if q.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}
	kind := vo.BenefitKind(q.Kind)
	if !kind.IsValid() {
		return nil, errors.NewValidationError("invalid benefit kind")
	}

	cfg, err := uc.configs.Get(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to load business config", err.Error())
	}

	rec := schedule.NewEveryDayRecurrence()
	if kind.IsLunch() {
		recKind, err := schedule.ParseRecurrenceKind(q.Recurrence)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		rec, err = schedule.NewRecurrence(recKind, q.CustomDates)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	employees, err := uc.employeeRepo.ListByCompany(ctx, q.CompanyID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load employees", err.Error())
	}

	result := targeting.Run(employees, targeting.Criteria{
		Kind:       kind,
		Recurrence: rec,
		Shift:      employee.ShiftType(q.Shift),
	}, cfg)

	candidateIDs := result.CandidateIDs()
	partition := targeting.NewSelection(q.SelectedIDs).Partition(candidateIDs)

	preview := &PreviewTargetingResult{
		StageCounts:  result.StageCounts,
		Candidates:   result.Candidates,
		CandidateIDs: candidateIDs,
		Partition:    partition,
		Currency:     cfg.Currency,
	}

	if q.StartDate.IsZero() || q.EndDate.IsZero() {
		return preview, nil
	}

	// Cost estimate over the visible selection (or all candidates when
	// nothing is checked yet). Lunch uses days x rate x heads; compensation
	// sums each employee's own day count because calendars differ.
	targetIDs := partition.Visible
	if len(q.SelectedIDs) == 0 {
		targetIDs = candidateIDs
	}
	targetSet := make(map[uint]*employee.Employee, len(result.Candidates))
	for _, e := range result.Candidates {
		targetSet[e.ID] = e
	}

	rate, err := benefit.DailyRate(kind, vo.ComboType(q.ComboType), 0, cfg)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	perDays := make(map[uint]int, len(targetIDs))
	if kind.IsLunch() {
		days := schedule.CountQualifyingDays(cfg.DefaultWorkingDays, rec, q.StartDate, q.EndDate)
		for _, id := range targetIDs {
			if e, ok := targetSet[id]; ok {
				d := schedule.CountQualifyingDays(
					schedule.EffectiveWorkingDays(e.WorkingDays, cfg.DefaultWorkingDays), rec, q.StartDate, q.EndDate)
				perDays[id] = d
			}
		}
		preview.TotalDays = days
		preview.EstimateCents = benefit.TotalCost(days, rate, len(targetIDs)).AmountInCents()
	} else {
		total := int64(0)
		for _, id := range targetIDs {
			e, ok := targetSet[id]
			if !ok {
				continue
			}
			d := schedule.CountQualifyingDays(
				schedule.EffectiveWorkingDays(e.WorkingDays, cfg.DefaultWorkingDays), rec, q.StartDate, q.EndDate)
			perDays[id] = d
			total += benefit.AutoTotalBudget(d, rate).AmountInCents()
		}
		preview.EstimateCents = total
	}
	preview.PerEmployeeDays = perDays

	return preview, nil
}
