// Package usecases orchestrates the benefit engine: request validation,
// per-employee eligibility, schedule expansion, pricing and persistence.
// Every entry point resolves now and BusinessConfig once and passes them
// down, so batch operations never straddle a cutoff boundary mid-flight.
package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/domain/shared/events"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/goroutine"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// bulkWorkers bounds the per-employee parallelism of bulk creation.
const bulkWorkers = 8

type CreateBenefitsCommand struct {
	Kind            string
	EmployeeIDs     []uint
	StartDate       biztime.Date
	EndDate         biztime.Date
	Recurrence      string
	CustomDates     []biztime.Date
	ComboType       string
	DailyLimitCents int64
	// TotalBudgetCents overrides the auto-computed compensation budget.
	TotalBudgetCents *int64
	CarryOver        bool
	AutoRenew        bool
}

// BenefitError is one employee's failure inside a bulk result.
type BenefitError struct {
	EmployeeID uint
	Reason     string
	Message    string
}

// CreateBenefitsResult reports partial success: created N of M.
type CreateBenefitsResult struct {
	Requested int
	Created   []*benefit.Benefit
	Errors    []BenefitError
}

type CreateBenefitsUseCase struct {
	benefitRepo  benefit.Repository
	employeeRepo employee.Repository
	configs      benefit.ConfigProvider
	publisher    events.EventPublisher
	logger       logger.Interface
	now          func() time.Time
}

func NewCreateBenefitsUseCase(
	benefitRepo benefit.Repository,
	employeeRepo employee.Repository,
	configs benefit.ConfigProvider,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreateBenefitsUseCase {
	return &CreateBenefitsUseCase{
		benefitRepo:  benefitRepo,
		employeeRepo: employeeRepo,
		configs:      configs,
		publisher:    publisher,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *CreateBenefitsUseCase) Execute(ctx context.Context, cmd CreateBenefitsCommand) (*CreateBenefitsResult, error) {
	uc.logger.Infow("executing create benefits use case",
		"kind", cmd.Kind, "employees", len(cmd.EmployeeIDs),
		"start", cmd.StartDate.String(), "end", cmd.EndDate.String())

	// One consistent now for the whole batch.
	now := uc.now()

	cfg, err := uc.configs.Get(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to load business config", err.Error())
	}

	kind, rec, err := uc.validateCommand(cmd, now)
	if err != nil {
		uc.logger.Warnw("invalid create benefits command", "error", err)
		return nil, err
	}

	employees, err := uc.employeeRepo.GetByIDs(ctx, cmd.EmployeeIDs)
	if err != nil {
		return nil, errors.NewInternalError("failed to load employees", err.Error())
	}
	byID := make(map[uint]*employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	result := &CreateBenefitsResult{Requested: len(cmd.EmployeeIDs)}

	// Per-employee operations are independent; run them on a bounded pool.
	// Each employee's create is its own transaction, so one failure never
	// aborts the batch.
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, bulkWorkers)
	)
	for _, employeeID := range cmd.EmployeeIDs {
		employeeID := employeeID
		wg.Add(1)
		sem <- struct{}{}
		goroutine.SafeGo(uc.logger, "create-benefit", func() {
			defer wg.Done()
			defer func() { <-sem }()

			created, itemErr := uc.createForEmployee(ctx, byID[employeeID], employeeID, kind, rec, cmd, cfg, now)

			mu.Lock()
			defer mu.Unlock()
			if itemErr != nil {
				result.Errors = append(result.Errors, *itemErr)
				return
			}
			result.Created = append(result.Created, created)
		})
	}
	wg.Wait()

	for _, b := range result.Created {
		publish(uc.publisher, uc.logger, benefit.NewBenefitCreatedEvent(b))
	}

	uc.logger.Infow("create benefits finished",
		"requested", result.Requested, "created", len(result.Created), "failed", len(result.Errors))
	return result, nil
}

func (uc *CreateBenefitsUseCase) createForEmployee(
	ctx context.Context,
	emp *employee.Employee,
	employeeID uint,
	kind vo.BenefitKind,
	rec schedule.Recurrence,
	cmd CreateBenefitsCommand,
	cfg benefit.BusinessConfig,
	now time.Time,
) (*benefit.Benefit, *BenefitError) {
	if emp == nil {
		return nil, &BenefitError{EmployeeID: employeeID, Reason: "employee_not_found"}
	}

	if result := benefit.CheckEligibility(emp, kind, rec, cfg); !result.OK {
		return nil, &BenefitError{EmployeeID: emp.ID, Reason: result.Reason}
	}

	workingDays := schedule.EffectiveWorkingDays(emp.WorkingDays, cfg.DefaultWorkingDays)

	// The minimum-day threshold is checked before any aggregate exists;
	// day counts differ per employee because calendars differ.
	days := schedule.CountQualifyingDays(workingDays, rec, cmd.StartDate, cmd.EndDate)
	if days < cfg.MinSubscriptionDays {
		return nil, &BenefitError{
			EmployeeID: emp.ID,
			Reason:     benefit.ReasonBelowMinDays,
			Message:    "period yields fewer billable days than the configured minimum",
		}
	}

	rate, err := benefit.DailyRate(kind, vo.ComboType(cmd.ComboType), cmd.DailyLimitCents, cfg)
	if err != nil {
		return nil, &BenefitError{EmployeeID: emp.ID, Reason: "invalid_rate", Message: err.Error()}
	}

	b, err := benefit.NewBenefit(
		emp.ID, kind, cmd.StartDate, cmd.EndDate,
		rec, workingDays, vo.ComboType(cmd.ComboType), rate,
		cmd.CarryOver, cmd.AutoRenew, now,
	)
	if err != nil {
		return nil, &BenefitError{EmployeeID: emp.ID, Reason: "invalid_request", Message: err.Error()}
	}

	var explicitTotal *vo.Money
	if kind.IsCompensation() && cmd.TotalBudgetCents != nil {
		total := vo.NewMoney(*cmd.TotalBudgetCents, cfg.Currency)
		explicitTotal = &total
	}
	if err := b.Materialize(cfg, explicitTotal, now); err != nil {
		return nil, &BenefitError{EmployeeID: emp.ID, Reason: benefit.ReasonBelowMinDays, Message: err.Error()}
	}

	if err := uc.benefitRepo.Create(ctx, b); err != nil {
		uc.logger.Errorw("failed to persist benefit", "employee_id", emp.ID, "error", err)
		reason := benefit.ReasonPersistenceError
		if errors.IsDuplicateError(err) || errors.IsConflictError(err) {
			if kind.IsLunch() {
				reason = benefit.ReasonAlreadyHasLunch
			} else {
				reason = benefit.ReasonAlreadyHasCompensation
			}
		}
		return nil, &BenefitError{EmployeeID: emp.ID, Reason: reason, Message: err.Error()}
	}

	return b, nil
}

func (uc *CreateBenefitsUseCase) validateCommand(cmd CreateBenefitsCommand, now time.Time) (vo.BenefitKind, schedule.Recurrence, error) {
	kind := vo.BenefitKind(cmd.Kind)
	if !kind.IsValid() {
		return "", schedule.Recurrence{}, errors.NewValidationError("invalid benefit kind")
	}
	if len(cmd.EmployeeIDs) == 0 {
		return "", schedule.Recurrence{}, errors.NewValidationError("at least one employee is required")
	}
	if cmd.StartDate.IsZero() || cmd.EndDate.IsZero() {
		return "", schedule.Recurrence{}, errors.NewValidationError("start and end dates are required")
	}
	if cmd.EndDate.Before(cmd.StartDate) {
		return "", schedule.Recurrence{}, errors.NewValidationError("end date must not be before start date")
	}
	if cmd.StartDate.Before(biztime.DateOf(now)) {
		return "", schedule.Recurrence{}, errors.NewValidationError("start date must not be in the past")
	}

	if kind.IsCompensation() {
		if cmd.DailyLimitCents < 0 {
			return "", schedule.Recurrence{}, errors.NewValidationError("daily limit must not be negative")
		}
		if cmd.TotalBudgetCents != nil && *cmd.TotalBudgetCents <= 0 {
			return "", schedule.Recurrence{}, errors.NewValidationError("total budget must be positive")
		}
		// Compensation is always daily; any submitted recurrence is ignored.
		return kind, schedule.NewEveryDayRecurrence(), nil
	}

	recKind, err := schedule.ParseRecurrenceKind(cmd.Recurrence)
	if err != nil {
		return "", schedule.Recurrence{}, errors.NewValidationError(err.Error())
	}
	rec, err := schedule.NewRecurrence(recKind, cmd.CustomDates)
	if err != nil {
		return "", schedule.Recurrence{}, errors.NewValidationError(err.Error())
	}
	return kind, rec, nil
}
