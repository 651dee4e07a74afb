package usecases

import (
	"context"
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/domain/shared/events"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// UpdateBenefitCommand is a partial edit: nil fields stay unchanged.
type UpdateBenefitCommand struct {
	BID             string
	Recurrence      *string
	CustomDates     []biztime.Date
	EndDate         *biztime.Date
	ComboType       *string
	DailyLimitCents *int64
	AutoRenew       *bool
}

type UpdateBenefitResult struct {
	Benefit         *benefit.Benefit
	PriceDeltaCents int64
}

type UpdateBenefitUseCase struct {
	benefitRepo  benefit.Repository
	employeeRepo employee.Repository
	configs      benefit.ConfigProvider
	publisher    events.EventPublisher
	logger       logger.Interface
	now          func() time.Time
}

func NewUpdateBenefitUseCase(
	benefitRepo benefit.Repository,
	employeeRepo employee.Repository,
	configs benefit.ConfigProvider,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UpdateBenefitUseCase {
	return &UpdateBenefitUseCase{
		benefitRepo:  benefitRepo,
		employeeRepo: employeeRepo,
		configs:      configs,
		publisher:    publisher,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *UpdateBenefitUseCase) Execute(ctx context.Context, cmd UpdateBenefitCommand) (*UpdateBenefitResult, error) {
	uc.logger.Infow("executing update benefit use case", "bid", cmd.BID)

	b, emp, cfg, err := loadBenefitContext(ctx, uc.benefitRepo, uc.employeeRepo, uc.configs, cmd.BID)
	if err != nil {
		return nil, err
	}

	patch, err := uc.buildPatch(cmd, b, cfg)
	if err != nil {
		return nil, err
	}

	delta, err := b.UpdateSchedule(patch, uc.now(), cfg, emp.ShiftType)
	if err != nil {
		return nil, err
	}

	if err := uc.benefitRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to persist benefit update", "bid", cmd.BID, "error", err)
		return nil, errors.NewInternalError("failed to update benefit", err.Error())
	}

	publish(uc.publisher, uc.logger, benefit.NewBenefitUpdatedEvent(b, delta))

	uc.logger.Infow("benefit updated", "bid", cmd.BID, "price_delta_cents", delta)
	return &UpdateBenefitResult{Benefit: b, PriceDeltaCents: delta}, nil
}

func (uc *UpdateBenefitUseCase) buildPatch(cmd UpdateBenefitCommand, b *benefit.Benefit, cfg benefit.BusinessConfig) (benefit.SchedulePatch, error) {
	patch := benefit.SchedulePatch{
		EndDate:   cmd.EndDate,
		AutoRenew: cmd.AutoRenew,
	}

	if cmd.Recurrence != nil {
		recKind, err := schedule.ParseRecurrenceKind(*cmd.Recurrence)
		if err != nil {
			return benefit.SchedulePatch{}, errors.NewValidationError(err.Error())
		}
		rec, err := schedule.NewRecurrence(recKind, cmd.CustomDates)
		if err != nil {
			return benefit.SchedulePatch{}, errors.NewValidationError(err.Error())
		}
		if !rec.CompatibleWith(b.WorkingDays()) {
			return benefit.SchedulePatch{}, errors.NewValidationError("new recurrence is incompatible with the employee's working days")
		}
		patch.Recurrence = &rec
	}

	if cmd.ComboType != nil {
		combo, err := vo.ParseComboType(*cmd.ComboType)
		if err != nil {
			return benefit.SchedulePatch{}, errors.NewValidationError(err.Error())
		}
		patch.ComboType = &combo
		rate, err := benefit.DailyRate(b.Kind(), combo, 0, cfg)
		if err != nil {
			return benefit.SchedulePatch{}, errors.NewValidationError(err.Error())
		}
		patch.DailyRate = &rate
	}

	if cmd.DailyLimitCents != nil {
		if !b.Kind().IsCompensation() {
			return benefit.SchedulePatch{}, errors.NewValidationError("daily limit applies to compensation benefits only")
		}
		rate, err := benefit.DailyRate(b.Kind(), "", *cmd.DailyLimitCents, cfg)
		if err != nil {
			return benefit.SchedulePatch{}, errors.NewValidationError(err.Error())
		}
		patch.DailyRate = &rate
	}

	return patch, nil
}
