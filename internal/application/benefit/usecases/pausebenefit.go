package usecases

import (
	"context"
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/shared/events"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

type PauseBenefitCommand struct {
	BID string
}

type PauseBenefitUseCase struct {
	benefitRepo  benefit.Repository
	employeeRepo employee.Repository
	configs      benefit.ConfigProvider
	publisher    events.EventPublisher
	logger       logger.Interface
	now          func() time.Time
}

func NewPauseBenefitUseCase(
	benefitRepo benefit.Repository,
	employeeRepo employee.Repository,
	configs benefit.ConfigProvider,
	publisher events.EventPublisher,
	logger logger.Interface,
) *PauseBenefitUseCase {
	return &PauseBenefitUseCase{
		benefitRepo:  benefitRepo,
		employeeRepo: employeeRepo,
		configs:      configs,
		publisher:    publisher,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *PauseBenefitUseCase) Execute(ctx context.Context, cmd PauseBenefitCommand) (*benefit.Benefit, error) {
	uc.logger.Infow("executing pause benefit use case", "bid", cmd.BID)

	b, emp, cfg, err := loadBenefitContext(ctx, uc.benefitRepo, uc.employeeRepo, uc.configs, cmd.BID)
	if err != nil {
		return nil, err
	}

	if err := b.Pause(uc.now(), cfg, emp.ShiftType); err != nil {
		return nil, err
	}

	if err := uc.benefitRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to persist pause", "bid", cmd.BID, "error", err)
		return nil, errors.NewInternalError("failed to pause benefit", err.Error())
	}

	publish(uc.publisher, uc.logger, benefit.NewBenefitPausedEvent(b))
	uc.logger.Infow("benefit paused", "bid", cmd.BID)
	return b, nil
}
