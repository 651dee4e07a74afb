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

type CancelBenefitCommand struct {
	BID    string
	Reason string
}

type CancelBenefitResult struct {
	Benefit     *benefit.Benefit
	RefundCents int64
	Currency    string
}

type CancelBenefitUseCase struct {
	benefitRepo  benefit.Repository
	employeeRepo employee.Repository
	configs      benefit.ConfigProvider
	publisher    events.EventPublisher
	logger       logger.Interface
	now          func() time.Time
}

func NewCancelBenefitUseCase(
	benefitRepo benefit.Repository,
	employeeRepo employee.Repository,
	configs benefit.ConfigProvider,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CancelBenefitUseCase {
	return &CancelBenefitUseCase{
		benefitRepo:  benefitRepo,
		employeeRepo: employeeRepo,
		configs:      configs,
		publisher:    publisher,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *CancelBenefitUseCase) Execute(ctx context.Context, cmd CancelBenefitCommand) (*CancelBenefitResult, error) {
	uc.logger.Infow("executing cancel benefit use case", "bid", cmd.BID)

	b, emp, cfg, err := loadBenefitContext(ctx, uc.benefitRepo, uc.employeeRepo, uc.configs, cmd.BID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	refund, err := b.Cancel(cmd.Reason, now, cfg, emp.ShiftType)
	if err != nil {
		return nil, err
	}

	if err := uc.benefitRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to persist cancellation", "bid", cmd.BID, "error", err)
		return nil, errors.NewInternalError("failed to cancel benefit", err.Error())
	}

	publish(uc.publisher, uc.logger, benefit.NewBenefitCancelledEvent(b, refund.AmountInCents(), refund.Currency()))

	uc.logger.Infow("benefit cancelled", "bid", cmd.BID, "refund_cents", refund.AmountInCents())
	return &CancelBenefitResult{
		Benefit:     b,
		RefundCents: refund.AmountInCents(),
		Currency:    refund.Currency(),
	}, nil
}

// loadBenefitContext resolves the aggregate, its employee snapshot and the
// current business config. Every mutation flow starts here.
func loadBenefitContext(
	ctx context.Context,
	benefitRepo benefit.Repository,
	employeeRepo employee.Repository,
	configs benefit.ConfigProvider,
	bid string,
) (*benefit.Benefit, *employee.Employee, benefit.BusinessConfig, error) {
	if bid == "" {
		return nil, nil, benefit.BusinessConfig{}, errors.NewValidationError("benefit ID is required")
	}

	b, err := benefitRepo.GetByBID(ctx, bid)
	if err != nil {
		return nil, nil, benefit.BusinessConfig{}, errors.NewInternalError("failed to load benefit", err.Error())
	}
	if b == nil {
		return nil, nil, benefit.BusinessConfig{}, errors.NewNotFoundError("benefit not found")
	}

	emp, err := employeeRepo.GetByID(ctx, b.EmployeeID())
	if err != nil {
		return nil, nil, benefit.BusinessConfig{}, errors.NewInternalError("failed to load employee", err.Error())
	}
	if emp == nil {
		return nil, nil, benefit.BusinessConfig{}, errors.NewNotFoundError("employee not found")
	}

	cfg, err := configs.Get(ctx)
	if err != nil {
		return nil, nil, benefit.BusinessConfig{}, errors.NewInternalError("failed to load business config", err.Error())
	}

	return b, emp, cfg, nil
}

func publish(publisher events.EventPublisher, log logger.Interface, event events.DomainEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(event); err != nil {
		log.Warnw("failed to publish domain event", "event_type", event.GetEventType(), "error", err)
	}
}
