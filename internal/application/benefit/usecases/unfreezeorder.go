package usecases

import (
	"context"
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/domain/shared/events"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

type UnfreezeOrderCommand struct {
	OID string
}

type UnfreezeOrderResult struct {
	Benefit    *benefit.Benefit
	NewEndDate biztime.Date
}

type UnfreezeOrderUseCase struct {
	benefitRepo benefit.Repository
	orderRepo   benefit.OrderRepository
	publisher   events.EventPublisher
	logger      logger.Interface
	now         func() time.Time
}

func NewUnfreezeOrderUseCase(
	benefitRepo benefit.Repository,
	orderRepo benefit.OrderRepository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UnfreezeOrderUseCase {
	return &UnfreezeOrderUseCase{
		benefitRepo: benefitRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *UnfreezeOrderUseCase) Execute(ctx context.Context, cmd UnfreezeOrderCommand) (*UnfreezeOrderResult, error) {
	uc.logger.Infow("executing unfreeze order use case", "oid", cmd.OID)

	if cmd.OID == "" {
		return nil, errors.NewValidationError("order ID is required")
	}

	order, err := uc.orderRepo.GetByOID(ctx, cmd.OID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load order", err.Error())
	}
	if order == nil {
		return nil, errors.NewNotFoundError("order not found")
	}

	b, err := uc.benefitRepo.GetByOrderID(ctx, order.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load benefit", err.Error())
	}
	if b == nil {
		return nil, errors.NewNotFoundError("order has no backing benefit")
	}

	if err := b.UnfreezeOrder(order.ID(), uc.now()); err != nil {
		return nil, err
	}

	if err := uc.benefitRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to persist unfreeze", "oid", cmd.OID, "error", err)
		return nil, errors.NewInternalError("failed to unfreeze order", err.Error())
	}

	unfrozen := order
	for _, o := range b.Orders() {
		if o.ID() == order.ID() {
			unfrozen = o
		}
	}
	publish(uc.publisher, uc.logger, benefit.NewOrderUnfrozenEvent(b, unfrozen))

	uc.logger.Infow("order unfrozen", "oid", cmd.OID, "new_end_date", b.EndDate().String())
	return &UnfreezeOrderResult{Benefit: b, NewEndDate: b.EndDate()}, nil
}
