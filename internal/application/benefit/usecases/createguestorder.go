package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// CreateGuestOrderCommand places a one-off meal for a visitor: no employee,
// no benefit, just a named recipient on a given delivery day.
type CreateGuestOrderCommand struct {
	GuestName string
	Date      biztime.Date
	ComboType string
}

type CreateGuestOrderUseCase struct {
	orderRepo benefit.OrderRepository
	configs   benefit.ConfigProvider
	logger    logger.Interface
	now       func() time.Time
}

func NewCreateGuestOrderUseCase(
	orderRepo benefit.OrderRepository,
	configs benefit.ConfigProvider,
	logger logger.Interface,
) *CreateGuestOrderUseCase {
	return &CreateGuestOrderUseCase{
		orderRepo: orderRepo,
		configs:   configs,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *CreateGuestOrderUseCase) Execute(ctx context.Context, cmd CreateGuestOrderCommand) (*benefit.Order, error) {
	name := strings.TrimSpace(cmd.GuestName)
	if name == "" {
		return nil, errors.NewValidationError("guest name is required")
	}
	if cmd.Date.IsZero() {
		return nil, errors.NewValidationError("delivery date is required")
	}

	combo, err := vo.ParseComboType(cmd.ComboType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	cfg, err := uc.configs.Get(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to load business config", err.Error())
	}

	now := uc.now()
	if cmd.Date.Before(biztime.DateOf(now)) {
		return nil, errors.NewValidationError("delivery date must not be in the past")
	}

	price, ok := cfg.ComboPrice(combo)
	if !ok {
		return nil, errors.NewValidationError("no catalog price for combo type: " + combo.String())
	}

	order, err := benefit.NewGuestOrder(name, cmd.Date, price, combo, now)
	if err != nil {
		return nil, err
	}

	if err := uc.orderRepo.CreateGuest(ctx, order); err != nil {
		uc.logger.Errorw("failed to persist guest order", "guest", name, "date", cmd.Date, "error", err)
		return nil, errors.NewInternalError("failed to create guest order", err.Error())
	}

	uc.logger.Infow("guest order created", "oid", order.OID(), "guest", name, "date", cmd.Date)
	return order, nil
}
