package handlers

import (
	"context"

	"github.com/tiffin-hq/tiffin/internal/application/benefit/usecases"
	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
)

// Use case interfaces for OrderHandler

type listOrdersUseCase interface {
	Execute(ctx context.Context, q usecases.ListOrdersQuery) (*usecases.ListOrdersResult, error)
}

type freezeOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.FreezeOrderCommand) (*usecases.FreezeOrderResult, error)
}

type unfreezeOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.UnfreezeOrderCommand) (*usecases.UnfreezeOrderResult, error)
}

type createGuestOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateGuestOrderCommand) (*benefit.Order, error)
}
