package usecases

import (
	"context"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
	"github.com/tiffin-hq/tiffin/internal/shared/query"
)

type ListOrdersQuery struct {
	BenefitBID *string
	EmployeeID *uint
	Status     *string
	DateFrom   *biztime.Date
	DateTo     *biztime.Date
	GuestOnly  bool
	query.PageFilter
	query.SortFilter
}

type ListOrdersResult struct {
	Orders []*benefit.Order
	Total  int64
}

type ListOrdersUseCase struct {
	orderRepo   benefit.OrderRepository
	benefitRepo benefit.Repository
	logger      logger.Interface
}

func NewListOrdersUseCase(orderRepo benefit.OrderRepository, benefitRepo benefit.Repository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo:   orderRepo,
		benefitRepo: benefitRepo,
		logger:      logger,
	}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, q ListOrdersQuery) (*ListOrdersResult, error) {
	filter := benefit.OrderFilter{
		EmployeeID: q.EmployeeID,
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
		GuestOnly:  q.GuestOnly,
		PageFilter: q.PageFilter,
		SortFilter: q.SortFilter,
	}

	if q.BenefitBID != nil {
		b, err := uc.benefitRepo.GetByBID(ctx, *q.BenefitBID)
		if err != nil {
			uc.logger.Errorw("failed to resolve benefit for order listing", "bid", *q.BenefitBID, "error", err)
			return nil, errors.NewInternalError("failed to load benefit", err.Error())
		}
		if b == nil {
			return nil, errors.NewNotFoundError("benefit not found")
		}
		id := b.ID()
		filter.BenefitID = &id
	}

	if q.Status != nil {
		status := vo.OrderStatus(*q.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid order status: " + *q.Status)
		}
		filter.Status = &status
	}

	if q.DateFrom != nil && q.DateTo != nil && q.DateTo.Before(*q.DateFrom) {
		return nil, errors.NewValidationError("date_to must not be before date_from")
	}

	orders, total, err := uc.orderRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "error", err)
		return nil, errors.NewInternalError("failed to list orders", err.Error())
	}

	return &ListOrdersResult{Orders: orders, Total: total}, nil
}
