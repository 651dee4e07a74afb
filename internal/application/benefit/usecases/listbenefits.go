package usecases

import (
	"context"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
	"github.com/tiffin-hq/tiffin/internal/shared/query"
)

type ListBenefitsQuery struct {
	EmployeeID *uint
	CompanyID  *uint
	Kind       *string
	Status     *string
	query.PageFilter
	query.SortFilter
}

type ListBenefitsResult struct {
	Benefits []*benefit.Benefit
	Total    int64
}

type ListBenefitsUseCase struct {
	benefitRepo benefit.Repository
	logger      logger.Interface
}

func NewListBenefitsUseCase(benefitRepo benefit.Repository, logger logger.Interface) *ListBenefitsUseCase {
	return &ListBenefitsUseCase{
		benefitRepo: benefitRepo,
		logger:      logger,
	}
}

func (uc *ListBenefitsUseCase) Execute(ctx context.Context, q ListBenefitsQuery) (*ListBenefitsResult, error) {
	filter := benefit.Filter{
		EmployeeID: q.EmployeeID,
		CompanyID:  q.CompanyID,
		PageFilter: q.PageFilter,
		SortFilter: q.SortFilter,
	}

	if q.Kind != nil {
		kind := vo.BenefitKind(*q.Kind)
		if !kind.IsValid() {
			return nil, errors.NewValidationError("invalid benefit kind: " + *q.Kind)
		}
		filter.Kind = &kind
	}
	if q.Status != nil {
		status := vo.BenefitStatus(*q.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid benefit status: " + *q.Status)
		}
		filter.Status = &status
	}

	benefits, total, err := uc.benefitRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list benefits", "error", err)
		return nil, errors.NewInternalError("failed to list benefits", err.Error())
	}

	return &ListBenefitsResult{Benefits: benefits, Total: total}, nil
}
