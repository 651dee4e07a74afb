package usecases

import (
	"context"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

type GetBenefitUseCase struct {
	benefitRepo benefit.Repository
	logger      logger.Interface
}

func NewGetBenefitUseCase(benefitRepo benefit.Repository, logger logger.Interface) *GetBenefitUseCase {
	return &GetBenefitUseCase{
		benefitRepo: benefitRepo,
		logger:      logger,
	}
}

func (uc *GetBenefitUseCase) Execute(ctx context.Context, bid string) (*benefit.Benefit, error) {
	if bid == "" {
		return nil, errors.NewValidationError("benefit ID is required")
	}

	b, err := uc.benefitRepo.GetByBID(ctx, bid)
	if err != nil {
		uc.logger.Errorw("failed to load benefit", "bid", bid, "error", err)
		return nil, errors.NewInternalError("failed to load benefit", err.Error())
	}
	if b == nil {
		return nil, errors.NewNotFoundError("benefit not found")
	}

	return b, nil
}
