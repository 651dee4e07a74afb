package handlers

import (
	"context"

	"github.com/tiffin-hq/tiffin/internal/application/benefit/usecases"
	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
)

// Use case interfaces for BenefitHandler

type createBenefitsUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateBenefitsCommand) (*usecases.CreateBenefitsResult, error)
}

type getBenefitUseCase interface {
	Execute(ctx context.Context, bid string) (*benefit.Benefit, error)
}

type listBenefitsUseCase interface {
	Execute(ctx context.Context, q usecases.ListBenefitsQuery) (*usecases.ListBenefitsResult, error)
}

type updateBenefitUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateBenefitCommand) (*usecases.UpdateBenefitResult, error)
}

type pauseBenefitUseCase interface {
	Execute(ctx context.Context, cmd usecases.PauseBenefitCommand) (*benefit.Benefit, error)
}

type resumeBenefitUseCase interface {
	Execute(ctx context.Context, cmd usecases.ResumeBenefitCommand) (*benefit.Benefit, error)
}

type cancelBenefitUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelBenefitCommand) (*usecases.CancelBenefitResult, error)
}
