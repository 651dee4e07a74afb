package handlers

import (
	"context"

	"github.com/tiffin-hq/tiffin/internal/application/benefit/usecases"
)

// Use case interfaces for TargetingHandler

type previewTargetingUseCase interface {
	Execute(ctx context.Context, q usecases.PreviewTargetingQuery) (*usecases.PreviewTargetingResult, error)
}
