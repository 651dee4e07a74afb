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

type ResumeBenefitCommand struct {
	BID string
}

type ResumeBenefitUseCase struct {
	benefitRepo benefit.Repository
	publisher   events.EventPublisher
	logger      logger.Interface
	now         func() time.Time
}

func NewResumeBenefitUseCase(
	benefitRepo benefit.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ResumeBenefitUseCase {
	return &ResumeBenefitUseCase{
		benefitRepo: benefitRepo,
		publisher:   publisher,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *ResumeBenefitUseCase) Execute(ctx context.Context, cmd ResumeBenefitCommand) (*benefit.Benefit, error) {
	uc.logger.Infow("executing resume benefit use case", "bid", cmd.BID)

	if cmd.BID == "" {
		return nil, errors.NewValidationError("benefit ID is required")
	}

	b, err := uc.benefitRepo.GetByBID(ctx, cmd.BID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load benefit", err.Error())
	}
	if b == nil {
		return nil, errors.NewNotFoundError("benefit not found")
	}

	if err := b.Resume(uc.now()); err != nil {
		return nil, err
	}

	if err := uc.benefitRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to persist resume", "bid", cmd.BID, "error", err)
		return nil, errors.NewInternalError("failed to resume benefit", err.Error())
	}

	publish(uc.publisher, uc.logger, benefit.NewBenefitResumedEvent(b))
	uc.logger.Infow("benefit resumed", "bid", cmd.BID, "new_end_date", b.EndDate().String())
	return b, nil
}
