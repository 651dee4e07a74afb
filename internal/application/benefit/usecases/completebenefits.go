package usecases

import (
	"context"
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/domain/shared/events"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// CompleteBenefitsResult reports one sweep: the benefits that transitioned
// to completed, with the auto-renew ones split out for the renewal pass.
type CompleteBenefitsResult struct {
	Completed   int
	ForRenewal  []*benefit.Benefit
	FailedCount int
}

// CompleteBenefitsUseCase is the daily sweep: every current benefit whose
// end date has passed is completed. Failures on one benefit never stop the
// sweep; the scheduler retries them on the next tick.
type CompleteBenefitsUseCase struct {
	benefitRepo benefit.Repository
	publisher   events.EventPublisher
	logger      logger.Interface
	now         func() time.Time
}

func NewCompleteBenefitsUseCase(
	benefitRepo benefit.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CompleteBenefitsUseCase {
	return &CompleteBenefitsUseCase{
		benefitRepo: benefitRepo,
		publisher:   publisher,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *CompleteBenefitsUseCase) Execute(ctx context.Context) (*CompleteBenefitsResult, error) {
	now := uc.now()
	today := biztime.DateOf(now)

	ended, err := uc.benefitRepo.ListEnded(ctx, today)
	if err != nil {
		uc.logger.Errorw("failed to list ended benefits", "error", err)
		return nil, err
	}

	result := &CompleteBenefitsResult{}
	for _, b := range ended {
		done, err := b.CompleteIfPast(today, now)
		if err != nil {
			uc.logger.Errorw("failed to complete benefit", "bid", b.BID(), "error", err)
			result.FailedCount++
			continue
		}
		if !done {
			continue
		}

		if err := uc.benefitRepo.Update(ctx, b); err != nil {
			uc.logger.Errorw("failed to persist benefit completion", "bid", b.BID(), "error", err)
			result.FailedCount++
			continue
		}

		publish(uc.publisher, uc.logger, benefit.NewBenefitCompletedEvent(b))
		result.Completed++
		if b.AutoRenew() {
			result.ForRenewal = append(result.ForRenewal, b)
		}
	}

	if result.Completed > 0 || result.FailedCount > 0 {
		uc.logger.Infow("completion sweep finished",
			"completed", result.Completed,
			"for_renewal", len(result.ForRenewal),
			"failed", result.FailedCount)
	}
	return result, nil
}
