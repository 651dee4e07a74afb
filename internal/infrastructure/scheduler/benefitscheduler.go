package scheduler

import (
	"context"
	"time"

	benefitUsecases "github.com/tiffin-hq/tiffin/internal/application/benefit/usecases"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// sweepTimeout bounds a single settlement pass. A pass touches every
// benefit whose period ended, so it scales with tenant size, not traffic.
const sweepTimeout = 10 * time.Minute

// BenefitScheduler runs the daily settlement sweep: completed periods are
// closed out and auto-renewing ones get their follow-on period created in
// the same pass, so a renewal never observes a still-current predecessor.
type BenefitScheduler struct {
	manager    *SchedulerManager
	completeUC *benefitUsecases.CompleteBenefitsUseCase
	renewUC    *benefitUsecases.RenewBenefitsUseCase
	logger     logger.Interface
	interval   time.Duration
}

// NewBenefitScheduler creates a new BenefitScheduler
func NewBenefitScheduler(
	completeUC *benefitUsecases.CompleteBenefitsUseCase,
	renewUC *benefitUsecases.RenewBenefitsUseCase,
	interval time.Duration,
	log logger.Interface,
) (*BenefitScheduler, error) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	manager, err := NewSchedulerManager(log)
	if err != nil {
		return nil, err
	}

	return &BenefitScheduler{
		manager:    manager,
		completeUC: completeUC,
		renewUC:    renewUC,
		logger:     log,
		interval:   interval,
	}, nil
}

// Start registers the settlement sweep and starts the scheduler. The first
// run fires immediately to catch periods that ended while the service was
// down.
func (s *BenefitScheduler) Start() error {
	if err := s.manager.RegisterSweep("benefit-settlement", s.interval, sweepTimeout, s.runSweep); err != nil {
		return err
	}
	s.manager.Start()
	return nil
}

// Stop stops the scheduler gracefully
func (s *BenefitScheduler) Stop() {
	if err := s.manager.Stop(); err != nil {
		s.logger.Errorw("failed to stop benefit scheduler", "error", err)
	}
}

func (s *BenefitScheduler) runSweep(ctx context.Context) {
	s.logger.Debugw("benefit settlement sweep started")

	startTime := time.Now()

	completeResult, err := s.completeUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("failed to complete ended benefits",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	var renewed, skipped int
	if len(completeResult.ForRenewal) > 0 {
		renewResult, err := s.renewUC.Execute(ctx, completeResult.ForRenewal)
		if err != nil {
			s.logger.Errorw("failed to renew benefits",
				"error", err,
				"candidates", len(completeResult.ForRenewal),
				"duration", time.Since(startTime),
			)
			return
		}
		renewed = renewResult.Renewed
		skipped = renewResult.Skipped
	}

	if completeResult.Completed > 0 || renewed > 0 {
		s.logger.Infow("benefit settlement sweep finished",
			"completed", completeResult.Completed,
			"failed", completeResult.FailedCount,
			"renewed", renewed,
			"renewal_skipped", skipped,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("no benefits to settle",
			"duration", time.Since(startTime),
		)
	}
}
