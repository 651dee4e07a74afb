package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	benefitUsecases "github.com/tiffin-hq/tiffin/internal/application/benefit/usecases"
	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/shared/events"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/cache"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/config"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/repository"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/scheduler"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/services"
	"github.com/tiffin-hq/tiffin/internal/interfaces/http/handlers"
	"github.com/tiffin-hq/tiffin/internal/shared/db"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// Container wires the persistence layer, use cases, handlers and background
// scheduler together and owns their shutdown order.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	dispatcher *events.InMemoryEventDispatcher

	// Repositories and providers
	benefitRepo    benefit.Repository
	orderRepo      benefit.OrderRepository
	employeeRepo   employee.Repository
	configProvider benefit.ConfigProvider

	// Handlers
	benefitHandler   *handlers.BenefitHandler
	orderHandler     *handlers.OrderHandler
	targetingHandler *handlers.TargetingHandler
	healthHandler    *handlers.HealthHandler

	// Background sweeps
	benefitScheduler *scheduler.BenefitScheduler
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gormDB,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	if err := c.initBenefit(); err != nil {
		return nil, err
	}

	return c, nil
}

// initInfrastructure connects Redis and starts the event dispatcher with the
// audit subscriber attached.
func (c *Container) initInfrastructure() error {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.redis.Ping(ctx).Err(); err != nil {
		// The config cache falls back to the database, so a missing Redis
		// degrades read latency rather than availability.
		c.log.Warnw("redis unreachable, business config will be read from the database", "error", err)
	} else {
		c.log.Infow("redis connection established")
	}

	c.dispatcher = events.NewInMemoryEventDispatcher(100, c.log)
	if err := c.dispatcher.Start(); err != nil {
		return err
	}

	audit := services.NewBenefitAuditLogger(c.log)
	for _, eventType := range []string{
		benefit.EventBenefitCreated,
		benefit.EventBenefitCancelled,
		benefit.EventBenefitPaused,
		benefit.EventBenefitResumed,
		benefit.EventBenefitUpdated,
		benefit.EventBenefitCompleted,
		benefit.EventBenefitRenewed,
		benefit.EventOrderFrozen,
		benefit.EventOrderUnfrozen,
	} {
		if err := c.dispatcher.Subscribe(eventType, audit); err != nil {
			return err
		}
	}

	return nil
}

// initBenefit wires repositories, use cases, handlers and the scheduler.
func (c *Container) initBenefit() error {
	tm := db.NewTransactionManager(c.db)

	c.benefitRepo = repository.NewBenefitRepository(c.db, tm, c.log)
	c.orderRepo = repository.NewOrderRepository(c.db, c.log)
	c.employeeRepo = repository.NewEmployeeRepository(c.db, c.log)
	c.configProvider = cache.NewBusinessConfigCache(
		c.redis,
		repository.NewBusinessConfigRepository(c.db, c.log),
		c.log,
	)

	createUC := benefitUsecases.NewCreateBenefitsUseCase(c.benefitRepo, c.employeeRepo, c.configProvider, c.dispatcher, c.log)
	getUC := benefitUsecases.NewGetBenefitUseCase(c.benefitRepo, c.log)
	listUC := benefitUsecases.NewListBenefitsUseCase(c.benefitRepo, c.log)
	updateUC := benefitUsecases.NewUpdateBenefitUseCase(c.benefitRepo, c.employeeRepo, c.configProvider, c.dispatcher, c.log)
	pauseUC := benefitUsecases.NewPauseBenefitUseCase(c.benefitRepo, c.employeeRepo, c.configProvider, c.dispatcher, c.log)
	resumeUC := benefitUsecases.NewResumeBenefitUseCase(c.benefitRepo, c.dispatcher, c.log)
	cancelUC := benefitUsecases.NewCancelBenefitUseCase(c.benefitRepo, c.employeeRepo, c.configProvider, c.dispatcher, c.log)
	freezeUC := benefitUsecases.NewFreezeOrderUseCase(c.benefitRepo, c.orderRepo, c.employeeRepo, c.configProvider, c.dispatcher, c.log)
	unfreezeUC := benefitUsecases.NewUnfreezeOrderUseCase(c.benefitRepo, c.orderRepo, c.dispatcher, c.log)
	listOrdersUC := benefitUsecases.NewListOrdersUseCase(c.orderRepo, c.benefitRepo, c.log)
	guestOrderUC := benefitUsecases.NewCreateGuestOrderUseCase(c.orderRepo, c.configProvider, c.log)
	previewUC := benefitUsecases.NewPreviewTargetingUseCase(c.employeeRepo, c.configProvider, c.log)
	completeUC := benefitUsecases.NewCompleteBenefitsUseCase(c.benefitRepo, c.dispatcher, c.log)
	renewUC := benefitUsecases.NewRenewBenefitsUseCase(c.benefitRepo, c.employeeRepo, c.configProvider, c.dispatcher, c.log)

	c.benefitHandler = handlers.NewBenefitHandler(createUC, getUC, listUC, updateUC, pauseUC, resumeUC, cancelUC, c.log)
	c.orderHandler = handlers.NewOrderHandler(listOrdersUC, freezeUC, unfreezeUC, guestOrderUC, c.log)
	c.targetingHandler = handlers.NewTargetingHandler(previewUC, c.log)
	c.healthHandler = handlers.NewHealthHandler(c.db)

	benefitScheduler, err := scheduler.NewBenefitScheduler(
		completeUC,
		renewUC,
		time.Duration(c.cfg.Scheduler.IntervalHours)*time.Hour,
		c.log,
	)
	if err != nil {
		return err
	}
	c.benefitScheduler = benefitScheduler

	return nil
}

// StartScheduler starts the completion and renewal sweeps when enabled.
func (c *Container) StartScheduler() error {
	if !c.cfg.Scheduler.Enabled {
		c.log.Infow("benefit scheduler disabled by configuration")
		return nil
	}
	return c.benefitScheduler.Start()
}

// Shutdown stops background work in reverse dependency order.
func (c *Container) Shutdown() {
	if c.benefitScheduler != nil {
		c.benefitScheduler.Stop()
	}

	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
