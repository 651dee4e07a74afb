package migration

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/config"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/models"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	sharedConfig "github.com/tiffin-hq/tiffin/internal/shared/config"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// Seeder writes the initial business_configs row from the file-level
// defaults and the combo catalog. The row is the runtime source of truth;
// seeding only happens when none exists yet.
type Seeder struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewSeeder creates a new Seeder
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger.NewLogger().With("component", "migration.seeder"),
	}
}

// SeedBusinessConfig inserts the business config row unless one already
// exists. The combo catalog file is required: a config row without prices
// cannot price a single order.
func (s *Seeder) SeedBusinessConfig(benefitCfg *sharedConfig.BenefitConfig) error {
	var count int64
	if err := s.db.Model(&models.BusinessConfigModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count business configs: %w", err)
	}
	if count > 0 {
		s.logger.Infow("business config already seeded, skipping", "rows", count)
		return nil
	}

	comboPrices, err := config.LoadComboCatalog(benefitCfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load combo catalog: %w", err)
	}

	workingDays, err := schedule.WeekdaySetFromInts(benefitCfg.DefaultWorkingDays)
	if err != nil {
		return fmt.Errorf("invalid default working days: %w", err)
	}

	prices := make(map[string]int64, len(comboPrices))
	for comboType, cents := range comboPrices {
		prices[comboType.String()] = cents
	}
	pricesJSON, err := json.Marshal(prices)
	if err != nil {
		return fmt.Errorf("failed to encode combo prices: %w", err)
	}

	now := biztime.NowUTC()
	model := &models.BusinessConfigModel{
		MinSubscriptionDays:    benefitCfg.MinSubscriptionDays,
		MaxFreezesPerWeek:      benefitCfg.MaxFreezesPerWeek,
		CutoffOffsetHours:      benefitCfg.CutoffOffsetHours,
		NightCutoffOffsetHours: benefitCfg.NightCutoffOffsetHours,
		DefaultWorkingDays:     uint8(workingDays),
		ComboPrices:            datatypes.JSON(pricesJSON),
		DefaultDailyLimitCents: benefitCfg.DefaultDailyLimit,
		Currency:               benefitCfg.Currency,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.db.Create(model).Error; err != nil {
		return fmt.Errorf("failed to seed business config: %w", err)
	}

	s.logger.Infow("business config seeded",
		"combos", len(prices),
		"currency", benefitCfg.Currency,
		"min_subscription_days", benefitCfg.MinSubscriptionDays,
	)
	return nil
}
