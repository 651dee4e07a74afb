package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/mappers"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/models"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// BusinessConfigRepositoryImpl reads the program rules row. The table holds
// a single row; the newest one wins if an operator ever inserts another.
type BusinessConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BusinessConfigMapper
	logger logger.Interface
}

func NewBusinessConfigRepository(
	gormDB *gorm.DB,
	logger logger.Interface,
) benefit.ConfigProvider {
	return &BusinessConfigRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewBusinessConfigMapper(),
		logger: logger,
	}
}

func (r *BusinessConfigRepositoryImpl) Get(ctx context.Context) (benefit.BusinessConfig, error) {
	var model models.BusinessConfigModel
	if err := r.db.WithContext(ctx).Order("id DESC").First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return benefit.BusinessConfig{}, fmt.Errorf("business config row is missing")
		}
		r.logger.Errorw("failed to get business config", "error", err)
		return benefit.BusinessConfig{}, fmt.Errorf("failed to get business config: %w", err)
	}

	cfg, err := r.mapper.ToConfig(&model)
	if err != nil {
		r.logger.Errorw("failed to map business config", "error", err)
		return benefit.BusinessConfig{}, fmt.Errorf("failed to map business config: %w", err)
	}
	return cfg, nil
}
