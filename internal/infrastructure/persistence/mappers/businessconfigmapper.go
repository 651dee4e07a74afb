package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/models"
)

type BusinessConfigMapper interface {
	ToConfig(model *models.BusinessConfigModel) (benefit.BusinessConfig, error)
}

type BusinessConfigMapperImpl struct{}

func NewBusinessConfigMapper() BusinessConfigMapper {
	return &BusinessConfigMapperImpl{}
}

func (m *BusinessConfigMapperImpl) ToConfig(model *models.BusinessConfigModel) (benefit.BusinessConfig, error) {
	if model == nil {
		return benefit.BusinessConfig{}, fmt.Errorf("business config row is missing")
	}

	prices := make(map[vo.ComboType]int64)
	if len(model.ComboPrices) > 0 {
		raw := make(map[string]int64)
		if err := json.Unmarshal(model.ComboPrices, &raw); err != nil {
			return benefit.BusinessConfig{}, fmt.Errorf("failed to unmarshal combo prices: %w", err)
		}
		for combo, cents := range raw {
			ct := vo.ComboType(combo)
			if !ct.IsValid() {
				return benefit.BusinessConfig{}, fmt.Errorf("unknown combo type in catalog: %s", combo)
			}
			prices[ct] = cents
		}
	}

	return benefit.BusinessConfig{
		MinSubscriptionDays:    model.MinSubscriptionDays,
		MaxFreezesPerWeek:      model.MaxFreezesPerWeek,
		CutoffOffsetHours:      model.CutoffOffsetHours,
		NightCutoffOffsetHours: model.NightCutoffOffsetHours,
		DefaultWorkingDays:     schedule.WeekdaySet(model.DefaultWorkingDays),
		ComboPrices:            prices,
		DefaultDailyLimit:      model.DefaultDailyLimitCents,
		Currency:               model.Currency,
	}, nil
}
