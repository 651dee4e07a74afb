package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/tiffin-hq/tiffin/internal/shared/constants"
)

// BusinessConfigModel is the persistence model for the program rules row.
// ComboPrices is a JSON object mapping combo type to price in cents.
type BusinessConfigModel struct {
	ID                     uint           `gorm:"primarykey"`
	MinSubscriptionDays    int            `gorm:"not null"`
	MaxFreezesPerWeek      int            `gorm:"not null"`
	CutoffOffsetHours      int            `gorm:"not null"`
	NightCutoffOffsetHours int            `gorm:"not null"`
	DefaultWorkingDays     uint8          `gorm:"not null"`
	ComboPrices            datatypes.JSON `gorm:"not null"`
	DefaultDailyLimitCents int64          `gorm:"not null"`
	Currency               string         `gorm:"not null;size:3"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName specifies the table name for GORM
func (BusinessConfigModel) TableName() string {
	return constants.TableBusinessConfigs
}
