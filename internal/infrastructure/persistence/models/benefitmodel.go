package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tiffin-hq/tiffin/internal/shared/constants"
)

// BenefitModel is the persistence model for benefit aggregates. This is the
// anti-corruption layer between domain and database.
//
// ActiveKey backs the at-most-one-active-per-(employee, kind) constraint:
// it holds the employee id while the benefit is active or paused and is
// NULL otherwise, so the (kind, active_key) unique index only ever bites
// for current benefits. Concurrent creates for the same slot lose with a
// duplicate-key error instead of racing a check-then-insert.
type BenefitModel struct {
	ID              uint      `gorm:"primarykey"`
	BID             string    `gorm:"column:bid;uniqueIndex;not null;size:50;comment:Stripe-style ID: bnf_xxx"`
	EmployeeID      uint      `gorm:"not null;index:idx_employee_benefit"`
	Kind            string    `gorm:"not null;size:20;uniqueIndex:idx_active_slot,priority:1"`
	ActiveKey       *string   `gorm:"size:32;uniqueIndex:idx_active_slot,priority:2"`
	Status          string    `gorm:"not null;size:20;index:idx_status"`
	StartDate       time.Time `gorm:"not null"`
	EndDate         time.Time `gorm:"not null;index:idx_end_date"`
	RecurrenceKind  string    `gorm:"not null;size:20"`
	CustomDates     datatypes.JSON
	WorkingDays     uint8  `gorm:"not null"`
	ComboType       string `gorm:"size:20"`
	DailyRateCents  int64  `gorm:"not null"`
	TotalPriceCents int64  `gorm:"not null"`
	Currency        string `gorm:"not null;size:3"`
	CarryOver       bool   `gorm:"default:false"`
	AutoRenew       bool   `gorm:"default:false"`
	CancelledAt     *time.Time
	CancelReason    *string `gorm:"size:500"`
	Version         int     `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (BenefitModel) TableName() string {
	return constants.TableBenefits
}

// BeforeCreate hook for GORM
func (b *BenefitModel) BeforeCreate(tx *gorm.DB) error {
	if b.Version == 0 {
		b.Version = 1
	}
	return nil
}
