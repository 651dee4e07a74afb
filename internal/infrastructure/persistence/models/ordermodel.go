package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/tiffin-hq/tiffin/internal/shared/constants"
)

// OrderModel is the persistence model for per-day orders. BenefitID and
// EmployeeID are NULL for guest orders, which exist as standalone rows.
type OrderModel struct {
	ID           uint       `gorm:"primarykey"`
	OID          string     `gorm:"column:oid;uniqueIndex;not null;size:50;comment:Stripe-style ID: ord_xxx"`
	BenefitID    *uint      `gorm:"index:idx_benefit_date,priority:1"`
	EmployeeID   *uint      `gorm:"index:idx_employee_order"`
	GuestName    *string    `gorm:"size:100"`
	Kind         string     `gorm:"not null;size:20"`
	Date         time.Time  `gorm:"not null;index:idx_benefit_date,priority:2"`
	Status       string     `gorm:"not null;size:20;index:idx_order_status"`
	PriceCents   int64      `gorm:"not null"`
	Currency     string     `gorm:"not null;size:3"`
	ComboType    string     `gorm:"size:20"`
	FrozenAt     *time.Time `gorm:"index:idx_frozen_at"`
	FreezeReason *string    `gorm:"size:500"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return constants.TableOrders
}
