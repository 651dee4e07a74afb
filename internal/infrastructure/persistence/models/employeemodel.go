package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/tiffin-hq/tiffin/internal/shared/constants"
)

// EmployeeModel is the persistence model for the employee snapshot the
// engine reads. The active benefit slots are not columns here; the
// repository hydrates them from the benefits table on read.
type EmployeeModel struct {
	ID           uint   `gorm:"primarykey"`
	EID          string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: emp_xxx"`
	CompanyID    uint   `gorm:"not null;index:idx_company_employee"`
	Name         string `gorm:"not null;size:100"`
	IsActive     bool   `gorm:"default:true;index:idx_is_active"`
	InviteStatus string `gorm:"not null;size:20;default:pending"`
	ServiceType  string `gorm:"size:20"`
	ShiftType    string `gorm:"not null;size:20;default:day"`
	WorkingDays  uint8  `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (EmployeeModel) TableName() string {
	return constants.TableEmployees
}
