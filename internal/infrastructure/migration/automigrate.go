package migration

import (
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.EmployeeModel{},
		&models.BenefitModel{},
		&models.OrderModel{},
		&models.BusinessConfigModel{},
	}
}
