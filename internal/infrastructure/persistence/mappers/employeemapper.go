package mappers

import (
	"fmt"

	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/models"
	"github.com/tiffin-hq/tiffin/internal/shared/mapper"
)

// EmployeeMapper converts employee rows into the read model. Active benefit
// slot pointers are not columns; the repository hydrates them from the
// benefits table after mapping.
type EmployeeMapper interface {
	ToEntity(model *models.EmployeeModel) (*employee.Employee, error)
	ToEntities(models []*models.EmployeeModel) ([]*employee.Employee, error)
}

type EmployeeMapperImpl struct{}

func NewEmployeeMapper() EmployeeMapper {
	return &EmployeeMapperImpl{}
}

func (m *EmployeeMapperImpl) ToEntity(model *models.EmployeeModel) (*employee.Employee, error) {
	if model == nil {
		return nil, nil
	}

	name, err := employee.NewName(model.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse employee name: %w", err)
	}

	return &employee.Employee{
		ID:           model.ID,
		EID:          model.EID,
		CompanyID:    model.CompanyID,
		Name:         name,
		IsActive:     model.IsActive,
		InviteStatus: employee.InviteStatus(model.InviteStatus),
		ServiceType:  employee.ServiceType(model.ServiceType),
		ShiftType:    employee.ShiftType(model.ShiftType),
		WorkingDays:  schedule.WeekdaySet(model.WorkingDays),
	}, nil
}

func (m *EmployeeMapperImpl) ToEntities(modelList []*models.EmployeeModel) ([]*employee.Employee, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.EmployeeModel) uint { return model.ID })
}
