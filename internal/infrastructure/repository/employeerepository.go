package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/mappers"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/models"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EmployeeMapper
	logger logger.Interface
}

func NewEmployeeRepository(
	gormDB *gorm.DB,
	logger logger.Interface,
) employee.Repository {
	return &EmployeeRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewEmployeeMapper(),
		logger: logger,
	}
}

func (r *EmployeeRepositoryImpl) GetByID(ctx context.Context, employeeID uint) (*employee.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&model, employeeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get employee by ID", "id", employeeID, "error", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map employee model to entity", "id", employeeID, "error", err)
		return nil, fmt.Errorf("failed to map employee: %w", err)
	}
	if err := r.hydrateActiveSlots(ctx, []*employee.Employee{entity}); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *EmployeeRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*employee.Employee, error) {
	if len(ids) == 0 {
		return []*employee.Employee{}, nil
	}

	var employeeModels []*models.EmployeeModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&employeeModels).Error; err != nil {
		r.logger.Errorw("failed to get employees by IDs", "error", err)
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	entities, err := r.mapper.ToEntities(employeeModels)
	if err != nil {
		r.logger.Errorw("failed to map employee models to entities", "error", err)
		return nil, fmt.Errorf("failed to map employees: %w", err)
	}
	if err := r.hydrateActiveSlots(ctx, entities); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *EmployeeRepositoryImpl) ListByCompany(ctx context.Context, companyID uint) ([]*employee.Employee, error) {
	var employeeModels []*models.EmployeeModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&employeeModels).Error; err != nil {
		r.logger.Errorw("failed to list employees by company", "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	entities, err := r.mapper.ToEntities(employeeModels)
	if err != nil {
		r.logger.Errorw("failed to map employee models to entities", "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to map employees: %w", err)
	}
	if err := r.hydrateActiveSlots(ctx, entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// activeSlotRow is the projection used to hydrate active benefit pointers.
type activeSlotRow struct {
	ID         uint
	EmployeeID uint
	Kind       string
}

// hydrateActiveSlots fills ActiveLunchBenefitID and ActiveCompensationID
// from the benefits table. The benefits table is the single source of truth
// for slot occupancy; no pointer column exists on the employee row.
func (r *EmployeeRepositoryImpl) hydrateActiveSlots(ctx context.Context, entities []*employee.Employee) error {
	if len(entities) == 0 {
		return nil
	}

	byID := make(map[uint]*employee.Employee, len(entities))
	ids := make([]uint, 0, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	var rows []activeSlotRow
	if err := r.db.WithContext(ctx).Model(&models.BenefitModel{}).
		Select("id, employee_id, kind").
		Where("employee_id IN ? AND active_key IS NOT NULL", ids).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to hydrate active benefit slots", "error", err)
		return fmt.Errorf("failed to hydrate active benefit slots: %w", err)
	}

	for _, row := range rows {
		e, ok := byID[row.EmployeeID]
		if !ok {
			continue
		}
		benefitID := row.ID
		switch vo.BenefitKind(row.Kind) {
		case vo.KindLunch:
			e.ActiveLunchBenefitID = &benefitID
		case vo.KindCompensation:
			e.ActiveCompensationID = &benefitID
		}
	}
	return nil
}
