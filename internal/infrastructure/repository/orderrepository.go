package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/mappers"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/models"
	"github.com/tiffin-hq/tiffin/internal/shared/db"
	"github.com/tiffin-hq/tiffin/internal/shared/id"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// allowedOrderSortByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedOrderSortByFields = map[string]bool{
	"id":          true,
	"oid":         true,
	"benefit_id":  true,
	"employee_id": true,
	"date":        true,
	"status":      true,
	"created_at":  true,
	"updated_at":  true,
}

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
	logger logger.Interface
}

func NewOrderRepository(
	gormDB *gorm.DB,
	logger logger.Interface,
) benefit.OrderRepository {
	return &OrderRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewOrderMapper(),
		logger: logger,
	}
}

func (r *OrderRepositoryImpl) CreateGuest(ctx context.Context, entity *benefit.Order) error {
	if entity.OID() == "" {
		oid, err := id.GenerateWithPrefix(id.PrefixOrder, 12)
		if err != nil {
			return fmt.Errorf("failed to generate order ID: %w", err)
		}
		if err := entity.SetOID(oid); err != nil {
			return fmt.Errorf("failed to assign order ID: %w", err)
		}
	}

	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map order entity to model", "error", err)
		return fmt.Errorf("failed to map order entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create guest order", "error", err)
		return fmt.Errorf("failed to create guest order: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set order ID: %w", err)
	}

	r.logger.Infow("guest order created successfully", "id", model.ID, "oid", entity.OID(), "date", entity.Date())
	return nil
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID uint) (*benefit.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get order by ID", "id", orderID, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OrderRepositoryImpl) GetByOID(ctx context.Context, oid string) (*benefit.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).Where("oid = ?", oid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get order by OID", "oid", oid, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OrderRepositoryImpl) List(ctx context.Context, filter benefit.OrderFilter) ([]*benefit.Order, int64, error) {
	var orderModels []*models.OrderModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.OrderModel{})

	if filter.BenefitID != nil {
		query = query.Where("benefit_id = ?", *filter.BenefitID)
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	switch {
	case filter.DateFrom != nil && filter.DateTo != nil:
		query = query.Scopes(db.DateBetween("date", filter.DateFrom.Time(), filter.DateTo.Time()))
	case filter.DateFrom != nil:
		query = query.Scopes(db.DateOnOrAfter("date", filter.DateFrom.Time()))
	case filter.DateTo != nil:
		query = query.Where("date <= ?", filter.DateTo.Time())
	}
	if filter.GuestOnly {
		query = query.Where("guest_name IS NOT NULL")
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count orders", "error", err)
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := filter.SortBy
	if sortBy == "" || !allowedOrderSortByFields[sortBy] {
		sortBy = "date"
	}
	order := "ASC"
	if filter.IsDescending() {
		order = "DESC"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&orderModels).Error; err != nil {
		r.logger.Errorw("failed to list orders", "error", err)
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	entities, err := r.mapper.ToEntities(orderModels)
	if err != nil {
		r.logger.Errorw("failed to map order models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map orders: %w", err)
	}
	return entities, total, nil
}
