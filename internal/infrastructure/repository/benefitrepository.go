package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/mappers"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/models"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/constants"
	"github.com/tiffin-hq/tiffin/internal/shared/db"
	appErrors "github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/id"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// allowedBenefitSortByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedBenefitSortByFields = map[string]bool{
	"id":          true,
	"bid":         true,
	"employee_id": true,
	"kind":        true,
	"status":      true,
	"start_date":  true,
	"end_date":    true,
	"created_at":  true,
	"updated_at":  true,
}

type BenefitRepositoryImpl struct {
	db          *gorm.DB
	tm          *db.TransactionManager
	mapper      mappers.BenefitMapper
	orderMapper mappers.OrderMapper
	logger      logger.Interface
}

func NewBenefitRepository(
	gormDB *gorm.DB,
	tm *db.TransactionManager,
	logger logger.Interface,
) benefit.Repository {
	return &BenefitRepositoryImpl{
		db:          gormDB,
		tm:          tm,
		mapper:      mappers.NewBenefitMapper(),
		orderMapper: mappers.NewOrderMapper(),
		logger:      logger,
	}
}

// Create persists the aggregate and its full order set in one transaction.
// The (kind, active_key) unique index turns a concurrent create for the same
// active slot into a duplicate-key failure, which surfaces as a conflict.
func (r *BenefitRepositoryImpl) Create(ctx context.Context, entity *benefit.Benefit) error {
	if entity.BID() == "" {
		bid, err := id.GenerateWithPrefix(id.PrefixBenefit, 12)
		if err != nil {
			return fmt.Errorf("failed to generate benefit ID: %w", err)
		}
		if err := entity.SetBID(bid); err != nil {
			return fmt.Errorf("failed to assign benefit ID: %w", err)
		}
	}
	for _, o := range entity.Orders() {
		if o.OID() == "" {
			oid, err := id.GenerateWithPrefix(id.PrefixOrder, 12)
			if err != nil {
				return fmt.Errorf("failed to generate order ID: %w", err)
			}
			if err := o.SetOID(oid); err != nil {
				return fmt.Errorf("failed to assign order ID: %w", err)
			}
		}
	}

	err := r.tm.RunInTransactionWithRetry(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		model, err := r.mapper.ToModel(entity)
		if err != nil {
			return fmt.Errorf("failed to map benefit entity: %w", err)
		}
		if err := tx.Create(model).Error; err != nil {
			if appErrors.IsDuplicateError(err) {
				return appErrors.NewConflictError(
					fmt.Sprintf("employee %d already holds an active %s benefit", entity.EmployeeID(), entity.Kind()),
				)
			}
			return fmt.Errorf("failed to create benefit: %w", err)
		}
		if err := entity.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set benefit ID: %w", err)
		}

		orderModels, err := r.mapper.OrderModels(entity)
		if err != nil {
			return fmt.Errorf("failed to map order entities: %w", err)
		}
		if len(orderModels) > 0 {
			if err := tx.Create(orderModels).Error; err != nil {
				return fmt.Errorf("failed to create benefit orders: %w", err)
			}
			orders := entity.Orders()
			for i, om := range orderModels {
				if err := orders[i].SetID(om.ID); err != nil {
					return fmt.Errorf("failed to set order ID: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to create benefit", "employee_id", entity.EmployeeID(), "kind", entity.Kind(), "error", err)
		return err
	}

	r.logger.Infow("benefit created successfully",
		"id", entity.ID(), "bid", entity.BID(),
		"employee_id", entity.EmployeeID(), "kind", entity.Kind(),
		"orders", len(entity.Orders()))
	return nil
}

// Update persists aggregate state, order mutations and removed-order
// deletions in one transaction, guarded by the version column.
func (r *BenefitRepositoryImpl) Update(ctx context.Context, entity *benefit.Benefit) error {
	err := r.tm.RunInTransactionWithRetry(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		model, err := r.mapper.ToModel(entity)
		if err != nil {
			return fmt.Errorf("failed to map benefit entity: %w", err)
		}

		result := tx.Model(&models.BenefitModel{}).
			Where("id = ? AND version < ?", model.ID, model.Version).
			Updates(map[string]interface{}{
				"active_key":        model.ActiveKey,
				"status":            model.Status,
				"start_date":        model.StartDate,
				"end_date":          model.EndDate,
				"recurrence_kind":   model.RecurrenceKind,
				"custom_dates":      model.CustomDates,
				"combo_type":        model.ComboType,
				"daily_rate_cents":  model.DailyRateCents,
				"total_price_cents": model.TotalPriceCents,
				"auto_renew":        model.AutoRenew,
				"cancelled_at":      model.CancelledAt,
				"cancel_reason":     model.CancelReason,
				"version":           model.Version,
				"updated_at":        model.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update benefit: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.NewConflictError(
				fmt.Sprintf("benefit %s was modified concurrently", entity.BID()),
			)
		}

		if removed := entity.RemovedOrderIDs(); len(removed) > 0 {
			if err := tx.Where("id IN ?", removed).Delete(&models.OrderModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete removed orders: %w", err)
			}
		}

		for _, o := range entity.Orders() {
			if o.ID() == 0 {
				if o.OID() == "" {
					oid, err := id.GenerateWithPrefix(id.PrefixOrder, 12)
					if err != nil {
						return fmt.Errorf("failed to generate order ID: %w", err)
					}
					if err := o.SetOID(oid); err != nil {
						return fmt.Errorf("failed to assign order ID: %w", err)
					}
				}
				om, err := r.orderMapper.ToModel(o)
				if err != nil {
					return fmt.Errorf("failed to map order entity: %w", err)
				}
				if err := tx.Create(om).Error; err != nil {
					return fmt.Errorf("failed to create order: %w", err)
				}
				if err := o.SetID(om.ID); err != nil {
					return fmt.Errorf("failed to set order ID: %w", err)
				}
				continue
			}

			om, err := r.orderMapper.ToModel(o)
			if err != nil {
				return fmt.Errorf("failed to map order entity: %w", err)
			}
			if err := tx.Model(&models.OrderModel{}).
				Where("id = ?", om.ID).
				Updates(map[string]interface{}{
					"date":          om.Date,
					"status":        om.Status,
					"price_cents":   om.PriceCents,
					"combo_type":    om.ComboType,
					"frozen_at":     om.FrozenAt,
					"freeze_reason": om.FreezeReason,
					"updated_at":    om.UpdatedAt,
				}).Error; err != nil {
				return fmt.Errorf("failed to update order %d: %w", om.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to update benefit", "bid", entity.BID(), "error", err)
		return err
	}

	entity.ClearRemovedOrderIDs()
	r.logger.Infow("benefit updated successfully", "id", entity.ID(), "bid", entity.BID(), "status", entity.Status())
	return nil
}

func (r *BenefitRepositoryImpl) GetByID(ctx context.Context, benefitID uint) (*benefit.Benefit, error) {
	var model models.BenefitModel
	if err := r.db.WithContext(ctx).First(&model, benefitID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get benefit by ID", "id", benefitID, "error", err)
		return nil, fmt.Errorf("failed to get benefit: %w", err)
	}
	return r.loadAggregate(ctx, &model)
}

func (r *BenefitRepositoryImpl) GetByBID(ctx context.Context, bid string) (*benefit.Benefit, error) {
	var model models.BenefitModel
	if err := r.db.WithContext(ctx).Where("bid = ?", bid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get benefit by BID", "bid", bid, "error", err)
		return nil, fmt.Errorf("failed to get benefit: %w", err)
	}
	return r.loadAggregate(ctx, &model)
}

func (r *BenefitRepositoryImpl) GetByOrderID(ctx context.Context, orderID uint) (*benefit.Benefit, error) {
	var orderModel models.OrderModel
	if err := r.db.WithContext(ctx).First(&orderModel, orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get order by ID", "order_id", orderID, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if orderModel.BenefitID == nil {
		// Guest orders have no owning aggregate.
		return nil, nil
	}
	return r.GetByID(ctx, *orderModel.BenefitID)
}

func (r *BenefitRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID uint, kind vo.BenefitKind) (*benefit.Benefit, error) {
	var model models.BenefitModel
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND kind = ? AND active_key IS NOT NULL", employeeID, kind.String()).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get active benefit", "employee_id", employeeID, "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to get active benefit: %w", err)
	}
	return r.loadAggregate(ctx, &model)
}

func (r *BenefitRepositoryImpl) List(ctx context.Context, filter benefit.Filter) ([]*benefit.Benefit, int64, error) {
	var benefitModels []*models.BenefitModel
	var total int64

	query := r.db.WithContext(ctx).Table(constants.TableBenefits).
		Where(constants.TableBenefits + ".deleted_at IS NULL")

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.CompanyID != nil {
		query = query.
			Joins(fmt.Sprintf("JOIN %s ON %s.id = %s.employee_id",
				constants.TableEmployees, constants.TableEmployees, constants.TableBenefits)).
			Where(constants.TableEmployees+".company_id = ?", *filter.CompanyID)
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", filter.Kind.String())
	}
	if filter.Status != nil {
		query = query.Where(constants.TableBenefits+".status = ?", filter.Status.String())
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count benefits", "error", err)
		return nil, 0, fmt.Errorf("failed to count benefits: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := filter.SortBy
	if sortBy == "" || !allowedBenefitSortByFields[sortBy] {
		sortBy = "created_at"
	}
	order := "ASC"
	if filter.IsDescending() || filter.SortBy == "" {
		order = "DESC"
	}
	query = query.Order(fmt.Sprintf("%s.%s %s", constants.TableBenefits, sortBy, order))

	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&benefitModels).Error; err != nil {
		r.logger.Errorw("failed to list benefits", "error", err)
		return nil, 0, fmt.Errorf("failed to list benefits: %w", err)
	}

	entities := make([]*benefit.Benefit, 0, len(benefitModels))
	for _, m := range benefitModels {
		entity, err := r.loadAggregate(ctx, m)
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, entity)
	}
	return entities, total, nil
}

func (r *BenefitRepositoryImpl) ListEnded(ctx context.Context, before biztime.Date) ([]*benefit.Benefit, error) {
	var benefitModels []*models.BenefitModel
	if err := r.db.WithContext(ctx).
		Where("status IN ? AND end_date < ?",
			[]string{string(vo.BenefitStatusActive), string(vo.BenefitStatusPaused)},
			before.Time()).
		Order("end_date ASC").
		Find(&benefitModels).Error; err != nil {
		r.logger.Errorw("failed to list ended benefits", "before", before, "error", err)
		return nil, fmt.Errorf("failed to list ended benefits: %w", err)
	}

	entities := make([]*benefit.Benefit, 0, len(benefitModels))
	for _, m := range benefitModels {
		entity, err := r.loadAggregate(ctx, m)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (r *BenefitRepositoryImpl) CountFrozenInWeek(ctx context.Context, employeeID uint, from, to time.Time) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Scopes(db.NotDeleted()).
		Where("employee_id = ? AND frozen_at >= ? AND frozen_at < ?", employeeID, from, to).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count frozen orders", "employee_id", employeeID, "error", err)
		return 0, fmt.Errorf("failed to count frozen orders: %w", err)
	}
	return int(count), nil
}

// loadAggregate hydrates the order set owned by a benefit row and maps the
// pair into the aggregate.
func (r *BenefitRepositoryImpl) loadAggregate(ctx context.Context, model *models.BenefitModel) (*benefit.Benefit, error) {
	var orderModels []*models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("benefit_id = ?", model.ID).
		Order("date ASC").
		Find(&orderModels).Error; err != nil {
		r.logger.Errorw("failed to load benefit orders", "benefit_id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to load benefit orders: %w", err)
	}

	entity, err := r.mapper.ToEntity(model, orderModels)
	if err != nil {
		r.logger.Errorw("failed to map benefit model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map benefit: %w", err)
	}
	return entity, nil
}
