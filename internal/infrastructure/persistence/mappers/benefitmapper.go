package mappers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/datatypes"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/models"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
)

// BenefitMapper converts between the benefit aggregate and its persistence
// models. The order set travels with the aggregate: ToEntity needs the
// benefit's order rows, OrderModels extracts them for writing.
type BenefitMapper interface {
	ToEntity(model *models.BenefitModel, orders []*models.OrderModel) (*benefit.Benefit, error)
	ToModel(entity *benefit.Benefit) (*models.BenefitModel, error)
	OrderModels(entity *benefit.Benefit) ([]*models.OrderModel, error)
}

type BenefitMapperImpl struct {
	orders OrderMapper
}

func NewBenefitMapper() BenefitMapper {
	return &BenefitMapperImpl{orders: NewOrderMapper()}
}

func (m *BenefitMapperImpl) ToEntity(model *models.BenefitModel, orders []*models.OrderModel) (*benefit.Benefit, error) {
	if model == nil {
		return nil, nil
	}

	var customDates []biztime.Date
	if len(model.CustomDates) > 0 {
		if err := json.Unmarshal(model.CustomDates, &customDates); err != nil {
			return nil, fmt.Errorf("failed to unmarshal custom dates: %w", err)
		}
	}
	recurrence, err := schedule.NewRecurrence(schedule.RecurrenceKind(model.RecurrenceKind), customDates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recurrence: %w", err)
	}

	orderEntities, err := m.orders.ToEntities(orders)
	if err != nil {
		return nil, err
	}

	entity, err := benefit.ReconstructBenefit(
		model.ID,
		model.BID,
		model.EmployeeID,
		vo.BenefitKind(model.Kind),
		vo.BenefitStatus(model.Status),
		modelDate(model.StartDate),
		modelDate(model.EndDate),
		recurrence,
		schedule.WeekdaySet(model.WorkingDays),
		vo.ComboType(model.ComboType),
		vo.NewMoney(model.DailyRateCents, model.Currency),
		vo.NewMoney(model.TotalPriceCents, model.Currency),
		model.CarryOver,
		model.AutoRenew,
		model.CancelledAt,
		model.CancelReason,
		orderEntities,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct benefit entity: %w", err)
	}

	return entity, nil
}

func (m *BenefitMapperImpl) ToModel(entity *benefit.Benefit) (*models.BenefitModel, error) {
	if entity == nil {
		return nil, nil
	}

	var customDatesJSON datatypes.JSON
	if dates := entity.Recurrence().CustomDates(); len(dates) > 0 {
		data, err := json.Marshal(dates)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal custom dates: %w", err)
		}
		customDatesJSON = data
	}

	// The (kind, active_key) unique index only sees non-NULL keys, so the
	// key is set exactly while the benefit occupies its active slot.
	var activeKey *string
	if entity.Status().IsCurrent() {
		key := strconv.FormatUint(uint64(entity.EmployeeID()), 10)
		activeKey = &key
	}

	return &models.BenefitModel{
		ID:              entity.ID(),
		BID:             entity.BID(),
		EmployeeID:      entity.EmployeeID(),
		Kind:            entity.Kind().String(),
		ActiveKey:       activeKey,
		Status:          entity.Status().String(),
		StartDate:       entity.StartDate().Time(),
		EndDate:         entity.EndDate().Time(),
		RecurrenceKind:  string(entity.Recurrence().Kind()),
		CustomDates:     customDatesJSON,
		WorkingDays:     uint8(entity.WorkingDays()),
		ComboType:       entity.ComboType().String(),
		DailyRateCents:  entity.DailyRate().AmountInCents(),
		TotalPriceCents: entity.TotalPrice().AmountInCents(),
		Currency:        entity.DailyRate().Currency(),
		CarryOver:       entity.CarryOver(),
		AutoRenew:       entity.AutoRenew(),
		CancelledAt:     entity.CancelledAt(),
		CancelReason:    entity.CancelReason(),
		Version:         entity.Version(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

func (m *BenefitMapperImpl) OrderModels(entity *benefit.Benefit) ([]*models.OrderModel, error) {
	if entity == nil {
		return nil, nil
	}
	return m.orders.ToModels(entity.Orders())
}
