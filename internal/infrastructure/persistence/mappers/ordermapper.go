package mappers

import (
	"fmt"
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/infrastructure/persistence/models"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/mapper"
)

type OrderMapper interface {
	ToEntity(model *models.OrderModel) (*benefit.Order, error)
	ToModel(entity *benefit.Order) (*models.OrderModel, error)
	ToEntities(models []*models.OrderModel) ([]*benefit.Order, error)
	ToModels(entities []*benefit.Order) ([]*models.OrderModel, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

// modelDate converts a stored UTC-midnight timestamp back to a civil date.
func modelDate(t time.Time) biztime.Date {
	u := t.UTC()
	return biztime.NewDate(u.Year(), u.Month(), u.Day())
}

func (m *OrderMapperImpl) ToEntity(model *models.OrderModel) (*benefit.Order, error) {
	if model == nil {
		return nil, nil
	}

	var employeeID uint
	if model.EmployeeID != nil {
		employeeID = *model.EmployeeID
	}
	var guestName string
	if model.GuestName != nil {
		guestName = *model.GuestName
	}

	entity, err := benefit.ReconstructOrder(
		model.ID,
		model.OID,
		model.BenefitID,
		employeeID,
		guestName,
		vo.BenefitKind(model.Kind),
		modelDate(model.Date),
		vo.OrderStatus(model.Status),
		vo.NewMoney(model.PriceCents, model.Currency),
		vo.ComboType(model.ComboType),
		model.FrozenAt,
		model.FreezeReason,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order entity: %w", err)
	}

	return entity, nil
}

func (m *OrderMapperImpl) ToModel(entity *benefit.Order) (*models.OrderModel, error) {
	if entity == nil {
		return nil, nil
	}

	var employeeID *uint
	if id := entity.EmployeeID(); id != 0 {
		v := id
		employeeID = &v
	}
	var guestName *string
	if name := entity.GuestName(); name != "" {
		v := name
		guestName = &v
	}

	return &models.OrderModel{
		ID:           entity.ID(),
		OID:          entity.OID(),
		BenefitID:    entity.BenefitID(),
		EmployeeID:   employeeID,
		GuestName:    guestName,
		Kind:         entity.Kind().String(),
		Date:         entity.Date().Time(),
		Status:       entity.Status().String(),
		PriceCents:   entity.Price().AmountInCents(),
		Currency:     entity.Price().Currency(),
		ComboType:    entity.ComboType().String(),
		FrozenAt:     entity.FrozenAt(),
		FreezeReason: entity.FreezeReason(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *OrderMapperImpl) ToEntities(modelList []*models.OrderModel) ([]*benefit.Order, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.OrderModel) uint { return model.ID })
}

func (m *OrderMapperImpl) ToModels(entities []*benefit.Order) ([]*models.OrderModel, error) {
	return mapper.MapSlicePtrWithID(entities, m.ToModel, func(entity *benefit.Order) uint { return entity.ID() })
}
