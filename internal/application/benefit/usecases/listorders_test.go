package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
)

func TestGetBenefit(t *testing.T) {
	b := newPersistedBenefit(t, 7, false)
	benefitRepo, _, _ := lifecycleDeps(t, b)

	uc := NewGetBenefitUseCase(benefitRepo, &mockLogger{})

	got, err := uc.Execute(context.Background(), b.BID())
	require.NoError(t, err)
	assert.Equal(t, b.BID(), got.BID())

	_, err = uc.Execute(context.Background(), "bnf_missing")
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))
}

func TestListBenefits_PassesFilterThrough(t *testing.T) {
	b := newPersistedBenefit(t, 7, false)
	var captured benefit.Filter
	benefitRepo := &mockBenefitRepository{
		ListFunc: func(ctx context.Context, filter benefit.Filter) ([]*benefit.Benefit, int64, error) {
			captured = filter
			return []*benefit.Benefit{b}, 1, nil
		},
	}

	uc := NewListBenefitsUseCase(benefitRepo, &mockLogger{})

	kind := "lunch"
	status := "active"
	employeeID := uint(7)
	result, err := uc.Execute(context.Background(), ListBenefitsQuery{
		EmployeeID: &employeeID,
		Kind:       &kind,
		Status:     &status,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Benefits, 1)
	require.NotNil(t, captured.Kind)
	assert.Equal(t, "lunch", captured.Kind.String())
	require.NotNil(t, captured.Status)
	assert.Equal(t, "active", captured.Status.String())
}

func TestListBenefits_RejectsUnknownStatus(t *testing.T) {
	uc := NewListBenefitsUseCase(&mockBenefitRepository{}, &mockLogger{})

	status := "suspended"
	_, err := uc.Execute(context.Background(), ListBenefitsQuery{Status: &status})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListOrders_ResolvesBenefitBID(t *testing.T) {
	b := newPersistedBenefit(t, 7, false)
	benefitRepo, _, _ := lifecycleDeps(t, b)

	var captured benefit.OrderFilter
	orderRepo := &mockOrderRepository{
		ListFunc: func(ctx context.Context, filter benefit.OrderFilter) ([]*benefit.Order, int64, error) {
			captured = filter
			return b.Orders(), int64(len(b.Orders())), nil
		},
	}

	uc := NewListOrdersUseCase(orderRepo, benefitRepo, &mockLogger{})

	bid := b.BID()
	result, err := uc.Execute(context.Background(), ListOrdersQuery{BenefitBID: &bid})
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Total)
	require.NotNil(t, captured.BenefitID)
	assert.Equal(t, b.ID(), *captured.BenefitID)
}

func TestListOrders_RejectsInvertedDateRange(t *testing.T) {
	uc := NewListOrdersUseCase(&mockOrderRepository{}, &mockBenefitRepository{}, &mockLogger{})

	from := biztime.MustParseDate("2024-01-12")
	to := biztime.MustParseDate("2024-01-08")
	_, err := uc.Execute(context.Background(), ListOrdersQuery{DateFrom: &from, DateTo: &to})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
