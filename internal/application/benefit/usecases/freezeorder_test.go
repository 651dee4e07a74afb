package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
)

func freezeDeps(t *testing.T, b *benefit.Benefit, frozenThisWeek int) (*mockBenefitRepository, *mockOrderRepository, *mockEmployeeRepository, *mockConfigProvider) {
	t.Helper()
	benefitRepo := &mockBenefitRepository{
		GetByOrderIDFunc: func(ctx context.Context, orderID uint) (*benefit.Benefit, error) {
			return b, nil
		},
		CountFrozenInWeekFunc: func(ctx context.Context, employeeID uint, from, to time.Time) (int, error) {
			return frozenThisWeek, nil
		},
	}
	orderRepo := &mockOrderRepository{
		GetByOIDFunc: func(ctx context.Context, oid string) (*benefit.Order, error) {
			for _, o := range b.Orders() {
				if o.OID() == oid {
					return o, nil
				}
			}
			return nil, nil
		},
	}
	employeeRepo := &mockEmployeeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*employee.Employee, error) {
			return lunchEmp(id), nil
		},
	}
	configs := &mockConfigProvider{
		GetFunc: func(ctx context.Context) (benefit.BusinessConfig, error) { return testConfig(), nil },
	}
	return benefitRepo, orderRepo, employeeRepo, configs
}

func TestFreezeOrder_ExtendsPeriod(t *testing.T) {
	b := newPersistedBenefit(t, 7, false)
	benefitRepo, orderRepo, employeeRepo, configs := freezeDeps(t, b, 0)

	var updated *benefit.Benefit
	benefitRepo.UpdateFunc = func(ctx context.Context, b *benefit.Benefit) error {
		updated = b
		return nil
	}
	pub := &capturingPublisher{}
	uc := NewFreezeOrderUseCase(benefitRepo, orderRepo, employeeRepo, configs, pub, &mockLogger{})
	uc.now = fixedNow(t, "2024-01-09T12:00:00Z")

	// freeze Wednesday 2024-01-10 (order id 102)
	result, err := uc.Execute(context.Background(), FreezeOrderCommand{OID: "ord_00000102", Reason: "travelling"})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", result.NewEndDate.String())
	assert.Equal(t, 1, result.RemainingFreezes)
	require.NotNil(t, updated)
	assert.Len(t, updated.Orders(), 6)
	assert.Equal(t, int64(6000), updated.TotalPrice().AmountInCents())

	eventTypes := pub.types()
	require.Len(t, eventTypes, 1)
	assert.Equal(t, benefit.EventOrderFrozen, eventTypes[0])
}

func TestFreezeOrder_QuotaExhausted(t *testing.T) {
	b := newPersistedBenefit(t, 7, false)
	benefitRepo, orderRepo, employeeRepo, configs := freezeDeps(t, b, 2)
	benefitRepo.UpdateFunc = func(ctx context.Context, b *benefit.Benefit) error {
		t.Fatal("Update must not be called on a rejected freeze")
		return nil
	}

	uc := NewFreezeOrderUseCase(benefitRepo, orderRepo, employeeRepo, configs, &capturingPublisher{}, &mockLogger{})
	uc.now = fixedNow(t, "2024-01-09T12:00:00Z")

	_, err := uc.Execute(context.Background(), FreezeOrderCommand{OID: "ord_00000102"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, benefit.ReasonFreezeQuotaExceeded, appErr.Reason)
	assert.Equal(t, 2, appErr.Context["used_this_week"])
	assert.Equal(t, "2024-01-12", b.EndDate().String())
}

func TestFreezeOrder_CutoffPassed(t *testing.T) {
	b := newPersistedBenefit(t, 7, false)
	benefitRepo, orderRepo, employeeRepo, configs := freezeDeps(t, b, 0)

	uc := NewFreezeOrderUseCase(benefitRepo, orderRepo, employeeRepo, configs, &capturingPublisher{}, &mockLogger{})
	// 2024-01-10 09:00 Singapore is 01:00 UTC; past the cutoff for that day
	uc.now = fixedNow(t, "2024-01-10T01:00:00Z")

	_, err := uc.Execute(context.Background(), FreezeOrderCommand{OID: "ord_00000102"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, benefit.ReasonCutoffPassed, appErr.Reason)
}

func TestFreezeOrder_UnknownOrder(t *testing.T) {
	b := newPersistedBenefit(t, 7, false)
	benefitRepo, orderRepo, employeeRepo, configs := freezeDeps(t, b, 0)

	uc := NewFreezeOrderUseCase(benefitRepo, orderRepo, employeeRepo, configs, &capturingPublisher{}, &mockLogger{})
	uc.now = fixedNow(t, "2024-01-09T12:00:00Z")

	_, err := uc.Execute(context.Background(), FreezeOrderCommand{OID: "ord_nope"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUnfreezeOrder_RestoresEndDate(t *testing.T) {
	b := newPersistedBenefit(t, 7, false)
	benefitRepo, orderRepo, employeeRepo, configs := freezeDeps(t, b, 0)
	var updated *benefit.Benefit
	benefitRepo.UpdateFunc = func(ctx context.Context, b *benefit.Benefit) error {
		updated = b
		return nil
	}

	freezeUC := NewFreezeOrderUseCase(benefitRepo, orderRepo, employeeRepo, configs, &capturingPublisher{}, &mockLogger{})
	freezeUC.now = fixedNow(t, "2024-01-09T12:00:00Z")
	_, err := freezeUC.Execute(context.Background(), FreezeOrderCommand{OID: "ord_00000102"})
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", b.EndDate().String())
	b.ClearRemovedOrderIDs()

	unfreezeUC := NewUnfreezeOrderUseCase(benefitRepo, orderRepo, &capturingPublisher{}, &mockLogger{})
	unfreezeUC.now = fixedNow(t, "2024-01-09T13:00:00Z")
	result, err := unfreezeUC.Execute(context.Background(), UnfreezeOrderCommand{OID: "ord_00000102"})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-12", result.NewEndDate.String())
	require.NotNil(t, updated)
	assert.Len(t, updated.Orders(), 5)
}
