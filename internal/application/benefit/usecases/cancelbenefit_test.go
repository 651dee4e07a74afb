package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
)

func lifecycleDeps(t *testing.T, b *benefit.Benefit) (*mockBenefitRepository, *mockEmployeeRepository, *mockConfigProvider) {
	t.Helper()
	benefitRepo := &mockBenefitRepository{
		GetByBIDFunc: func(ctx context.Context, bid string) (*benefit.Benefit, error) {
			if b != nil && bid == b.BID() {
				return b, nil
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
	return benefitRepo, employeeRepo, configs
}

func TestCancelBenefit_RefundsUnconsumedDays(t *testing.T) {
	b := newPersistedBenefit(t, 7, false)
	benefitRepo, employeeRepo, configs := lifecycleDeps(t, b)
	var updated *benefit.Benefit
	benefitRepo.UpdateFunc = func(ctx context.Context, b *benefit.Benefit) error {
		updated = b
		return nil
	}

	pub := &capturingPublisher{}
	uc := NewCancelBenefitUseCase(benefitRepo, employeeRepo, configs, pub, &mockLogger{})
	// Tuesday evening: Monday is past, Tuesday is beyond its 09:00
	// Singapore cutoff, Wednesday through Friday still refundable.
	uc.now = fixedNow(t, "2024-01-09T12:00:00Z")

	result, err := uc.Execute(context.Background(), CancelBenefitCommand{BID: b.BID(), Reason: "left company"})
	require.NoError(t, err)

	assert.Equal(t, int64(3600), result.RefundCents)
	assert.Equal(t, "SGD", result.Currency)
	assert.Equal(t, vo.BenefitStatusCancelled, result.Benefit.Status())
	require.NotNil(t, updated)

	types := pub.types()
	require.Len(t, types, 1)
	assert.Equal(t, benefit.EventBenefitCancelled, types[0])
}

func TestCancelBenefit_AlreadyCancelled(t *testing.T) {
	b := newPersistedBenefit(t, 7, false)
	benefitRepo, employeeRepo, configs := lifecycleDeps(t, b)

	uc := NewCancelBenefitUseCase(benefitRepo, employeeRepo, configs, &capturingPublisher{}, &mockLogger{})
	uc.now = fixedNow(t, "2024-01-09T12:00:00Z")

	_, err := uc.Execute(context.Background(), CancelBenefitCommand{BID: b.BID(), Reason: "first"})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CancelBenefitCommand{BID: b.BID(), Reason: "second"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, benefit.ReasonAlreadyCancelled, appErr.Reason)
}

func TestCancelBenefit_NotFound(t *testing.T) {
	benefitRepo, employeeRepo, configs := lifecycleDeps(t, nil)

	uc := NewCancelBenefitUseCase(benefitRepo, employeeRepo, configs, &capturingPublisher{}, &mockLogger{})
	uc.now = fixedNow(t, "2024-01-09T12:00:00Z")

	_, err := uc.Execute(context.Background(), CancelBenefitCommand{BID: "bnf_missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestPauseAndResumeBenefit_RedatesOrders(t *testing.T) {
	b := newPersistedBenefit(t, 7, false)
	benefitRepo, employeeRepo, configs := lifecycleDeps(t, b)

	pauseUC := NewPauseBenefitUseCase(benefitRepo, employeeRepo, configs, &capturingPublisher{}, &mockLogger{})
	pauseUC.now = fixedNow(t, "2024-01-07T00:00:00Z")
	paused, err := pauseUC.Execute(context.Background(), PauseBenefitCommand{BID: b.BID()})
	require.NoError(t, err)
	assert.Equal(t, vo.BenefitStatusPaused, paused.Status())

	resumeUC := NewResumeBenefitUseCase(benefitRepo, &capturingPublisher{}, &mockLogger{})
	resumeUC.now = fixedNow(t, "2024-01-10T00:00:00Z")
	resumed, err := resumeUC.Execute(context.Background(), ResumeBenefitCommand{BID: b.BID()})
	require.NoError(t, err)

	assert.Equal(t, vo.BenefitStatusActive, resumed.Status())
	// five working days re-dated after Wednesday 2024-01-10
	assert.Equal(t, "2024-01-17", resumed.EndDate().String())
	for _, o := range resumed.Orders() {
		assert.Equal(t, vo.OrderStatusActive, o.Status())
	}
}
