package usecases

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
)

func testConfig() benefit.BusinessConfig {
	return benefit.BusinessConfig{
		MinSubscriptionDays:    5,
		MaxFreezesPerWeek:      2,
		CutoffOffsetHours:      9,
		NightCutoffOffsetHours: 16,
		DefaultWorkingDays:     schedule.MondayToFriday,
		ComboPrices: map[vo.ComboType]int64{
			vo.ComboStandard:   1200,
			vo.ComboPremium:    1800,
			vo.ComboVegetarian: 1100,
		},
		DefaultDailyLimit: 1500,
		Currency:          "SGD",
	}
}

func mustInstant(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts.UTC()
}

func fixedNow(t *testing.T, s string) func() time.Time {
	t.Helper()
	ts := mustInstant(t, s)
	return func() time.Time { return ts }
}

func lunchEmp(id uint) *employee.Employee {
	return &employee.Employee{
		ID:           id,
		EID:          fmt.Sprintf("emp_%08d", id),
		CompanyID:    1,
		IsActive:     true,
		InviteStatus: employee.InviteAccepted,
		ServiceType:  employee.ServiceLunch,
		ShiftType:    employee.ShiftDay,
	}
}

func compEmp(id uint) *employee.Employee {
	e := lunchEmp(id)
	e.ServiceType = employee.ServiceCompensation
	return e
}

// newPersistedBenefit builds an active lunch benefit over the week of
// 2024-01-08 (Monday) through 2024-01-12 at 1200 cents a day, with ids
// assigned as the repository would.
func newPersistedBenefit(t *testing.T, employeeID uint, autoRenew bool) *benefit.Benefit {
	t.Helper()
	created := mustInstant(t, "2024-01-05T00:00:00Z")
	rec, err := schedule.NewRecurrence(schedule.RecurrenceEveryDay, nil)
	require.NoError(t, err)

	b, err := benefit.NewBenefit(
		employeeID, vo.KindLunch,
		biztime.MustParseDate("2024-01-08"), biztime.MustParseDate("2024-01-12"),
		rec, schedule.MondayToFriday,
		vo.ComboStandard, vo.NewMoney(1200, "SGD"),
		false, autoRenew, created,
	)
	require.NoError(t, err)
	require.NoError(t, b.Materialize(testConfig(), nil, created))
	require.NoError(t, b.SetID(10))
	require.NoError(t, b.SetBID("bnf_w2x9k3m5"))
	for i, o := range b.Orders() {
		require.NoError(t, o.SetID(uint(100+i)))
		require.NoError(t, o.SetOID(fmt.Sprintf("ord_%08d", 100+i)))
	}
	return b
}

func TestCreateBenefits_PartialSuccess(t *testing.T) {
	var (
		mu      sync.Mutex
		created []*benefit.Benefit
	)
	benefitRepo := &mockBenefitRepository{
		CreateFunc: func(ctx context.Context, b *benefit.Benefit) error {
			mu.Lock()
			defer mu.Unlock()
			created = append(created, b)
			return nil
		},
	}
	employeeRepo := &mockEmployeeRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*employee.Employee, error) {
			// employee 3 does not exist, employee 2 is enrolled in the
			// compensation program
			return []*employee.Employee{lunchEmp(1), compEmp(2)}, nil
		},
	}
	configs := &mockConfigProvider{
		GetFunc: func(ctx context.Context) (benefit.BusinessConfig, error) { return testConfig(), nil },
	}

	uc := NewCreateBenefitsUseCase(benefitRepo, employeeRepo, configs, &mockEventPublisher{}, &mockLogger{})
	uc.now = fixedNow(t, "2024-01-05T00:00:00Z")

	result, err := uc.Execute(context.Background(), CreateBenefitsCommand{
		Kind:        "lunch",
		EmployeeIDs: []uint{1, 2, 3},
		StartDate:   biztime.MustParseDate("2024-01-08"),
		EndDate:     biztime.MustParseDate("2024-01-12"),
		Recurrence:  "every_day",
		ComboType:   "standard",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Requested)
	require.Len(t, result.Created, 1)
	assert.Equal(t, uint(1), result.Created[0].EmployeeID())
	assert.Equal(t, int64(6000), result.Created[0].TotalPrice().AmountInCents())
	assert.Len(t, result.Created[0].Orders(), 5)

	require.Len(t, result.Errors, 2)
	reasons := map[uint]string{}
	for _, e := range result.Errors {
		reasons[e.EmployeeID] = e.Reason
	}
	assert.Equal(t, benefit.ReasonServiceTypeCompensationOnly, reasons[2])
	assert.Equal(t, "employee_not_found", reasons[3])

	assert.Len(t, created, 1)
}

func TestCreateBenefits_BelowMinimumDays(t *testing.T) {
	benefitRepo := &mockBenefitRepository{
		CreateFunc: func(ctx context.Context, b *benefit.Benefit) error {
			t.Fatal("Create must not be called for a rejected employee")
			return nil
		},
	}
	employeeRepo := &mockEmployeeRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*employee.Employee, error) {
			return []*employee.Employee{lunchEmp(1)}, nil
		},
	}
	configs := &mockConfigProvider{
		GetFunc: func(ctx context.Context) (benefit.BusinessConfig, error) { return testConfig(), nil },
	}

	uc := NewCreateBenefitsUseCase(benefitRepo, employeeRepo, configs, &mockEventPublisher{}, &mockLogger{})
	uc.now = fixedNow(t, "2024-01-05T00:00:00Z")

	// Monday through Wednesday is only 3 qualifying days, below the
	// configured minimum of 5.
	result, err := uc.Execute(context.Background(), CreateBenefitsCommand{
		Kind:        "lunch",
		EmployeeIDs: []uint{1},
		StartDate:   biztime.MustParseDate("2024-01-08"),
		EndDate:     biztime.MustParseDate("2024-01-10"),
		Recurrence:  "every_day",
		ComboType:   "standard",
	})
	require.NoError(t, err)

	assert.Empty(t, result.Created)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, benefit.ReasonBelowMinDays, result.Errors[0].Reason)
}

func TestCreateBenefits_DuplicateActiveMapsToAlreadyHas(t *testing.T) {
	benefitRepo := &mockBenefitRepository{
		CreateFunc: func(ctx context.Context, b *benefit.Benefit) error {
			return errors.NewConflictError("duplicate active benefit")
		},
	}
	employeeRepo := &mockEmployeeRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*employee.Employee, error) {
			return []*employee.Employee{lunchEmp(1)}, nil
		},
	}
	configs := &mockConfigProvider{
		GetFunc: func(ctx context.Context) (benefit.BusinessConfig, error) { return testConfig(), nil },
	}

	uc := NewCreateBenefitsUseCase(benefitRepo, employeeRepo, configs, &mockEventPublisher{}, &mockLogger{})
	uc.now = fixedNow(t, "2024-01-05T00:00:00Z")

	result, err := uc.Execute(context.Background(), CreateBenefitsCommand{
		Kind:        "lunch",
		EmployeeIDs: []uint{1},
		StartDate:   biztime.MustParseDate("2024-01-08"),
		EndDate:     biztime.MustParseDate("2024-01-12"),
		Recurrence:  "every_day",
		ComboType:   "standard",
	})
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, benefit.ReasonAlreadyHasLunch, result.Errors[0].Reason)
}

func TestCreateBenefits_RejectsInvalidCommand(t *testing.T) {
	uc := NewCreateBenefitsUseCase(&mockBenefitRepository{}, &mockEmployeeRepository{}, &mockConfigProvider{
		GetFunc: func(ctx context.Context) (benefit.BusinessConfig, error) { return testConfig(), nil },
	}, &mockEventPublisher{}, &mockLogger{})
	uc.now = fixedNow(t, "2024-01-05T00:00:00Z")

	_, err := uc.Execute(context.Background(), CreateBenefitsCommand{
		Kind:       "lunch",
		StartDate:  biztime.MustParseDate("2024-01-08"),
		EndDate:    biztime.MustParseDate("2024-01-12"),
		Recurrence: "every_day",
		ComboType:  "standard",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}
