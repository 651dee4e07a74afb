package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
	"github.com/tiffin-hq/tiffin/internal/domain/targeting"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
)

func previewDeps(employees []*employee.Employee) (*mockEmployeeRepository, *mockConfigProvider) {
	employeeRepo := &mockEmployeeRepository{
		ListByCompanyFunc: func(ctx context.Context, companyID uint) ([]*employee.Employee, error) {
			return employees, nil
		},
	}
	configs := &mockConfigProvider{
		GetFunc: func(ctx context.Context) (benefit.BusinessConfig, error) { return testConfig(), nil },
	}
	return employeeRepo, configs
}

func TestPreviewTargeting_FiltersAndEstimates(t *testing.T) {
	inactive := lunchEmp(3)
	inactive.IsActive = false
	employees := []*employee.Employee{lunchEmp(1), lunchEmp(2), inactive}
	employeeRepo, configs := previewDeps(employees)

	uc := NewPreviewTargetingUseCase(employeeRepo, configs, &mockLogger{})

	result, err := uc.Execute(context.Background(), PreviewTargetingQuery{
		CompanyID:  1,
		Kind:       "lunch",
		Recurrence: "every_day",
		StartDate:  biztime.MustParseDate("2024-01-08"),
		EndDate:    biztime.MustParseDate("2024-01-12"),
		ComboType:  "standard",
	})
	require.NoError(t, err)

	assert.Equal(t, []uint{1, 2}, result.CandidateIDs)
	require.NotEmpty(t, result.StageCounts)
	assert.Equal(t, targeting.StageIsActive, result.StageCounts[0].Stage)
	assert.Equal(t, 2, result.StageCounts[0].Passed)

	// five working days x 1200 cents x 2 employees
	assert.Equal(t, 5, result.TotalDays)
	assert.Equal(t, int64(12000), result.EstimateCents)
	assert.Equal(t, "SGD", result.Currency)
	assert.Equal(t, 5, result.PerEmployeeDays[1])
	assert.Equal(t, 5, result.PerEmployeeDays[2])
}

func TestPreviewTargeting_PartitionsSelection(t *testing.T) {
	noLongerEligible := lunchEmp(2)
	noLongerEligible.ServiceType = employee.ServiceCompensation
	employees := []*employee.Employee{lunchEmp(1), noLongerEligible}
	employeeRepo, configs := previewDeps(employees)

	uc := NewPreviewTargetingUseCase(employeeRepo, configs, &mockLogger{})

	result, err := uc.Execute(context.Background(), PreviewTargetingQuery{
		CompanyID:   1,
		Kind:        "lunch",
		Recurrence:  "every_day",
		SelectedIDs: []uint{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, []uint{1}, result.Partition.Visible)
	assert.Equal(t, []uint{2}, result.Partition.Invisible)
	// no dates supplied, so no estimate is computed
	assert.Zero(t, result.EstimateCents)
}

func TestPreviewTargeting_CompensationSumsPerEmployeeDays(t *testing.T) {
	weekender := compEmp(2)
	weekender.WorkingDays = schedule.MonWedFri
	employees := []*employee.Employee{compEmp(1), weekender}
	employeeRepo, configs := previewDeps(employees)

	uc := NewPreviewTargetingUseCase(employeeRepo, configs, &mockLogger{})

	result, err := uc.Execute(context.Background(), PreviewTargetingQuery{
		CompanyID: 1,
		Kind:      "compensation",
		StartDate: biztime.MustParseDate("2024-01-08"),
		EndDate:   biztime.MustParseDate("2024-01-12"),
	})
	require.NoError(t, err)

	// 5 days at the default limit for one employee plus 3 for the other
	assert.Equal(t, 5, result.PerEmployeeDays[1])
	assert.Equal(t, 3, result.PerEmployeeDays[2])
	assert.Equal(t, int64((5+3)*1500), result.EstimateCents)
}

func TestPreviewTargeting_RequiresCompany(t *testing.T) {
	employeeRepo, configs := previewDeps(nil)
	uc := NewPreviewTargetingUseCase(employeeRepo, configs, &mockLogger{})

	_, err := uc.Execute(context.Background(), PreviewTargetingQuery{Kind: "lunch", Recurrence: "every_day"})
	require.Error(t, err)
}
