package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	benefitdto "github.com/tiffin-hq/tiffin/internal/application/benefit/dto"
	"github.com/tiffin-hq/tiffin/internal/application/benefit/usecases"
	"github.com/tiffin-hq/tiffin/internal/domain/targeting"
	"github.com/tiffin-hq/tiffin/internal/interfaces/http/handlers/testutil"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
)

type mockPreviewTargetingUC struct {
	result    *usecases.PreviewTargetingResult
	err       error
	lastQuery usecases.PreviewTargetingQuery
}

func (m *mockPreviewTargetingUC) Execute(ctx context.Context, q usecases.PreviewTargetingQuery) (*usecases.PreviewTargetingResult, error) {
	m.lastQuery = q
	return m.result, m.err
}

func TestTargetingHandler_PreviewTargeting_Success(t *testing.T) {
	mockUC := &mockPreviewTargetingUC{result: &usecases.PreviewTargetingResult{
		StageCounts: []targeting.StageCount{
			{Stage: "company", Passed: 10},
			{Stage: "active", Passed: 8},
			{Stage: "service", Passed: 6},
		},
		CandidateIDs: []uint{1, 2, 3, 4, 5, 6},
		Partition: targeting.Partition{
			Visible:   []uint{1, 2},
			Invisible: []uint{7},
		},
		TotalDays:     5,
		EstimateCents: 12000,
		Currency:      "SGD",
	}}
	handler := NewTargetingHandler(mockUC, testutil.NewMockLogger())

	reqBody := PreviewTargetingRequest{
		CompanyID:   1,
		Kind:        "lunch",
		StartDate:   biztime.MustParseDate("2024-01-08"),
		EndDate:     biztime.MustParseDate("2024-01-12"),
		SelectedIDs: []uint{1, 2, 7},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/targeting/preview", reqBody)

	handler.PreviewTargeting(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), mockUC.lastQuery.CompanyID)
	assert.Equal(t, "lunch", mockUC.lastQuery.Kind)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var dto benefitdto.TargetingPreviewDTO
	require.NoError(t, unmarshalData(resp, &dto))
	assert.Len(t, dto.StageCounts, 3)
	assert.Equal(t, []uint{1, 2}, dto.Visible)
	assert.Equal(t, []uint{7}, dto.Invisible)
	assert.Equal(t, 2, dto.VisibleCount)
	assert.Equal(t, int64(12000), dto.EstimateCents)
}

func TestTargetingHandler_PreviewTargeting_InvalidRequest(t *testing.T) {
	handler := NewTargetingHandler(nil, testutil.NewMockLogger())

	// missing company_id and kind
	reqBody := map[string]string{
		"start_date": "2024-01-08",
		"end_date":   "2024-01-12",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/targeting/preview", reqBody)

	handler.PreviewTargeting(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTargetingHandler_PreviewTargeting_InvalidKind(t *testing.T) {
	handler := NewTargetingHandler(nil, testutil.NewMockLogger())

	reqBody := map[string]string{
		"kind":       "dinner",
		"company_id": "1",
		"start_date": "2024-01-08",
		"end_date":   "2024-01-12",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/targeting/preview", reqBody)

	handler.PreviewTargeting(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTargetingHandler_PreviewTargeting_UseCaseError(t *testing.T) {
	mockUC := &mockPreviewTargetingUC{
		err: errors.NewValidationError("custom recurrence requires custom_dates"),
	}
	handler := NewTargetingHandler(mockUC, testutil.NewMockLogger())

	reqBody := PreviewTargetingRequest{
		CompanyID:  1,
		Kind:       "lunch",
		Recurrence: "custom",
		StartDate:  biztime.MustParseDate("2024-01-08"),
		EndDate:    biztime.MustParseDate("2024-01-12"),
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/targeting/preview", reqBody)

	handler.PreviewTargeting(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
