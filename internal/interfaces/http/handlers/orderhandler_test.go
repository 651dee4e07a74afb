package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	benefitdto "github.com/tiffin-hq/tiffin/internal/application/benefit/dto"
	"github.com/tiffin-hq/tiffin/internal/application/benefit/usecases"
	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/interfaces/http/handlers/testutil"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockListOrdersUC struct {
	result    *usecases.ListOrdersResult
	err       error
	lastQuery usecases.ListOrdersQuery
}

func (m *mockListOrdersUC) Execute(ctx context.Context, q usecases.ListOrdersQuery) (*usecases.ListOrdersResult, error) {
	m.lastQuery = q
	return m.result, m.err
}

type mockFreezeOrderUC struct {
	result  *usecases.FreezeOrderResult
	err     error
	lastCmd usecases.FreezeOrderCommand
}

func (m *mockFreezeOrderUC) Execute(ctx context.Context, cmd usecases.FreezeOrderCommand) (*usecases.FreezeOrderResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockUnfreezeOrderUC struct {
	result *usecases.UnfreezeOrderResult
	err    error
}

func (m *mockUnfreezeOrderUC) Execute(ctx context.Context, cmd usecases.UnfreezeOrderCommand) (*usecases.UnfreezeOrderResult, error) {
	return m.result, m.err
}

type mockCreateGuestOrderUC struct {
	result *benefit.Order
	err    error
}

func (m *mockCreateGuestOrderUC) Execute(ctx context.Context, cmd usecases.CreateGuestOrderCommand) (*benefit.Order, error) {
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func newTestOrderHandler(
	listUC listOrdersUseCase,
	freezeUC freezeOrderUseCase,
	unfreezeUC unfreezeOrderUseCase,
	createGuestUC createGuestOrderUseCase,
) *OrderHandler {
	return NewOrderHandler(listUC, freezeUC, unfreezeUC, createGuestUC, testutil.NewMockLogger())
}

func createTestGuestOrder(t *testing.T) *benefit.Order {
	t.Helper()
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	o, err := benefit.NewGuestOrder("Visitor", biztime.MustParseDate("2024-01-08"),
		vo.NewMoney(1200, "SGD"), vo.ComboStandard, now)
	require.NoError(t, err)
	require.NoError(t, o.SetID(100))
	require.NoError(t, o.SetOID("ord_g7h2k9m1"))
	return o
}

// =====================================================================
// ListOrders
// =====================================================================

func TestOrderHandler_ListOrders_Success(t *testing.T) {
	o := createTestGuestOrder(t)
	mockUC := &mockListOrdersUC{result: &usecases.ListOrdersResult{
		Orders: []*benefit.Order{o},
		Total:  1,
	}}
	handler := newTestOrderHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/orders", nil)
	testutil.SetQueryParams(c, map[string]string{
		"benefit_id": "bnf_w2x9k3m5",
		"date_from":  "2024-01-08",
		"date_to":    "2024-01-12",
		"status":     "scheduled",
	})

	handler.ListOrders(c)

	assert.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, mockUC.lastQuery.BenefitBID)
	assert.Equal(t, "bnf_w2x9k3m5", *mockUC.lastQuery.BenefitBID)
	require.NotNil(t, mockUC.lastQuery.DateFrom)
	assert.Equal(t, "2024-01-08", mockUC.lastQuery.DateFrom.String())
	require.NotNil(t, mockUC.lastQuery.Status)
	assert.Equal(t, "scheduled", *mockUC.lastQuery.Status)
	assert.False(t, mockUC.lastQuery.GuestOnly)
}

func TestOrderHandler_ListOrders_GuestOnly(t *testing.T) {
	mockUC := &mockListOrdersUC{result: &usecases.ListOrdersResult{}}
	handler := newTestOrderHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/orders", nil)
	testutil.SetQueryParams(c, map[string]string{"guest_only": "true"})

	handler.ListOrders(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.lastQuery.GuestOnly)
}

func TestOrderHandler_ListOrders_InvalidDate(t *testing.T) {
	handler := newTestOrderHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/orders", nil)
	testutil.SetQueryParams(c, map[string]string{"date_from": "08/01/2024"})

	handler.ListOrders(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_ListOrders_InvalidBenefitID(t *testing.T) {
	handler := newTestOrderHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/orders", nil)
	testutil.SetQueryParams(c, map[string]string{"benefit_id": "ord_w2x9k3m5"})

	handler.ListOrders(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// FreezeOrder / UnfreezeOrder
// =====================================================================

func TestOrderHandler_FreezeOrder_Success(t *testing.T) {
	b := createTestBenefit(t, vo.KindLunch)
	mockUC := &mockFreezeOrderUC{result: &usecases.FreezeOrderResult{
		Benefit:          b,
		NewEndDate:       biztime.MustParseDate("2024-01-13"),
		RemainingFreezes: 1,
	}}
	handler := newTestOrderHandler(nil, mockUC, nil, nil)

	reqBody := FreezeOrderRequest{Reason: "on leave"}
	c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_g7h2k9m1/freeze", reqBody)
	testutil.SetURLParam(c, "id", "ord_g7h2k9m1")

	handler.FreezeOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "on leave", mockUC.lastCmd.Reason)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var result FreezeOrderResponse
	require.NoError(t, unmarshalData(resp, &result))
	assert.Equal(t, "2024-01-13", result.NewEndDate.String())
	assert.Equal(t, 1, result.RemainingFreezes)
}

// The reason body is optional; an empty POST must still freeze.
func TestOrderHandler_FreezeOrder_NoBody(t *testing.T) {
	b := createTestBenefit(t, vo.KindLunch)
	mockUC := &mockFreezeOrderUC{result: &usecases.FreezeOrderResult{
		Benefit:          b,
		NewEndDate:       biztime.MustParseDate("2024-01-13"),
		RemainingFreezes: 0,
	}}
	handler := newTestOrderHandler(nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_g7h2k9m1/freeze", nil)
	testutil.SetURLParam(c, "id", "ord_g7h2k9m1")

	handler.FreezeOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mockUC.lastCmd.Reason)
}

func TestOrderHandler_FreezeOrder_QuotaExhausted(t *testing.T) {
	mockUC := &mockFreezeOrderUC{
		err: errors.NewStateConflictError("freeze_quota_exhausted", "weekly freeze quota is exhausted"),
	}
	handler := newTestOrderHandler(nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_g7h2k9m1/freeze", nil)
	testutil.SetURLParam(c, "id", "ord_g7h2k9m1")

	handler.FreezeOrder(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "freeze_quota_exhausted", resp.Error.Reason)
}

func TestOrderHandler_FreezeOrder_InvalidID(t *testing.T) {
	handler := newTestOrderHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/orders/bnf_w2x9k3m5/freeze", nil)
	testutil.SetURLParam(c, "id", "bnf_w2x9k3m5")

	handler.FreezeOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_UnfreezeOrder_Success(t *testing.T) {
	b := createTestBenefit(t, vo.KindLunch)
	mockUC := &mockUnfreezeOrderUC{result: &usecases.UnfreezeOrderResult{
		Benefit:    b,
		NewEndDate: biztime.MustParseDate("2024-01-12"),
	}}
	handler := newTestOrderHandler(nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_g7h2k9m1/unfreeze", nil)
	testutil.SetURLParam(c, "id", "ord_g7h2k9m1")

	handler.UnfreezeOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var result UnfreezeOrderResponse
	require.NoError(t, unmarshalData(resp, &result))
	assert.Equal(t, "2024-01-12", result.NewEndDate.String())
}

func TestOrderHandler_UnfreezeOrder_NotFrozen(t *testing.T) {
	mockUC := &mockUnfreezeOrderUC{
		err: errors.NewStateConflictError("not_frozen", "order is not frozen"),
	}
	handler := newTestOrderHandler(nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_g7h2k9m1/unfreeze", nil)
	testutil.SetURLParam(c, "id", "ord_g7h2k9m1")

	handler.UnfreezeOrder(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// CreateGuestOrder
// =====================================================================

func TestOrderHandler_CreateGuestOrder_Success(t *testing.T) {
	o := createTestGuestOrder(t)
	handler := newTestOrderHandler(nil, nil, nil, &mockCreateGuestOrderUC{result: o})

	reqBody := CreateGuestOrderRequest{
		GuestName: "Visitor",
		Date:      biztime.MustParseDate("2024-01-08"),
		ComboType: "standard",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/orders/guest", reqBody)

	handler.CreateGuestOrder(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var dto benefitdto.OrderDTO
	require.NoError(t, unmarshalData(resp, &dto))
	assert.Equal(t, "ord_g7h2k9m1", dto.ID)
	assert.Equal(t, "Visitor", dto.GuestName)
	assert.Empty(t, dto.BenefitID)
}

func TestOrderHandler_CreateGuestOrder_InvalidRequest(t *testing.T) {
	handler := newTestOrderHandler(nil, nil, nil, nil)

	// missing guest_name and combo_type
	reqBody := map[string]string{"date": "2024-01-08"}
	c, w := testutil.NewTestContext(http.MethodPost, "/orders/guest", reqBody)

	handler.CreateGuestOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
