package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	benefitdto "github.com/tiffin-hq/tiffin/internal/application/benefit/dto"
	"github.com/tiffin-hq/tiffin/internal/application/benefit/usecases"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/id"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
	"github.com/tiffin-hq/tiffin/internal/shared/utils"
)

// OrderHandler handles order day operations: listing, freezing and guest orders
type OrderHandler struct {
	listUseCase        listOrdersUseCase
	freezeUseCase      freezeOrderUseCase
	unfreezeUseCase    unfreezeOrderUseCase
	createGuestUseCase createGuestOrderUseCase
	logger             logger.Interface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	listUC listOrdersUseCase,
	freezeUC freezeOrderUseCase,
	unfreezeUC unfreezeOrderUseCase,
	createGuestUC createGuestOrderUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		listUseCase:        listUC,
		freezeUseCase:      freezeUC,
		unfreezeUseCase:    unfreezeUC,
		createGuestUseCase: createGuestUC,
		logger:             logger,
	}
}

// FreezeOrderRequest represents the freeze request
type FreezeOrderRequest struct {
	Reason string `json:"reason"`
}

// CreateGuestOrderRequest represents a one-off order for a visitor
type CreateGuestOrderRequest struct {
	GuestName string       `json:"guest_name" binding:"required"`
	Date      biztime.Date `json:"date" binding:"required"`
	ComboType string       `json:"combo_type" binding:"required"`
}

// FreezeOrderResponse reports the extended end date and the quota left this week.
type FreezeOrderResponse struct {
	Benefit          *benefitdto.BenefitDTO `json:"benefit"`
	NewEndDate       biztime.Date           `json:"new_end_date"`
	RemainingFreezes int                    `json:"remaining_freezes"`
}

// UnfreezeOrderResponse reports the restored end date.
type UnfreezeOrderResponse struct {
	Benefit    *benefitdto.BenefitDTO `json:"benefit"`
	NewEndDate biztime.Date           `json:"new_end_date"`
}

// ListOrders returns a filtered, paginated order list
// @Summary List orders
// @Tags Orders
// @Produce json
// @Param benefit_id query string false "Owning benefit (bnf_xxx)"
// @Param employee_id query int false "Filter by employee"
// @Param status query string false "Order status"
// @Param date_from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param guest_only query bool false "Only guest orders"
// @Success 200 {object} utils.APIResponse{data=[]dto.OrderDTO}
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	q := usecases.ListOrdersQuery{
		GuestOnly:  c.Query("guest_only") == "true",
		PageFilter: parsePageFilter(c),
		SortFilter: parseSortFilter(c),
	}

	benefitBID := ""
	if bid := c.Query("benefit_id"); bid != "" {
		if err := id.ValidatePrefix(bid, id.PrefixBenefit); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid benefit ID format, expected bnf_xxxxx")
			return
		}
		benefitBID = bid
		q.BenefitBID = &bid
	}
	if v, ok := parseUintQuery(c, "employee_id"); ok {
		q.EmployeeID = &v
	}
	if status := c.Query("status"); status != "" {
		q.Status = &status
	}
	if raw := c.Query("date_from"); raw != "" {
		d, err := biztime.ParseDate(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid date_from, expected YYYY-MM-DD")
			return
		}
		q.DateFrom = &d
	}
	if raw := c.Query("date_to"); raw != "" {
		d, err := biztime.ParseDate(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid date_to, expected YYYY-MM-DD")
			return
		}
		q.DateTo = &d
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), q)
	if err != nil {
		h.logger.Errorw("failed to list orders", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, benefitdto.ToOrderDTOs(result.Orders, benefitBID),
		result.Total, q.PageFilter.Page, q.PageFilter.Limit())
}

// FreezeOrder freezes one order day and extends the benefit by one day
// @Summary Freeze order
// @Description Freeze a scheduled day before its cutoff; the benefit end date shifts out by one day
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (ord_xxx)"
// @Param request body FreezeOrderRequest false "Optional reason"
// @Success 200 {object} utils.APIResponse{data=FreezeOrderResponse}
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /orders/{id}/freeze [post]
func (h *OrderHandler) FreezeOrder(c *gin.Context) {
	oid := c.Param("id")
	if err := id.ValidatePrefix(oid, id.PrefixOrder); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order ID format, expected ord_xxxxx")
		return
	}

	// The reason body is optional.
	var req FreezeOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for freeze order", "error", err, "oid", oid)
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
			return
		}
	}

	result, err := h.freezeUseCase.Execute(c.Request.Context(), usecases.FreezeOrderCommand{
		OID:    oid,
		Reason: req.Reason,
	})
	if err != nil {
		h.logger.Errorw("failed to freeze order", "error", err, "oid", oid)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order frozen", FreezeOrderResponse{
		Benefit:          benefitdto.ToBenefitDTO(result.Benefit),
		NewEndDate:       result.NewEndDate,
		RemainingFreezes: result.RemainingFreezes,
	})
}

// UnfreezeOrder restores a frozen order day and pulls the end date back in
// @Summary Unfreeze order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID (ord_xxx)"
// @Success 200 {object} utils.APIResponse{data=UnfreezeOrderResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /orders/{id}/unfreeze [post]
func (h *OrderHandler) UnfreezeOrder(c *gin.Context) {
	oid := c.Param("id")
	if err := id.ValidatePrefix(oid, id.PrefixOrder); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order ID format, expected ord_xxxxx")
		return
	}

	result, err := h.unfreezeUseCase.Execute(c.Request.Context(), usecases.UnfreezeOrderCommand{OID: oid})
	if err != nil {
		h.logger.Errorw("failed to unfreeze order", "error", err, "oid", oid)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order unfrozen", UnfreezeOrderResponse{
		Benefit:    benefitdto.ToBenefitDTO(result.Benefit),
		NewEndDate: result.NewEndDate,
	})
}

// CreateGuestOrder creates a standalone order for a visitor
// @Summary Create guest order
// @Description Create a one-off order that belongs to no benefit and settles immediately
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body CreateGuestOrderRequest true "Guest order parameters"
// @Success 201 {object} utils.APIResponse{data=dto.OrderDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /orders/guest [post]
func (h *OrderHandler) CreateGuestOrder(c *gin.Context) {
	var req CreateGuestOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create guest order", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	order, err := h.createGuestUseCase.Execute(c.Request.Context(), usecases.CreateGuestOrderCommand{
		GuestName: req.GuestName,
		Date:      req.Date,
		ComboType: req.ComboType,
	})
	if err != nil {
		h.logger.Errorw("failed to create guest order", "error", err, "guest", req.GuestName)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, benefitdto.ToOrderDTO(order, ""), "Guest order created")
}
