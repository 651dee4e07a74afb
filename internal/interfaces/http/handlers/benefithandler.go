package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	benefitdto "github.com/tiffin-hq/tiffin/internal/application/benefit/dto"
	"github.com/tiffin-hq/tiffin/internal/application/benefit/usecases"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/constants"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/id"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
	"github.com/tiffin-hq/tiffin/internal/shared/query"
	"github.com/tiffin-hq/tiffin/internal/shared/utils"
)

// BenefitHandler serves the subscription and compensation endpoints. Both
// kinds share one aggregate underneath, so each route method fixes the kind
// and delegates to a common implementation.
type BenefitHandler struct {
	createUseCase createBenefitsUseCase
	getUseCase    getBenefitUseCase
	listUseCase   listBenefitsUseCase
	updateUseCase updateBenefitUseCase
	pauseUseCase  pauseBenefitUseCase
	resumeUseCase resumeBenefitUseCase
	cancelUseCase cancelBenefitUseCase
	logger        logger.Interface
}

// NewBenefitHandler creates a new benefit handler
func NewBenefitHandler(
	createUC createBenefitsUseCase,
	getUC getBenefitUseCase,
	listUC listBenefitsUseCase,
	updateUC updateBenefitUseCase,
	pauseUC pauseBenefitUseCase,
	resumeUC resumeBenefitUseCase,
	cancelUC cancelBenefitUseCase,
	logger logger.Interface,
) *BenefitHandler {
	return &BenefitHandler{
		createUseCase: createUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		updateUseCase: updateUC,
		pauseUseCase:  pauseUC,
		resumeUseCase: resumeUC,
		cancelUseCase: cancelUC,
		logger:        logger,
	}
}

// CreateBenefitsRequest represents the bulk creation request. The kind comes
// from the route, dates are calendar dates in YYYY-MM-DD form.
type CreateBenefitsRequest struct {
	EmployeeIDs      []uint         `json:"employee_ids" binding:"required,min=1"`
	StartDate        biztime.Date   `json:"start_date" binding:"required"`
	EndDate          biztime.Date   `json:"end_date" binding:"required"`
	Recurrence       string         `json:"recurrence" binding:"omitempty,oneof=every_day every_other_day custom"`
	CustomDates      []biztime.Date `json:"custom_dates"`
	ComboType        string         `json:"combo_type"`
	DailyLimitCents  int64          `json:"daily_limit_cents"`
	TotalBudgetCents *int64         `json:"total_budget_cents"`
	CarryOver        bool           `json:"carry_over"`
	AutoRenew        bool           `json:"auto_renew"`
}

// UpdateBenefitRequest carries the mutable fields; absent fields keep
// their current values.
type UpdateBenefitRequest struct {
	Recurrence      *string        `json:"recurrence" binding:"omitempty,oneof=every_day every_other_day custom"`
	CustomDates     []biztime.Date `json:"custom_dates"`
	EndDate         *biztime.Date  `json:"end_date"`
	ComboType       *string        `json:"combo_type"`
	DailyLimitCents *int64         `json:"daily_limit_cents"`
	AutoRenew       *bool          `json:"auto_renew"`
}

// CancelBenefitRequest represents the cancellation request
type CancelBenefitRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// UpdateBenefitResponse pairs the updated aggregate with the settlement delta.
type UpdateBenefitResponse struct {
	Benefit         *benefitdto.BenefitDTO `json:"benefit"`
	PriceDeltaCents int64                  `json:"price_delta_cents"`
}

// CancelBenefitResponse pairs the cancelled aggregate with the refund amount.
type CancelBenefitResponse struct {
	Benefit     *benefitdto.BenefitDTO `json:"benefit"`
	RefundCents int64                  `json:"refund_cents"`
	Currency    string                 `json:"currency"`
}

// CreateSubscriptions creates lunch subscriptions for a batch of employees
// @Summary Create subscriptions
// @Description Create a lunch subscription per targeted employee; partial failures are reported per employee
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body CreateBenefitsRequest true "Bulk creation parameters"
// @Success 201 {object} utils.APIResponse{data=dto.BulkCreateResultDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /subscriptions [post]
func (h *BenefitHandler) CreateSubscriptions(c *gin.Context) {
	h.createBenefits(c, vo.KindLunch)
}

// CreateCompensations creates meal compensations for a batch of employees
// @Summary Create compensations
// @Description Create a meal compensation per targeted employee; partial failures are reported per employee
// @Tags Compensations
// @Accept json
// @Produce json
// @Param request body CreateBenefitsRequest true "Bulk creation parameters"
// @Success 201 {object} utils.APIResponse{data=dto.BulkCreateResultDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /compensations [post]
func (h *BenefitHandler) CreateCompensations(c *gin.Context) {
	h.createBenefits(c, vo.KindCompensation)
}

func (h *BenefitHandler) createBenefits(c *gin.Context, kind vo.BenefitKind) {
	var req CreateBenefitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create benefits", "error", err, "kind", kind)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateBenefitsCommand{
		Kind:             kind.String(),
		EmployeeIDs:      req.EmployeeIDs,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Recurrence:       req.Recurrence,
		CustomDates:      req.CustomDates,
		ComboType:        req.ComboType,
		DailyLimitCents:  req.DailyLimitCents,
		TotalBudgetCents: req.TotalBudgetCents,
		CarryOver:        req.CarryOver,
		AutoRenew:        req.AutoRenew,
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to create benefits", "error", err, "kind", kind, "employees", len(req.EmployeeIDs))
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := benefitdto.BulkCreateResultDTO{
		Requested: result.Requested,
		Created:   benefitdto.ToBenefitDTOs(result.Created),
		Errors:    toBenefitErrorDTOs(result.Errors),
	}

	utils.CreatedResponse(c, resp, "Benefits created")
}

// GetSubscription returns a single lunch subscription with its order days
// @Summary Get subscription
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Benefit ID (bnf_xxx)"
// @Success 200 {object} utils.APIResponse{data=dto.BenefitDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/{id} [get]
func (h *BenefitHandler) GetSubscription(c *gin.Context) {
	h.getBenefit(c, vo.KindLunch)
}

// GetCompensation returns a single meal compensation with its order days
// @Summary Get compensation
// @Tags Compensations
// @Produce json
// @Param id path string true "Benefit ID (bnf_xxx)"
// @Success 200 {object} utils.APIResponse{data=dto.BenefitDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /compensations/{id} [get]
func (h *BenefitHandler) GetCompensation(c *gin.Context) {
	h.getBenefit(c, vo.KindCompensation)
}

func (h *BenefitHandler) getBenefit(c *gin.Context, kind vo.BenefitKind) {
	bid, ok := benefitIDParam(c)
	if !ok {
		return
	}

	b, err := h.getUseCase.Execute(c.Request.Context(), bid)
	if err != nil {
		h.logger.Errorw("failed to get benefit", "error", err, "bid", bid)
		utils.ErrorResponseWithError(c, err)
		return
	}

	// A subscription ID requested through the compensations route (or vice
	// versa) does not exist as far as that resource is concerned.
	if b.Kind() != kind {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("benefit not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", benefitdto.ToBenefitDTO(b))
}

// ListSubscriptions returns a filtered, paginated subscription list
// @Summary List subscriptions
// @Tags Subscriptions
// @Produce json
// @Param employee_id query int false "Filter by employee"
// @Param company_id query int false "Filter by company"
// @Param status query string false "Benefit status"
// @Success 200 {object} utils.APIResponse{data=[]dto.BenefitDTO}
// @Router /subscriptions [get]
func (h *BenefitHandler) ListSubscriptions(c *gin.Context) {
	h.listBenefits(c, vo.KindLunch)
}

// ListCompensations returns a filtered, paginated compensation list
// @Summary List compensations
// @Tags Compensations
// @Produce json
// @Param employee_id query int false "Filter by employee"
// @Param company_id query int false "Filter by company"
// @Param status query string false "Benefit status"
// @Success 200 {object} utils.APIResponse{data=[]dto.BenefitDTO}
// @Router /compensations [get]
func (h *BenefitHandler) ListCompensations(c *gin.Context) {
	h.listBenefits(c, vo.KindCompensation)
}

func (h *BenefitHandler) listBenefits(c *gin.Context, kind vo.BenefitKind) {
	kindStr := kind.String()
	q := usecases.ListBenefitsQuery{
		Kind:       &kindStr,
		PageFilter: parsePageFilter(c),
		SortFilter: parseSortFilter(c),
	}

	if v, ok := parseUintQuery(c, "employee_id"); ok {
		q.EmployeeID = &v
	}
	if v, ok := parseUintQuery(c, "company_id"); ok {
		q.CompanyID = &v
	}
	if status := c.Query("status"); status != "" {
		q.Status = &status
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), q)
	if err != nil {
		h.logger.Errorw("failed to list benefits", "error", err, "kind", kind)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, benefitdto.ToBenefitDTOs(result.Benefits),
		result.Total, q.PageFilter.Page, q.PageFilter.Limit())
}

// UpdateSubscription modifies a subscription's schedule, combo or renewal settings
// @Summary Update subscription
// @Description Apply schedule or pricing changes and settle the price delta
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Benefit ID (bnf_xxx)"
// @Param request body UpdateBenefitRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=UpdateBenefitResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /subscriptions/{id} [patch]
func (h *BenefitHandler) UpdateSubscription(c *gin.Context) {
	h.updateBenefit(c)
}

// UpdateCompensation modifies a compensation's schedule or budget settings
// @Summary Update compensation
// @Description Apply schedule or budget changes and settle the price delta
// @Tags Compensations
// @Accept json
// @Produce json
// @Param id path string true "Benefit ID (bnf_xxx)"
// @Param request body UpdateBenefitRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=UpdateBenefitResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /compensations/{id} [patch]
func (h *BenefitHandler) UpdateCompensation(c *gin.Context) {
	h.updateBenefit(c)
}

func (h *BenefitHandler) updateBenefit(c *gin.Context) {
	bid, ok := benefitIDParam(c)
	if !ok {
		return
	}

	var req UpdateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update benefit", "error", err, "bid", bid)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateBenefitCommand{
		BID:             bid,
		Recurrence:      req.Recurrence,
		CustomDates:     req.CustomDates,
		EndDate:         req.EndDate,
		ComboType:       req.ComboType,
		DailyLimitCents: req.DailyLimitCents,
		AutoRenew:       req.AutoRenew,
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to update benefit", "error", err, "bid", bid)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Benefit updated", UpdateBenefitResponse{
		Benefit:         benefitdto.ToBenefitDTO(result.Benefit),
		PriceDeltaCents: result.PriceDeltaCents,
	})
}

// PauseSubscription pauses an active subscription
// @Summary Pause subscription
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Benefit ID (bnf_xxx)"
// @Success 200 {object} utils.APIResponse{data=dto.BenefitDTO}
// @Failure 409 {object} utils.APIResponse
// @Router /subscriptions/{id}/pause [post]
func (h *BenefitHandler) PauseSubscription(c *gin.Context) {
	bid, ok := benefitIDParam(c)
	if !ok {
		return
	}

	b, err := h.pauseUseCase.Execute(c.Request.Context(), usecases.PauseBenefitCommand{BID: bid})
	if err != nil {
		h.logger.Errorw("failed to pause benefit", "error", err, "bid", bid)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription paused", benefitdto.ToBenefitDTO(b))
}

// ResumeSubscription resumes a paused subscription
// @Summary Resume subscription
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Benefit ID (bnf_xxx)"
// @Success 200 {object} utils.APIResponse{data=dto.BenefitDTO}
// @Failure 409 {object} utils.APIResponse
// @Router /subscriptions/{id}/resume [post]
func (h *BenefitHandler) ResumeSubscription(c *gin.Context) {
	bid, ok := benefitIDParam(c)
	if !ok {
		return
	}

	b, err := h.resumeUseCase.Execute(c.Request.Context(), usecases.ResumeBenefitCommand{BID: bid})
	if err != nil {
		h.logger.Errorw("failed to resume benefit", "error", err, "bid", bid)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription resumed", benefitdto.ToBenefitDTO(b))
}

// CancelSubscription cancels a subscription and reports the unconsumed refund
// @Summary Cancel subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Benefit ID (bnf_xxx)"
// @Param request body CancelBenefitRequest true "Cancellation reason"
// @Success 200 {object} utils.APIResponse{data=CancelBenefitResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /subscriptions/{id}/cancel [post]
func (h *BenefitHandler) CancelSubscription(c *gin.Context) {
	bid, ok := benefitIDParam(c)
	if !ok {
		return
	}

	var req CancelBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for cancel benefit", "error", err, "bid", bid)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.cancelUseCase.Execute(c.Request.Context(), usecases.CancelBenefitCommand{
		BID:    bid,
		Reason: req.Reason,
	})
	if err != nil {
		h.logger.Errorw("failed to cancel benefit", "error", err, "bid", bid)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription cancelled", CancelBenefitResponse{
		Benefit:     benefitdto.ToBenefitDTO(result.Benefit),
		RefundCents: result.RefundCents,
		Currency:    result.Currency,
	})
}

func benefitIDParam(c *gin.Context) (string, bool) {
	bid := c.Param("id")
	if err := id.ValidatePrefix(bid, id.PrefixBenefit); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid benefit ID format, expected bnf_xxxxx")
		return "", false
	}
	return bid, true
}

func toBenefitErrorDTOs(errs []usecases.BenefitError) []benefitdto.BenefitErrorDTO {
	dtos := make([]benefitdto.BenefitErrorDTO, 0, len(errs))
	for _, e := range errs {
		dtos = append(dtos, benefitdto.BenefitErrorDTO{
			EmployeeID: e.EmployeeID,
			Reason:     e.Reason,
			Message:    e.Message,
		})
	}
	return dtos
}

func parsePageFilter(c *gin.Context) query.PageFilter {
	page := constants.DefaultPage
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	pageSize := constants.DefaultPageSize
	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		if ps, err := strconv.Atoi(pageSizeStr); err == nil && ps > 0 && ps <= constants.MaxPageSize {
			pageSize = ps
		}
	}

	return query.PageFilter{Page: page, PageSize: pageSize}
}

func parseSortFilter(c *gin.Context) query.SortFilter {
	return query.SortFilter{
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}

func parseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
