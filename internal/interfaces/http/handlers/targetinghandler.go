package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	benefitdto "github.com/tiffin-hq/tiffin/internal/application/benefit/dto"
	"github.com/tiffin-hq/tiffin/internal/application/benefit/usecases"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
	"github.com/tiffin-hq/tiffin/internal/shared/utils"
)

// TargetingHandler handles bulk-creation targeting previews
type TargetingHandler struct {
	previewUseCase previewTargetingUseCase
	logger         logger.Interface
}

// NewTargetingHandler creates a new targeting handler
func NewTargetingHandler(previewUC previewTargetingUseCase, logger logger.Interface) *TargetingHandler {
	return &TargetingHandler{
		previewUseCase: previewUC,
		logger:         logger,
	}
}

// PreviewTargetingRequest describes the candidate filter plus the admin's
// current selection so stale check-marks can be partitioned, not dropped.
type PreviewTargetingRequest struct {
	CompanyID   uint           `json:"company_id" binding:"required"`
	Kind        string         `json:"kind" binding:"required,oneof=lunch compensation"`
	Recurrence  string         `json:"recurrence" binding:"omitempty,oneof=every_day every_other_day custom"`
	CustomDates []biztime.Date `json:"custom_dates"`
	Shift       string         `json:"shift"`
	StartDate   biztime.Date   `json:"start_date" binding:"required"`
	EndDate     biztime.Date   `json:"end_date" binding:"required"`
	ComboType   string         `json:"combo_type"`
	SelectedIDs []uint         `json:"selected_ids"`
}

// PreviewTargeting reports who a bulk creation would hit and what it would cost
// @Summary Preview bulk targeting
// @Description Run the eligibility pipeline without creating anything; returns per-stage counts, the candidate set and a cost estimate
// @Tags Targeting
// @Accept json
// @Produce json
// @Param request body PreviewTargetingRequest true "Targeting parameters"
// @Success 200 {object} utils.APIResponse{data=dto.TargetingPreviewDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /targeting/preview [post]
func (h *TargetingHandler) PreviewTargeting(c *gin.Context) {
	var req PreviewTargetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for targeting preview", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.previewUseCase.Execute(c.Request.Context(), usecases.PreviewTargetingQuery{
		CompanyID:   req.CompanyID,
		Kind:        req.Kind,
		Recurrence:  req.Recurrence,
		CustomDates: req.CustomDates,
		Shift:       req.Shift,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ComboType:   req.ComboType,
		SelectedIDs: req.SelectedIDs,
	})
	if err != nil {
		h.logger.Errorw("failed to preview targeting", "error", err, "company_id", req.CompanyID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", benefitdto.TargetingPreviewDTO{
		StageCounts:     result.StageCounts,
		Candidates:      benefitdto.ToTargetingCandidateDTOs(result.Candidates),
		CandidateIDs:    result.CandidateIDs,
		Visible:         result.Partition.Visible,
		Invisible:       result.Partition.Invisible,
		VisibleCount:    result.Partition.VisibleCount(),
		TotalDays:       result.TotalDays,
		EstimateCents:   result.EstimateCents,
		Currency:        result.Currency,
		PerEmployeeDays: result.PerEmployeeDays,
	})
}
