package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
	"github.com/Triostacksoftware/robobooks-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adjustmentHandler handles HTTP requests related to currency adjustments.
type adjustmentHandler struct {
	adjustmentService portssvc.AdjustmentSvcFacade
}

// newAdjustmentHandler creates a new adjustmentHandler.
func newAdjustmentHandler(adjustmentService portssvc.AdjustmentSvcFacade) *adjustmentHandler {
	return &adjustmentHandler{adjustmentService: adjustmentService}
}

// createAdjustment godoc
// @Summary Create a currency adjustment
// @Description Converts the amount at the given rate, classifies it as gain/loss/neutral and stores it pending
// @Tags currency-adjustments
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   adjustment body dto.CreateCurrencyAdjustmentRequest true "Adjustment"
// @Success 201 {object} dto.CurrencyAdjustmentResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /organizations/{orgID}/currency-adjustments [post]
func (h *adjustmentHandler) createAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	adj, err := h.adjustmentService.CreateAdjustment(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCurrencyAdjustmentResponse(adj))
}

// getAdjustment godoc
// @Summary Get a currency adjustment
// @Tags currency-adjustments
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   adjustmentID path string true "Adjustment ID"
// @Success 200 {object} dto.CurrencyAdjustmentResponse
// @Failure 404 {object} map[string]string "Adjustment not found"
// @Router /organizations/{orgID}/currency-adjustments/{adjustmentID} [get]
func (h *adjustmentHandler) getAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adj, err := h.adjustmentService.GetAdjustmentByID(c.Request.Context(), c.Param("orgID"), c.Param("adjustmentID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyAdjustmentResponse(adj))
}

// listAdjustments godoc
// @Summary List currency adjustments
// @Tags currency-adjustments
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.CurrencyAdjustmentResponse
// @Router /organizations/{orgID}/currency-adjustments [get]
func (h *adjustmentHandler) listAdjustments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	adjustments, err := h.adjustmentService.ListAdjustments(c.Request.Context(), c.Param("orgID"), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	responses := make([]dto.CurrencyAdjustmentResponse, len(adjustments))
	for i := range adjustments {
		responses[i] = dto.ToCurrencyAdjustmentResponse(&adjustments[i])
	}
	c.JSON(http.StatusOK, responses)
}

// approveAdjustment godoc
// @Summary Approve a pending currency adjustment
// @Description Approves the adjustment and posts the resulting gain/loss journal entry
// @Tags currency-adjustments
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   adjustmentID path string true "Adjustment ID"
// @Success 200 {object} dto.CurrencyAdjustmentResponse
// @Failure 409 {object} map[string]string "Not pending or period locked"
// @Router /organizations/{orgID}/currency-adjustments/{adjustmentID}/approve [post]
func (h *adjustmentHandler) approveAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	adj, err := h.adjustmentService.ApproveAdjustment(c.Request.Context(), organizationID, c.Param("adjustmentID"), userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Currency adjustment approved", slog.String("adjustment_id", adj.AdjustmentID))
	c.JSON(http.StatusOK, dto.ToCurrencyAdjustmentResponse(adj))
}

// rejectAdjustment godoc
// @Summary Reject a pending currency adjustment
// @Tags currency-adjustments
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   adjustmentID path string true "Adjustment ID"
// @Param   rejection body dto.RejectCurrencyAdjustmentRequest true "Rejection reason"
// @Success 200 {object} dto.CurrencyAdjustmentResponse
// @Failure 409 {object} map[string]string "Not pending"
// @Router /organizations/{orgID}/currency-adjustments/{adjustmentID}/reject [post]
func (h *adjustmentHandler) rejectAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RejectCurrencyAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for rejectAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	adj, err := h.adjustmentService.RejectAdjustment(c.Request.Context(), organizationID, c.Param("adjustmentID"), req.Reason, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyAdjustmentResponse(adj))
}

// registerAdjustmentRoutes registers currency adjustment routes on the organization group.
func registerAdjustmentRoutes(group *gin.RouterGroup, adjustmentService portssvc.AdjustmentSvcFacade) {
	h := newAdjustmentHandler(adjustmentService)

	adjustments := group.Group("/currency-adjustments")
	{
		adjustments.POST("", h.createAdjustment)
		adjustments.GET("", h.listAdjustments)
		adjustments.GET("/:adjustmentID", h.getAdjustment)
		adjustments.POST("/:adjustmentID/approve", h.approveAdjustment)
		adjustments.POST("/:adjustmentID/reject", h.rejectAdjustment)
	}
}
