package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
	"github.com/Triostacksoftware/robobooks-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reconciliationHandler handles HTTP requests related to bank reconciliations.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

// newReconciliationHandler creates a new reconciliationHandler.
func newReconciliationHandler(reconciliationService portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: reconciliationService}
}

// createReconciliation godoc
// @Summary Start a bank reconciliation run
// @Description Auto-matches bank statement lines against book transactions by amount and date window
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   reconciliation body dto.CreateReconciliationRequest true "Statement and book transactions"
// @Success 201 {object} dto.ReconciliationResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /organizations/{orgID}/reconciliations [post]
func (h *reconciliationHandler) createReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	rec, err := h.reconciliationService.CreateReconciliation(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReconciliationResponse(rec))
}

// getReconciliation godoc
// @Summary Get a reconciliation run with its items
// @Tags reconciliations
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   reconciliationID path string true "Reconciliation ID"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 404 {object} map[string]string "Reconciliation not found"
// @Router /organizations/{orgID}/reconciliations/{reconciliationID} [get]
func (h *reconciliationHandler) getReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rec, err := h.reconciliationService.GetReconciliationByID(c.Request.Context(), c.Param("orgID"), c.Param("reconciliationID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(rec))
}

// matchItem godoc
// @Summary Manually pair an unmatched item with a book transaction
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   reconciliationID path string true "Reconciliation ID"
// @Param   itemID path string true "Item ID"
// @Param   match body dto.MatchItemRequest true "Book transaction"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 409 {object} map[string]string "Item is not unmatched"
// @Router /organizations/{orgID}/reconciliations/{reconciliationID}/items/{itemID}/match [post]
func (h *reconciliationHandler) matchItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MatchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for matchItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	rec, err := h.reconciliationService.MatchItem(c.Request.Context(), organizationID, c.Param("reconciliationID"), c.Param("itemID"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(rec))
}

// confirmItem godoc
// @Summary Confirm a matched item as reconciled
// @Description Settles the item; a non-zero difference is rejected unless override is set
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   reconciliationID path string true "Reconciliation ID"
// @Param   itemID path string true "Item ID"
// @Param   confirmation body dto.ConfirmItemRequest false "Override flag"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 409 {object} map[string]string "Unresolved difference or period locked"
// @Router /organizations/{orgID}/reconciliations/{reconciliationID}/items/{itemID}/confirm [post]
func (h *reconciliationHandler) confirmItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConfirmItemRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		logger.Warn("Failed to bind JSON for confirmItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	rec, err := h.reconciliationService.ConfirmReconciled(c.Request.Context(), organizationID, c.Param("reconciliationID"), c.Param("itemID"), req.Override, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(rec))
}

// registerReconciliationRoutes registers reconciliation routes on the organization group.
func registerReconciliationRoutes(group *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	reconciliations := group.Group("/reconciliations")
	{
		reconciliations.POST("", h.createReconciliation)
		reconciliations.GET("/:reconciliationID", h.getReconciliation)
		reconciliations.POST("/:reconciliationID/items/:itemID/match", h.matchItem)
		reconciliations.POST("/:reconciliationID/items/:itemID/confirm", h.confirmItem)
	}
}
