package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
	"github.com/Triostacksoftware/robobooks-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// lockHandler handles HTTP requests related to transaction locks.
type lockHandler struct {
	lockService portssvc.LockSvcFacade
}

// newLockHandler creates a new lockHandler.
func newLockHandler(lockService portssvc.LockSvcFacade) *lockHandler {
	return &lockHandler{lockService: lockService}
}

// lockModule godoc
// @Summary Lock a module's accounting period
// @Description Closes transactions dated on or before lockDate for the module
// @Tags transaction-locks
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   lock body dto.LockModuleRequest true "Lock request"
// @Success 201 {object} dto.TransactionLockResponse
// @Failure 409 {object} map[string]string "Module already locked"
// @Router /organizations/{orgID}/transaction-locks [post]
func (h *lockHandler) lockModule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LockModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for lockModule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	lock, err := h.lockService.LockModule(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Module locked", slog.String("module", string(lock.Module)))
	c.JSON(http.StatusCreated, dto.ToTransactionLockResponse(lock))
}

// partiallyUnlock godoc
// @Summary Open an exception window inside a locked period
// @Tags transaction-locks
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   module path string true "Ledger module"
// @Param   window body dto.PartialUnlockRequest true "Exception window"
// @Success 200 {object} dto.TransactionLockResponse
// @Failure 409 {object} map[string]string "Module not in locked state"
// @Router /organizations/{orgID}/transaction-locks/{module}/partial-unlock [put]
func (h *lockHandler) partiallyUnlock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	module, err := domain.ParseLedgerModule(c.Param("module"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	var req dto.PartialUnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for partiallyUnlock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	lock, err := h.lockService.PartiallyUnlock(c.Request.Context(), organizationID, module, req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionLockResponse(lock))
}

// unlockModule godoc
// @Summary Unlock a module
// @Description Clears the active lock; the module returns to the unlocked state
// @Tags transaction-locks
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   module path string true "Ledger module"
// @Success 204 "Unlocked"
// @Failure 409 {object} map[string]string "Module not locked"
// @Router /organizations/{orgID}/transaction-locks/{module} [delete]
func (h *lockHandler) unlockModule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	module, err := domain.ParseLedgerModule(c.Param("module"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.lockService.UnlockModule(c.Request.Context(), organizationID, module, userID); err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Module unlocked", slog.String("module", string(module)))
	c.Status(http.StatusNoContent)
}

// listLocks godoc
// @Summary List active transaction locks
// @Tags transaction-locks
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Success 200 {array} dto.TransactionLockResponse
// @Router /organizations/{orgID}/transaction-locks [get]
func (h *lockHandler) listLocks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	locks, err := h.lockService.ListLocks(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	responses := make([]dto.TransactionLockResponse, len(locks))
	for i := range locks {
		responses[i] = dto.ToTransactionLockResponse(&locks[i])
	}
	c.JSON(http.StatusOK, responses)
}

// lockStatus godoc
// @Summary Check whether a date is locked for a module
// @Tags transaction-locks
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   module path string true "Ledger module"
// @Param   date query string true "Date (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.LockStatusResponse
// @Router /organizations/{orgID}/transaction-locks/{module}/status [get]
func (h *lockHandler) lockStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	module, err := domain.ParseLedgerModule(c.Param("module"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	date, err := parseDateParam(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected RFC 3339 or YYYY-MM-DD"})
		return
	}

	locked, err := h.lockService.IsDateLocked(c.Request.Context(), c.Param("orgID"), module, date)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LockStatusResponse{
		Module: string(module),
		Date:   date,
		Locked: locked,
	})
}

func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// registerLockRoutes registers transaction lock routes on the organization group.
func registerLockRoutes(group *gin.RouterGroup, lockService portssvc.LockSvcFacade) {
	h := newLockHandler(lockService)

	locks := group.Group("/transaction-locks")
	{
		locks.POST("", h.lockModule)
		locks.GET("", h.listLocks)
		locks.PUT("/:module/partial-unlock", h.partiallyUnlock)
		locks.DELETE("/:module", h.unlockModule)
		locks.GET("/:module/status", h.lockStatus)
	}
}
