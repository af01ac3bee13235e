package handlers

import (
	"net/http"
	"strconv"

	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
	"github.com/Triostacksoftware/robobooks-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// auditHandler exposes read access to the audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

// newAuditHandler creates a new auditHandler.
func newAuditHandler(auditService portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: auditService}
}

// listRecords godoc
// @Summary List audit records
// @Description Reads a filtered page of the audit trail, newest first
// @Tags audit
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   entityType query string false "Filter by entity type"
// @Param   entityID query string false "Filter by entity ID"
// @Param   actorID query string false "Filter by actor"
// @Param   from query string false "Records at or after this time (RFC3339)"
// @Param   to query string false "Records before this time (RFC3339)"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAuditRecordsResponse
// @Router /organizations/{orgID}/audit-records [get]
func (h *auditHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := portsrepo.AuditRecordFilter{
		EntityType: c.Query("entityType"),
		EntityID:   c.Query("entityID"),
		ActorID:    c.Query("actorID"),
	}
	if raw := c.Query("from"); raw != "" {
		from, err := parseDateParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected RFC 3339 or YYYY-MM-DD"})
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := parseDateParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected RFC 3339 or YYYY-MM-DD"})
			return
		}
		filter.To = &to
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := h.auditService.ListRecords(c.Request.Context(), c.Param("orgID"), filter, limit, offset)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	resp := dto.ListAuditRecordsResponse{Records: make([]dto.AuditRecordResponse, 0, len(records))}
	for i := range records {
		resp.Records = append(resp.Records, dto.ToAuditRecordResponse(&records[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// registerAuditRoutes registers audit trail routes on the organization group.
func registerAuditRoutes(group *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	group.GET("/audit-records", h.listRecords)
}
