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

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// createEntry godoc
// @Summary Create a draft journal entry
// @Description Creates a draft entry with a fresh sequential entry number
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /organizations/{orgID}/journals [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves an entry with its line items
// @Tags journals
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /organizations/{orgID}/journals/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), c.Param("orgID"), c.Param("entryID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves a page of entries, newest first
// @Tags journals
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.JournalEntryResponse
// @Router /organizations/{orgID}/journals [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.journalService.ListEntries(c.Request.Context(), c.Param("orgID"), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	responses := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, responses)
}

// postEntry godoc
// @Summary Post a draft journal entry
// @Description Runs the double-entry validation and transitions the entry to posted
// @Tags journals
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]interface{} "Validation report"
// @Failure 409 {object} map[string]string "Not a draft or period locked"
// @Router /organizations/{orgID}/journals/{entryID}/post [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	entry, err := h.journalService.PostEntry(c.Request.Context(), organizationID, c.Param("entryID"), userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseEntry godoc
// @Summary Reverse a posted journal entry
// @Description Posts a mirrored compensating entry and flips the original to reversed
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   entryID path string true "Entry ID"
// @Param   reversal body dto.ReverseJournalEntryRequest true "Reversal reason"
// @Success 201 {object} dto.JournalEntryResponse "The compensating entry"
// @Failure 409 {object} map[string]string "Not posted, already reversed or period locked"
// @Router /organizations/{orgID}/journals/{entryID}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReverseJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reverseEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	reversing, err := h.journalService.ReverseEntry(c.Request.Context(), organizationID, c.Param("entryID"), req.Reason, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Journal entry reversed", slog.String("reversing_entry_id", reversing.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversing))
}

// registerJournalRoutes registers journal entry routes on the organization group.
func registerJournalRoutes(group *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := group.Group("/journals")
	{
		journals.POST("", h.createEntry)
		journals.GET("", h.listEntries)
		journals.GET("/:entryID", h.getEntry)
		journals.POST("/:entryID/post", h.postEntry)
		journals.POST("/:entryID/reverse", h.reverseEntry)
	}
}
