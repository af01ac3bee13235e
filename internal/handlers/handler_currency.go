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

// currencyHandler handles HTTP requests related to conversion and rates.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(currencyService portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: currencyService}
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts at the supplied rate and classifies gain/loss against the recorded baseline rate
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   conversion body dto.ConvertCurrencyRequest true "Conversion request"
// @Success 200 {object} dto.ConvertCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /organizations/{orgID}/currency-conversions [post]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.currencyService.Convert(c.Request.Context(), c.Param("orgID"), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// createExchangeRate godoc
// @Summary Record an exchange rate
// @Description Records a rate for a currency pair; a zero rate stores a pending record
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   rate body dto.CreateExchangeRateRequest true "Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /organizations/{orgID}/exchange-rates [post]
func (h *currencyHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	rate, err := h.currencyService.CreateExchangeRate(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// listRates godoc
// @Summary List recorded exchange rates
// @Tags currency
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.ExchangeRateResponse
// @Router /organizations/{orgID}/exchange-rates [get]
func (h *currencyHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rates, err := h.currencyService.ListRates(c.Request.Context(), c.Param("orgID"), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	resp := make([]dto.ExchangeRateResponse, 0, len(rates))
	for i := range rates {
		resp = append(resp, dto.ToExchangeRateResponse(&rates[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// registerCurrencyRoutes registers conversion and rate routes on the organization group.
func registerCurrencyRoutes(group *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	group.POST("/currency-conversions", h.convert)

	rates := group.Group("/exchange-rates")
	{
		rates.POST("", h.createExchangeRate)
		rates.GET("", h.listRates)
	}
}
