package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("/current", h.getCurrentRate)
	}
}

// createExchangeRate godoc
// @Summary Record an exchange rate
// @Description Stores the rate between two currencies from a date and invalidates the cached rate
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	_, userID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to record exchange rate",
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.String("rate", req.Rate.String()),
		slog.Time("date_effective", req.DateEffective),
	)

	recorded, err := h.exchangeRateService.RecordExchangeRate(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record exchange rate")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(recorded))
}

// getCurrentRate godoc
// @Summary Current base to local rate
// @Description The tenant's base to local currency rate; fallback=true when the configured fallback was used
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.CurrentRateResponse
// @Failure 404 {object} map[string]string "Tenant not found"
// @Security BearerAuth
// @Router /exchange-rates/current [get]
func (h *exchangeRateHandler) getCurrentRate(c *gin.Context) {
	tenantID, _, ok := caller(c)
	if !ok {
		return
	}
	quote, err := h.exchangeRateService.GetCurrentRate(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrentRateResponse(quote))
}
