package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// cashHandler handles drawer reconciliation.
type cashHandler struct {
	closureService portssvc.CashClosureSvcFacade
}

func registerCashRoutes(rg *gin.RouterGroup, closureService portssvc.CashClosureSvcFacade) {
	h := &cashHandler{closureService: closureService}

	cash := rg.Group("/cash")
	{
		cash.GET("/summary", h.getSummary)
		cash.POST("/close", h.closeShift)
		cash.GET("/closures", h.listClosures)
		cash.GET("/closures/:closureID", h.getClosure)
	}
}

// getSummary godoc
// @Summary Expected cash position of the open shift
// @Description Sales minus expenses since the last closure, per payment method
// @Tags cash
// @Produce json
// @Success 200 {object} dto.ShiftSummaryResponse
// @Failure 404 {object} map[string]string "Tenant not found"
// @Security BearerAuth
// @Router /cash/summary [get]
func (h *cashHandler) getSummary(c *gin.Context) {
	tenantID, _, ok := caller(c)
	if !ok {
		return
	}
	summary, err := h.closureService.GetOpenShiftSummary(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to compute shift summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftSummaryResponse(summary))
}

// closeShift godoc
// @Summary Close the shift
// @Description Reconciles the physical count against the server-computed expectation
// @Tags cash
// @Accept json
// @Produce json
// @Param close body dto.CloseShiftRequest true "Counted amounts by payment method name"
// @Success 201 {object} dto.CashClosureResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Concurrent close"
// @Failure 422 {object} map[string]string "Negative count"
// @Security BearerAuth
// @Router /cash/close [post]
func (h *cashHandler) closeShift(c *gin.Context) {
	tenantID, userID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	closure, err := h.closureService.CloseShift(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to close shift")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCashClosureResponse(closure))
}

// listClosures godoc
// @Summary List closures
// @Tags cash
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.ListClosuresResponse
// @Security BearerAuth
// @Router /cash/closures [get]
func (h *cashHandler) listClosures(c *gin.Context) {
	tenantID, _, ok := caller(c)
	if !ok {
		return
	}
	var params dto.ListClosuresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		invalidRequest(c, err)
		return
	}

	resp, err := h.closureService.ListClosures(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, err, "Failed to list closures")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getClosure godoc
// @Summary Get a closure
// @Tags cash
// @Produce json
// @Param closureID path string true "Closure ID"
// @Success 200 {object} dto.CashClosureResponse
// @Failure 404 {object} map[string]string "Closure not found"
// @Security BearerAuth
// @Router /cash/closures/{closureID} [get]
func (h *cashHandler) getClosure(c *gin.Context) {
	tenantID, _, ok := caller(c)
	if !ok {
		return
	}
	closure, err := h.closureService.GetClosureByID(c.Request.Context(), tenantID, c.Param("closureID"))
	if err != nil {
		respondError(c, err, "Failed to get closure")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashClosureResponse(closure))
}
