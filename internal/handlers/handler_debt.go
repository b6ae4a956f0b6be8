package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
)

// debtHandler handles HTTP requests related to the debt ledger.
type debtHandler struct {
	debtService    portssvc.DebtSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade, ps portssvc.PaymentSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds, paymentService: ps}
}

// registerDebtRoutes registers routes related to debts and their payments.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newDebtHandler(debtService, paymentService)

	debts := rg.Group("/debts")
	{
		debts.GET("", h.listDebts)
		debts.POST("", h.createDebt)
		debts.PUT("", h.updateDebt)
		debts.GET("/:debtID", h.getDebt)
		debts.PUT("/:debtID", h.updateDebt)
		debts.DELETE("/:debtID", h.deleteDebt)
		debts.GET("/:debtID/payments", h.listDebtPayments)
	}
}

// listDebts godoc
// @Summary List debts
// @Description Lists the tenant's receivables and payables, most recent first
// @Tags debts
// @Produce json
// @Param direction query string false "RECEIVABLE or PAYABLE"
// @Param status query string false "PENDING or SETTLED"
// @Success 200 {array} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list debts"
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	tenantID, _, ok := caller(c)
	if !ok {
		return
	}
	var params dto.ListDebtsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		invalidRequest(c, err)
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), tenantID, params.Filter())
	if err != nil {
		respondError(c, err, "Failed to list debts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDebtResponse(debts))
}

// getDebt godoc
// @Summary Get a debt
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{debtID} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	tenantID, _, ok := caller(c)
	if !ok {
		return
	}
	debt, err := h.debtService.GetDebtByID(c.Request.Context(), tenantID, c.Param("debtID"))
	if err != nil {
		respondError(c, err, "Failed to get debt")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// listDebtPayments godoc
// @Summary List the payments of a debt
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 200 {array} dto.DebtPaymentResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{debtID}/payments [get]
func (h *debtHandler) listDebtPayments(c *gin.Context) {
	tenantID, _, ok := caller(c)
	if !ok {
		return
	}
	payments, err := h.debtService.ListDebtPayments(c.Request.Context(), tenantID, c.Param("debtID"))
	if err != nil {
		respondError(c, err, "Failed to list debt payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDebtPaymentResponse(payments))
}

// createDebt godoc
// @Summary Record a debt
// @Description A receivable is merged into the counterparty's open receivable when one exists
// @Tags debts
// @Accept json
// @Produce json
// @Param debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse "New debt"
// @Success 200 {object} dto.DebtResponse "Merged into an open receivable"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Invalid amount"
// @Failure 409 {object} map[string]string "Concurrent update"
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	tenantID, userID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	debt, merged, err := h.debtService.CreateDebt(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create debt")
		return
	}

	resp := dto.ToDebtResponse(debt)
	if merged {
		resp.Merged = true
		c.JSON(http.StatusOK, resp)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// updateDebt godoc
// @Summary Edit a debt or apply a payment
// @Description action=EDIT applies a correction; action=PAY applies an abono and its settlement side effects
// @Tags debts
// @Accept json
// @Produce json
// @Param debtID path string false "Debt ID (or send id in the body)"
// @Param update body dto.UpdateDebtRequest true "Update"
// @Success 200 {object} dto.PaymentResponse "PAY"
// @Success 200 {object} dto.DebtResponse "EDIT"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 409 {object} map[string]string "Debt already settled"
// @Failure 422 {object} map[string]string "Invalid amount"
// @Security BearerAuth
// @Router /debts/{debtID} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	tenantID, userID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	debtID := c.Param("debtID")
	if debtID == "" {
		debtID = req.ID
	}
	if debtID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Debt id is required"})
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received debt update", slog.String("debt_id", debtID), slog.String("action", req.Action))

	switch req.Action {
	case dto.ActionPay:
		result, err := h.paymentService.ApplyPayment(c.Request.Context(), tenantID, debtID, req.ApplyPaymentRequest, userID)
		if err != nil {
			respondError(c, err, "Failed to apply payment")
			return
		}
		c.JSON(http.StatusOK, dto.ToPaymentResponse(result))
	case dto.ActionEdit:
		debt, err := h.debtService.EditDebt(c.Request.Context(), tenantID, debtID, req.EditDebtRequest, userID)
		if err != nil {
			respondError(c, err, "Failed to edit debt")
			return
		}
		c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action " + strconv.Quote(req.Action)})
	}
}

// deleteDebt godoc
// @Summary Delete a debt
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Param restoreStock query bool false "Give stock back for a pending receivable"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{debtID} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	tenantID, userID, ok := caller(c)
	if !ok {
		return
	}
	restoreStock := false
	if raw := c.Query("restoreStock"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "restoreStock must be a boolean"})
			return
		}
		restoreStock = parsed
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), tenantID, c.Param("debtID"), restoreStock, userID); err != nil {
		respondError(c, err, "Failed to delete debt")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Debt deleted"})
}
