package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
	methodService portssvc.PaymentMethodSvcFacade
}

func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade, methodService portssvc.PaymentMethodSvcFacade) {
	h := &tenantHandler{tenantService: tenantService, methodService: methodService}

	rg.GET("/tenant", h.getTenant)

	methods := rg.Group("/payment-methods")
	{
		methods.GET("", h.listPaymentMethods)
		methods.POST("", h.createPaymentMethod)
	}
}

// getTenant godoc
// @Summary Get the caller's tenant
// @Tags tenant
// @Produce json
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} map[string]string "Tenant not found"
// @Security BearerAuth
// @Router /tenant [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	tenantID, _, ok := caller(c)
	if !ok {
		return
	}
	tenant, err := h.tenantService.GetTenant(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to get tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// listPaymentMethods godoc
// @Summary List payment methods
// @Description Methods in their configured order; the first one receives settled receivables by default
// @Tags payment methods
// @Produce json
// @Success 200 {array} dto.PaymentMethodResponse
// @Security BearerAuth
// @Router /payment-methods [get]
func (h *tenantHandler) listPaymentMethods(c *gin.Context) {
	tenantID, _, ok := caller(c)
	if !ok {
		return
	}
	methods, err := h.methodService.ListPaymentMethods(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to list payment methods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentMethodResponse(methods))
}

// createPaymentMethod godoc
// @Summary Add a payment method
// @Tags payment methods
// @Accept json
// @Produce json
// @Param method body dto.CreatePaymentMethodRequest true "Payment method"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name already in use"
// @Security BearerAuth
// @Router /payment-methods [post]
func (h *tenantHandler) createPaymentMethod(c *gin.Context) {
	tenantID, userID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	method, err := h.methodService.CreatePaymentMethod(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create payment method")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(method))
}
