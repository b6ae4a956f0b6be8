package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/pos_ledger/internal/utils"
)

// trackedEvents maps "METHOD route" to the product analytics event it produces.
// Reads are not tracked.
var trackedEvents = map[string]string{
	http.MethodPost + " /api/v1/debts":           "debt_registered",
	http.MethodPut + " /api/v1/debts":            "debt_updated",
	http.MethodPut + " /api/v1/debts/:debtID":    "debt_updated",
	http.MethodDelete + " /api/v1/debts/:debtID": "debt_deleted",
	http.MethodPost + " /api/v1/cash/close":      "shift_closed",
	http.MethodPost + " /api/v1/expenses":        "expense_recorded",
	http.MethodPost + " /api/v1/payment-methods": "payment_method_added",
	http.MethodPost + " /api/v1/exchange-rates":  "exchange_rate_recorded",
}

// PosthogMiddleware reports successful ledger mutations. The distinct id is the tenant, so
// events aggregate per business; the acting user rides along as a property.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if posthogClient == nil || !posthogClient.IsInitialized() {
			return
		}
		event, ok := trackedEvents[c.Request.Method+" "+c.FullPath()]
		if !ok || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		tenantID, ok := GetTenantIDFromContext(c)
		if !ok {
			return
		}

		props := map[string]any{
			"status_code": c.Writer.Status(),
		}
		if userID, ok := GetUserIDFromContext(c); ok {
			props["user_id"] = userID
		}
		if debtID := c.Param("debtID"); debtID != "" {
			props["debt_id"] = debtID
		}
		posthogClient.Enqueue(tenantID, event, props)
	}
}
