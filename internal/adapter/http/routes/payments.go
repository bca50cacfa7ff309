package routes

import (
	"spayway_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathV1             = "/v1"
	PathPing           = "/ping"
	PathPaymentMethods = "/payment-methods"
	PathInvoices       = "/invoices"
	PathCheckouts      = "/checkouts"
)

func addPaymentFlowRoutes(rg *gin.RouterGroup, h *handlers.PaymentFlowHandler) {
	rg.GET(PathPaymentMethods, h.ListPaymentMethods)

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:invoice_token", h.GetInvoice)
		invoices.POST("/:invoice_token/checkout", h.CreateCheckout)
		invoices.POST("/:invoice_token/pay", h.Pay)
		invoices.GET("/:invoice_token/checkouts", h.ListCheckouts)
	}
	rg.GET(PathCheckouts+"/:checkout_id", h.GetCheckout)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
