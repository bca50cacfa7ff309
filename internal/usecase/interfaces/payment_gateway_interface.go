package interfaces

import (
	"context"

	"spayway_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts the S-PayWay checkout API.
//
// requestID is the optional idempotency key forwarded to the gateway; an empty
// string sends no request-id header.
type IPaymentGateway interface {
	ListPaymentMethods(ctx context.Context, requestID string) ([]string, error)
	GetInvoiceStatus(ctx context.Context, invoiceToken, requestID string) (entities.Invoice, error)
	Checkout(ctx context.Context, invoiceToken, paymentMethod, requestID string) (entities.PaymentSession, error)
}
