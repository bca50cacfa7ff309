package interfaces

import (
	"context"

	"spayway_checkout/internal/domain/entities"
)

// ICheckoutRepository abstracts DynamoDB persistence for CheckoutRecord.

type ICheckoutRepository interface {
	Create(ctx context.Context, r entities.CheckoutRecord) (entities.CheckoutRecord, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutRecord, error)
	ListByInvoiceToken(ctx context.Context, invoiceToken string) ([]entities.CheckoutRecord, error)
}
