package interfaces

import (
	"context"

	"spayway_checkout/internal/domain/entities"
)

// ICheckoutEventPublisher announces checkout sessions to downstream consumers.
type ICheckoutEventPublisher interface {
	PublishCheckoutCreated(ctx context.Context, record entities.CheckoutRecord) error
}
