package cache

import (
	"context"

	"spayway_checkout/internal/usecase/interfaces"
)

// NoopStore accepts every request id. Used when REDIS_ADDR is unset and by the CLI.
type NoopStore struct{}

var _ interfaces.IIdempotencyStore = NoopStore{}

func (NoopStore) CheckOrSetInProgress(context.Context, string) (bool, error) { return false, nil }
func (NoopStore) SetCompleted(context.Context, string) error                { return nil }
func (NoopStore) Release(context.Context, string) error                     { return nil }
