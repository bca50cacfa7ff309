package interfaces

import "context"

// IIdempotencyStore tracks request ids so the same checkout is not opened twice
// concurrently.
//
// CheckOrSetInProgress returns duplicate=true when the id is already in progress or
// completed. Release drops an in-progress reservation so the caller can retry with
// the same id after a failed gateway call.
type IIdempotencyStore interface {
	CheckOrSetInProgress(ctx context.Context, requestID string) (duplicate bool, err error)
	SetCompleted(ctx context.Context, requestID string) error
	Release(ctx context.Context, requestID string) error
}
