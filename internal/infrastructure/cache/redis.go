package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spayway_checkout/internal/infrastructure/spayway"
	"spayway_checkout/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"

	DefaultGatewayTimeout = spayway.DefaultTimeout
	// InProgressMargin covers persistence and event publishing after the gateway call.
	InProgressMargin = 15 * time.Second
	CompletedExpiry  = 24 * time.Hour

	keyPrefix = "spayway:req:"
)

// releaseScript deletes the key only while it is still IN_PROGRESS, so a completed
// request id is never released.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisStore implements IIdempotencyStore on top of SET NX.
type RedisStore struct {
	client           redis.UniversalClient
	inProgressExpiry time.Duration
}

var _ interfaces.IIdempotencyStore = (*RedisStore)(nil)

// NewRedisStore connects to a single Redis node. gatewayTimeout is the S-PayWay
// call timeout; reservations live for that long plus InProgressMargin.
func NewRedisStore(addr, password string, db int, gatewayTimeout time.Duration) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreFromClient(rdb, gatewayTimeout)
}

// NewRedisStoreFromClient wraps an existing client (cluster, sentinel or tests).
func NewRedisStoreFromClient(client redis.UniversalClient, gatewayTimeout time.Duration) *RedisStore {
	return &RedisStore{client: client, inProgressExpiry: InProgressExpiry(gatewayTimeout)}
}

// InProgressExpiry is how long a reservation is held for a gateway call bounded by
// gatewayTimeout. Non-positive timeouts fall back to DefaultGatewayTimeout.
func InProgressExpiry(gatewayTimeout time.Duration) time.Duration {
	if gatewayTimeout <= 0 {
		gatewayTimeout = DefaultGatewayTimeout
	}
	return gatewayTimeout + InProgressMargin
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// CheckOrSetInProgress returns duplicate=true if the request id is completed or
// already reserved by another call. Otherwise the id is now IN_PROGRESS.
func (r *RedisStore) CheckOrSetInProgress(ctx context.Context, requestID string) (bool, error) {
	key := requestKey(requestID)

	status, err := r.client.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("redis GET error: %w", err)
	}
	if status == StatusCompleted {
		return true, nil
	}

	set, err := r.client.SetNX(ctx, key, StatusInProgress, r.inProgressExpiry).Result()
	if err != nil {
		return false, fmt.Errorf("redis SETNX error: %w", err)
	}
	return !set, nil
}

func (r *RedisStore) SetCompleted(ctx context.Context, requestID string) error {
	if err := r.client.Set(ctx, requestKey(requestID), StatusCompleted, CompletedExpiry).Err(); err != nil {
		return fmt.Errorf("redis SET error: %w", err)
	}
	return nil
}

func (r *RedisStore) Release(ctx context.Context, requestID string) error {
	if err := releaseScript.Run(ctx, r.client, []string{requestKey(requestID)}, StatusInProgress).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis release error: %w", err)
	}
	return nil
}

func requestKey(requestID string) string {
	return keyPrefix + requestID
}
