// Package redis keeps idempotency keys of order placement in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

const pendingMarker = "pending"

// DefaultTTL is how long a key stays bound to the order it produced.
const DefaultTTL = 24 * time.Hour

// IdempotencyStore implements ports.IdempotencyStore. A key moves from absent
// to pending on Reserve and from pending to the order id on Complete; both
// states expire after ttl.
type IdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdempotencyStore(rdb *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

func redisKey(scope, key string) string {
	return fmt.Sprintf("idempotency-key:%s:%s", scope, key)
}

func (s *IdempotencyStore) Reserve(ctx context.Context, scope, key string) (kernel.UUID, bool, error) {
	rk := redisKey(scope, key)

	reserved, err := s.rdb.SetNX(ctx, rk, pendingMarker, s.ttl).Result()
	if err != nil {
		return kernel.UUID{}, false, err
	}
	if reserved {
		return kernel.UUID{}, false, nil
	}

	val, err := s.rdb.Get(ctx, rk).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET
		return s.Reserve(ctx, scope, key)
	}
	if err != nil {
		return kernel.UUID{}, false, err
	}
	if val == pendingMarker {
		return kernel.UUID{}, false, errs.NewObjectAlreadyExistsErrorWithCause(
			"Idempotency-Key", key, errors.New("a request with this key is in progress"))
	}

	orderID, err := kernel.UUIDFromString(val)
	if err != nil {
		return kernel.UUID{}, false, err
	}
	return orderID, true, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, scope, key string, orderID kernel.UUID) error {
	return s.rdb.Set(ctx, redisKey(scope, key), orderID.String(), s.ttl).Err()
}

// Release deletes the key only while it is still pending.
func (s *IdempotencyStore) Release(ctx context.Context, scope, key string) error {
	rk := redisKey(scope, key)
	return s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, rk).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		if val != pendingMarker {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, rk)
			return nil
		})
		return err
	}, rk)
}
