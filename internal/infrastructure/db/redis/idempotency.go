package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyChecker records order idempotency keys in Redis so a client
// retrying the same submission gets the original order back instead of a
// duplicate. Key format: order:idem:<client key> -> order number.
type IdempotencyChecker struct {
	client *redis.Client
}

// NewIdempotencyChecker creates an IdempotencyChecker wrapping the given client.
func NewIdempotencyChecker(client *redis.Client) *IdempotencyChecker {
	return &IdempotencyChecker{client: client}
}

// Existing returns the order number recorded for key, or "" when unseen.
func (c *IdempotencyChecker) Existing(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("idempotency check: %w", err)
	}
	return val, nil
}

// Remember records the order number for key (expires after idempotencyTTL).
// SetNX keeps the first recorded order authoritative under concurrent retries.
func (c *IdempotencyChecker) Remember(ctx context.Context, key, orderNumber string) error {
	return c.client.SetNX(ctx, c.key(key), orderNumber, idempotencyTTL).Err()
}

func (c *IdempotencyChecker) key(key string) string {
	return "order:idem:" + key
}
