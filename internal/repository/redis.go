package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// intentCountsKey is the hash holding one counter field per intent
const intentCountsKey = "travelbot:intent_counts"

// RedisCounter keeps per-intent request counters in a Redis hash
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter connects to Redis at the given URL
func NewRedisCounter(ctx context.Context, redisURL string) (*RedisCounter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCounterFromClient(client), nil
}

// NewRedisCounterFromClient wraps an existing client
func NewRedisCounterFromClient(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// Close closes the Redis connection
func (r *RedisCounter) Close() error {
	return r.client.Close()
}

// Incr increments the counter for an intent
func (r *RedisCounter) Incr(ctx context.Context, intent string) error {
	if err := r.client.HIncrBy(ctx, intentCountsKey, intent, 1).Err(); err != nil {
		return fmt.Errorf("failed to increment intent counter: %w", err)
	}
	return nil
}

// Counts returns all intent counters
func (r *RedisCounter) Counts(ctx context.Context) (map[string]int64, error) {
	raw, err := r.client.HGetAll(ctx, intentCountsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read intent counters: %w", err)
	}

	counts := make(map[string]int64, len(raw))
	for intent, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid counter for intent %s: %w", intent, err)
		}
		counts[intent] = n
	}
	return counts, nil
}
