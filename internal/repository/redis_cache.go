package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tasatop/schedule-engine/internal/domain"
	customError "github.com/tasatop/schedule-engine/pkg/errors"
)

const (
	scheduleKeyPrefix = "schedule:"
	letterheadKey     = "asset:letterhead"
)

// RedisScheduleCache caches schedule results in Redis under a hash of
// the input record. The engine is deterministic, so identical inputs
// always map to the same cached result.
type RedisScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisScheduleCache(client *redis.Client, ttl time.Duration) *RedisScheduleCache {
	return &RedisScheduleCache{client: client, ttl: ttl}
}

func (c *RedisScheduleCache) Get(ctx context.Context, input domain.ScheduleInput) (*domain.ScheduleResult, bool) {
	raw, err := c.client.Get(ctx, scheduleKey(input)).Bytes()
	if err != nil {
		return nil, false
	}

	var result domain.ScheduleResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// A corrupt entry behaves like a miss; the engine regenerates.
		return nil, false
	}
	return &result, true
}

func (c *RedisScheduleCache) Set(ctx context.Context, input domain.ScheduleInput, result *domain.ScheduleResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return customError.WrapCacheError(err)
	}
	if err := c.client.Set(ctx, scheduleKey(input), raw, c.ttl).Err(); err != nil {
		return customError.WrapCacheError(err)
	}
	return nil
}

func scheduleKey(input domain.ScheduleInput) string {
	raw, err := json.Marshal(input)
	if err != nil {
		return scheduleKeyPrefix + "invalid"
	}
	sum := sha256.Sum256(raw)
	return scheduleKeyPrefix + hex.EncodeToString(sum[:])
}

// RedisAssetCache keeps the letterhead image bytes between exports so
// every PDF does not re-fetch the remote logo.
type RedisAssetCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAssetCache(client *redis.Client, ttl time.Duration) *RedisAssetCache {
	return &RedisAssetCache{client: client, ttl: ttl}
}

func (c *RedisAssetCache) GetLetterhead(ctx context.Context) ([]byte, bool) {
	raw, err := c.client.Get(ctx, letterheadKey).Bytes()
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	return raw, true
}

func (c *RedisAssetCache) SetLetterhead(ctx context.Context, data []byte) error {
	if err := c.client.Set(ctx, letterheadKey, data, c.ttl).Err(); err != nil {
		return customError.WrapCacheError(err)
	}
	return nil
}
