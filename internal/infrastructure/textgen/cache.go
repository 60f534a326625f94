package textgen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"nextribe/internal/infrastructure/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "nextribe:textgen:"

// Generator is anything that turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CachedGenerator memoizes generated texts in Redis. Cache failures are
// logged and never fail the call.
type CachedGenerator struct {
	next   Generator
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedGenerator(next Generator, rdb redis.Cmdable, ttl time.Duration, logger *zap.Logger) *CachedGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedGenerator{next: next, rdb: rdb, ttl: ttl, logger: logger.Named("textgen.cache")}
}

func (c *CachedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	key := CacheKey(prompt)

	cached, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil && cached != "":
		metrics.TextGenerations.WithLabelValues("cache", metrics.OutcomeCached).Inc()
		return cached, nil
	case err != nil && !errors.Is(err, redis.Nil):
		c.logger.Warn("[textgen][cache] get failed", zap.Error(err))
	}

	text, err := c.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if err := c.rdb.Set(ctx, key, text, c.ttl).Err(); err != nil {
		c.logger.Warn("[textgen][cache] set failed", zap.Error(err))
	}
	return text, nil
}

func CacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
