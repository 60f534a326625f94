package textgen

import (
	"context"
	"errors"
	"testing"
	"time"

	"nextribe/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	getErr error
	setErr error
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = value.(string)
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

type countingGenerator struct {
	calls int
	text  string
	err   error
}

func (g *countingGenerator) Generate(context.Context, string) (string, error) {
	g.calls++
	return g.text, g.err
}

func TestCachedGenerator_MissThenHit(t *testing.T) {
	rdb := newFakeRedis()
	inner := &countingGenerator{text: "Fjords and saunas."}
	c := NewCachedGenerator(inner, rdb, time.Hour, nil)

	first, err := c.Generate(context.Background(), "finland")
	require.NoError(t, err)
	second, err := c.Generate(context.Background(), "finland")
	require.NoError(t, err)

	assert.Equal(t, "Fjords and saunas.", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, time.Hour, rdb.ttls[CacheKey("finland")])
}

func TestCachedGenerator_ErrorsNotCached(t *testing.T) {
	rdb := newFakeRedis()
	inner := &countingGenerator{err: errors.New("quota")}
	c := NewCachedGenerator(inner, rdb, time.Hour, nil)

	_, err := c.Generate(context.Background(), "peru")
	assert.Error(t, err)
	assert.Empty(t, rdb.data)
}

func TestCachedGenerator_RedisDownFallsThrough(t *testing.T) {
	rdb := newFakeRedis()
	rdb.getErr = errors.New("connection refused")
	rdb.setErr = errors.New("connection refused")
	inner := &countingGenerator{text: "ok"}
	c := NewCachedGenerator(inner, rdb, time.Minute, nil)

	text, err := c.Generate(context.Background(), "chile")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 1, inner.calls)
}

func TestCacheKey_StableAndDistinct(t *testing.T) {
	assert.Equal(t, CacheKey("a"), CacheKey("a"))
	assert.NotEqual(t, CacheKey("a"), CacheKey("b"))
	assert.Contains(t, CacheKey("a"), cacheKeyPrefix)
}

func TestNewGeminiClient_MissingKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), config.GenAIConfig{}, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
