package usecase

import (
	"context"
	"testing"
	"time"

	"nextribe/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallbackFor(name string) string { return "template " + name }

func TestEnricher_AppliesResult(t *testing.T) {
	e := NewEnricher(func(_ context.Context, name string) (string, bool) { return "generated " + name, true }, fallbackFor, nil)

	p := e.Enrich(context.Background(), "v1", entities.CountryProgress{ID: "JPN", Name: "Japan"})
	text, ok := p.Await(context.Background())

	assert.True(t, ok)
	assert.Equal(t, "generated Japan", text)
	assert.Equal(t, 0, e.Pending())
}

func TestEnricher_TimeoutReturnsTemplate(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	e := NewEnricher(func(ctx context.Context, name string) (string, bool) {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return "late", true
	}, fallbackFor, nil)

	p := e.Enrich(context.Background(), "v1", entities.CountryProgress{ID: "PER", Name: "Peru"})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	text, ok := p.Await(ctx)
	assert.False(t, ok)
	assert.Equal(t, "template Peru", text)
}

func TestEnricher_RecordDescriptionIsFallback(t *testing.T) {
	e := NewEnricher(func(context.Context, string) (string, bool) { return "", false }, fallbackFor, nil)

	p := e.Enrich(context.Background(), "v1", entities.CountryProgress{ID: "PER", Name: "Peru", Description: "stored"})
	text, ok := p.Await(context.Background())

	assert.False(t, ok)
	assert.Equal(t, "stored", text)
}

func TestEnricher_StandInIsNotApplied(t *testing.T) {
	e := NewEnricher(func(_ context.Context, name string) (string, bool) {
		return "Explore opportunities in " + name + ".", false
	}, fallbackFor, nil)

	p := e.Enrich(context.Background(), "v1", entities.CountryProgress{ID: "PER", Name: "Peru"})
	text, ok := p.Await(context.Background())

	assert.False(t, ok)
	assert.Equal(t, "Explore opportunities in Peru.", text)
}

func TestEnricher_SupersededResultIsDiscarded(t *testing.T) {
	started := make(chan string, 2)
	e := NewEnricher(func(ctx context.Context, name string) (string, bool) {
		started <- name
		if name == "Japan" {
			<-ctx.Done()
			return "stale Japan", true
		}
		return "generated " + name, true
	}, fallbackFor, nil)

	first := e.Enrich(context.Background(), "v1", entities.CountryProgress{ID: "JPN", Name: "Japan"})
	require.Equal(t, "Japan", <-started)

	second := e.Enrich(context.Background(), "v1", entities.CountryProgress{ID: "FIN", Name: "Finland"})

	<-first.Done()
	text, ok := first.Await(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "template Japan", text)

	text, ok = second.Await(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "generated Finland", text)
}

func TestEnricher_ViewersAreIndependent(t *testing.T) {
	e := NewEnricher(func(_ context.Context, name string) (string, bool) { return "generated " + name, true }, fallbackFor, nil)

	a := e.Enrich(context.Background(), "a", entities.CountryProgress{ID: "JPN", Name: "Japan"})
	b := e.Enrich(context.Background(), "b", entities.CountryProgress{ID: "FIN", Name: "Finland"})

	ta, oka := a.Await(context.Background())
	tb, okb := b.Await(context.Background())
	assert.True(t, oka)
	assert.True(t, okb)
	assert.Equal(t, "generated Japan", ta)
	assert.Equal(t, "generated Finland", tb)
}

func TestEnricher_CallerCancellation(t *testing.T) {
	e := NewEnricher(func(ctx context.Context, _ string) (string, bool) {
		<-ctx.Done()
		return "too late", true
	}, fallbackFor, nil)

	ctx, cancel := context.WithCancel(context.Background())
	p := e.Enrich(ctx, "v1", entities.CountryProgress{ID: "PER", Name: "Peru"})
	cancel()
	<-p.Done()

	text, ok := p.Await(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "template Peru", text)
}
