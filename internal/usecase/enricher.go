package usecase

import (
	"context"
	"sync"

	"nextribe/internal/domain/entities"

	"go.uber.org/zap"
)

// Describer generates the description of a country. ok is false when text
// is a stand-in rather than a generated description.
type Describer func(ctx context.Context, countryName string) (text string, ok bool)

// Enricher attaches generated descriptions to country records without
// blocking the record itself. Each viewer has at most one pending
// description: starting a new one cancels the previous, and a result that
// arrives after being superseded is discarded.
type Enricher struct {
	describe Describer
	fallback func(name string) string
	logger   *zap.Logger

	mu      sync.Mutex
	pending map[string]*PendingDescription
}

// PendingDescription is the future of a generated description.
type PendingDescription struct {
	CountryID string

	done     chan struct{}
	cancel   context.CancelFunc
	fallback string
	standIn  string
	text     string
	applied  bool
}

func NewEnricher(describe Describer, fallback func(name string) string, logger *zap.Logger) *Enricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{
		describe: describe,
		fallback: fallback,
		logger:   logger.Named("enricher"),
		pending:  make(map[string]*PendingDescription),
	}
}

// Enrich starts generating rec's description for viewerKey. The generation
// is bound to ctx and to any later Enrich call for the same viewer.
func (e *Enricher) Enrich(ctx context.Context, viewerKey string, rec entities.CountryProgress) *PendingDescription {
	genCtx, cancel := context.WithCancel(ctx)
	p := &PendingDescription{
		CountryID: rec.ID,
		done:      make(chan struct{}),
		cancel:    cancel,
		fallback:  rec.Description,
	}
	if p.fallback == "" && e.fallback != nil {
		p.fallback = e.fallback(rec.Name)
	}

	e.mu.Lock()
	if prev, ok := e.pending[viewerKey]; ok {
		prev.cancel()
		e.logger.Debug("[country][enricher] superseded pending description",
			zap.String("viewer", viewerKey),
			zap.String("previous", prev.CountryID),
			zap.String("next", rec.ID))
	}
	e.pending[viewerKey] = p
	e.mu.Unlock()

	go e.run(genCtx, viewerKey, rec.Name, p)
	return p
}

func (e *Enricher) run(ctx context.Context, viewerKey, name string, p *PendingDescription) {
	text, ok := e.describe(ctx, name)

	e.mu.Lock()
	current := e.pending[viewerKey] == p
	if current {
		delete(e.pending, viewerKey)
	}
	if current && ctx.Err() == nil && text != "" {
		if ok {
			p.text = text
			p.applied = true
		} else {
			p.standIn = text
		}
	}
	e.mu.Unlock()

	p.cancel()
	close(p.done)
}

// Pending reports how many viewers have a description in flight.
func (e *Enricher) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

// Await waits for the description until ctx ends. It returns false when
// nothing was generated. The text is then the describer's stand-in if it
// finished, or the template description.
func (p *PendingDescription) Await(ctx context.Context) (string, bool) {
	select {
	case <-p.done:
		if p.applied {
			return p.text, true
		}
		if p.standIn != "" {
			return p.standIn, false
		}
		return p.fallback, false
	case <-ctx.Done():
		return p.fallback, false
	}
}

// Cancel abandons the generation.
func (p *PendingDescription) Cancel() {
	p.cancel()
}

// Done is closed once the generation finished or was discarded.
func (p *PendingDescription) Done() <-chan struct{} {
	return p.done
}
