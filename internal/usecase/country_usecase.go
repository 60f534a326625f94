package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"nextribe/internal/domain/catalog"
	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/geography"
	"nextribe/internal/domain/progress"
	"nextribe/internal/infrastructure/metrics"
	"nextribe/internal/usecase/interfaces"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

var (
	ErrInvalidCountryID = errors.New("invalid country id")
	ErrCountryNotFound  = errors.New("country not found")
)

// CountryDetail is a selected country with its generated texts.
// Motivation is only set for countries without any expansion activity.
type CountryDetail struct {
	Country    entities.CountryProgress `json:"country"`
	Insight    string                   `json:"insight"`
	Generated  bool                     `json:"generated"`
	Motivation string                   `json:"motivation,omitempty"`
}

type ICountryUseCase interface {
	List(ctx context.Context) ([]entities.CountryProgress, error)
	Select(ctx context.Context, id, name string, status entities.CountryStatus) (entities.CountryProgress, error)
	MapRegions(ctx context.Context) ([]geography.RegionStatus, error)
	Detail(ctx context.Context, viewerKey, id, name string, status entities.CountryStatus) (CountryDetail, error)
}

// CountryOptions tunes how progress records are derived.
type CountryOptions struct {
	// Stable caches derived records per (id, status) instead of sampling on every call.
	Stable     bool
	CacheSize  int
	CacheTTL   time.Duration
	EnrichWait time.Duration
}

type CountryUseCase struct {
	repo     interfaces.ICountryRepository
	engine   *progress.Engine
	mapper   *geography.Mapper
	insights IInsightService
	enricher *Enricher
	opts     CountryOptions
	cache    *expirable.LRU[string, entities.CountryProgress]
	logger   *zap.Logger
}

var _ ICountryUseCase = (*CountryUseCase)(nil)

func NewCountryUseCase(
	repo interfaces.ICountryRepository,
	engine *progress.Engine,
	mapper *geography.Mapper,
	insights IInsightService,
	opts CountryOptions,
	logger *zap.Logger,
) *CountryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = progress.NewEngine(nil, progress.DefaultTables())
	}
	if mapper == nil {
		mapper = geography.NewMapper(geography.DefaultRegions())
	}
	if opts.EnrichWait <= 0 {
		opts.EnrichWait = 3 * time.Second
	}

	u := &CountryUseCase{
		repo:     repo,
		engine:   engine,
		mapper:   mapper,
		insights: insights,
		opts:     opts,
		logger:   logger.Named("country"),
	}
	if insights != nil {
		u.enricher = NewEnricher(insights.TryInsight, engine.DefaultDescription, logger)
	}
	if opts.Stable {
		size := opts.CacheSize
		if size <= 0 {
			size = 512
		}
		u.cache = expirable.NewLRU[string, entities.CountryProgress](size, nil, opts.CacheTTL)
	}
	return u
}

// List returns the stored countries, or the demo expansion map derived
// through the engine when the store fails or is empty.
func (u *CountryUseCase) List(ctx context.Context) ([]entities.CountryProgress, error) {
	if u.repo != nil {
		stored, err := u.repo.List(ctx)
		switch {
		case err != nil:
			u.logger.Warn("[country][usecase] store list failed, using demo data", zap.Error(err))
		case len(stored) == 0:
			u.logger.Info("[country][usecase] store empty, using demo data")
		default:
			for i := range stored {
				stored[i] = u.normalizeStored(stored[i])
			}
			sortCountries(stored)
			return stored, nil
		}
	}

	demo := catalog.CountryStatusMap()
	out := make([]entities.CountryProgress, 0, len(demo))
	for code, status := range demo {
		name, ok := u.mapper.Name(code)
		if !ok {
			name = code
		}
		out = append(out, u.derive(code, name, status))
	}
	sortCountries(out)
	return out, nil
}

// Select returns the record for a country. A stored record is authoritative;
// otherwise one is derived from status, or from the demo map when status is
// empty.
func (u *CountryUseCase) Select(ctx context.Context, id, name string, status entities.CountryStatus) (entities.CountryProgress, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return entities.CountryProgress{}, ErrInvalidCountryID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		if n, ok := u.mapper.Name(id); ok {
			name = n
		} else {
			name = id
		}
	}

	if u.repo != nil {
		stored, err := u.repo.GetByID(ctx, id)
		if err != nil {
			u.logger.Warn("[country][usecase] store lookup failed, deriving",
				zap.String("country_id", id), zap.Error(err))
		} else if stored.ID != "" {
			return u.normalizeStored(stored), nil
		}
	}

	if status == "" {
		status = catalog.CountryStatusMap()[id]
	}
	return u.derive(id, name, status), nil
}

// MapRegions returns the fill of every mapped region.
func (u *CountryUseCase) MapRegions(ctx context.Context) ([]geography.RegionStatus, error) {
	countries, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	statuses := make(map[string]entities.CountryStatus, len(countries))
	for _, c := range countries {
		statuses[c.ID] = c.Status
	}
	return u.mapper.ResolveAll(statuses), nil
}

// Detail selects a country and waits up to EnrichWait for its generated
// description. Text generation never fails the call.
func (u *CountryUseCase) Detail(ctx context.Context, viewerKey, id, name string, status entities.CountryStatus) (CountryDetail, error) {
	rec, err := u.Select(ctx, id, name, status)
	if err != nil {
		return CountryDetail{}, err
	}
	if rec.Description == "" {
		rec.Description = u.engine.DefaultDescription(rec.Name)
	}

	detail := CountryDetail{Country: rec, Insight: rec.Description}
	if u.insights == nil {
		return detail, nil
	}

	if viewerKey == "" {
		viewerKey = "anonymous"
	}
	pending := u.enricher.Enrich(ctx, viewerKey, rec)
	defer pending.Cancel()

	if rec.Status == entities.CountryStatusNone {
		detail.Motivation = u.insights.Motivation(ctx, rec.Name)
	}

	waitCtx, cancel := context.WithTimeout(ctx, u.opts.EnrichWait)
	defer cancel()
	text, generated := pending.Await(waitCtx)
	detail.Insight = text
	detail.Generated = generated
	if generated {
		detail.Country.Description = text
	}
	return detail, nil
}

func (u *CountryUseCase) derive(id, name string, status entities.CountryStatus) entities.CountryProgress {
	if !status.Valid() {
		status = entities.CountryStatusNone
	}
	if u.cache != nil {
		key := id + "|" + name + "|" + string(status)
		if rec, ok := u.cache.Get(key); ok {
			return rec
		}
		rec := u.engine.Derive(id, name, status)
		u.cache.Add(key, rec)
		metrics.ProgressDerivations.WithLabelValues(string(status)).Inc()
		return rec
	}
	metrics.ProgressDerivations.WithLabelValues(string(status)).Inc()
	return u.engine.Derive(id, name, status)
}

func (u *CountryUseCase) normalizeStored(c entities.CountryProgress) entities.CountryProgress {
	c.Status = entities.ParseCountryStatus(string(c.Status))
	c.Source = entities.RecordSourceStored
	if c.Progress < 0 {
		c.Progress = 0
	}
	if c.Progress > 100 {
		c.Progress = 100
	}
	return c
}

func sortCountries(cs []entities.CountryProgress) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
}
