// Package memory keeps every repository in process memory. It backs the
// "memory" store driver and loses everything on restart.
package memory

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/investment"
	"nextribe/internal/usecase/interfaces"
)

var ErrDuplicateID = errors.New("record already exists")

// Store holds the four tables behind one lock.
type Store struct {
	mu            sync.RWMutex
	countries     map[string]entities.CountryProgress
	opportunities map[string]entities.Opportunity
	profiles      map[string]entities.Profile
	investments   map[string]entities.Investment
}

func NewStore() *Store {
	return &Store{
		countries:     make(map[string]entities.CountryProgress),
		opportunities: make(map[string]entities.Opportunity),
		profiles:      make(map[string]entities.Profile),
		investments:   make(map[string]entities.Investment),
	}
}

func (s *Store) Countries() *CountryRepository         { return &CountryRepository{s: s} }
func (s *Store) Opportunities() *OpportunityRepository { return &OpportunityRepository{s: s} }
func (s *Store) Profiles() *ProfileRepository          { return &ProfileRepository{s: s} }
func (s *Store) Investments() *InvestmentRepository    { return &InvestmentRepository{s: s} }

type CountryRepository struct{ s *Store }

var _ interfaces.ICountryRepository = (*CountryRepository)(nil)

func (r *CountryRepository) List(_ context.Context) ([]entities.CountryProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.CountryProgress, 0, len(r.s.countries))
	for _, c := range r.s.countries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CountryRepository) GetByID(_ context.Context, id string) (entities.CountryProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.countries[id], nil
}

func (r *CountryRepository) Upsert(_ context.Context, c entities.CountryProgress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.Source = entities.RecordSourceStored
	if c.Ambassador != nil {
		a := *c.Ambassador
		c.Ambassador = &a
	}
	r.s.countries[c.ID] = c
	return nil
}

type OpportunityRepository struct{ s *Store }

var _ interfaces.IOpportunityRepository = (*OpportunityRepository)(nil)

func (r *OpportunityRepository) List(_ context.Context) ([]entities.Opportunity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Opportunity, 0, len(r.s.opportunities))
	for _, o := range r.s.opportunities {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *OpportunityRepository) GetByID(_ context.Context, id string) (entities.Opportunity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.opportunities[id], nil
}

func (r *OpportunityRepository) Upsert(_ context.Context, o entities.Opportunity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.opportunities[o.ID] = o
	return nil
}

func (r *OpportunityRepository) ReserveShares(_ context.Context, id string, pct float64) (entities.Opportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.opportunities[id]
	if !ok || o.AvailableSharesPct < pct-investment.PctTolerance {
		return entities.Opportunity{}, nil
	}
	o.AvailableSharesPct = math.Min(100, math.Max(0, o.AvailableSharesPct-pct))
	r.s.opportunities[id] = o
	return o, nil
}

type ProfileRepository struct{ s *Store }

var _ interfaces.IProfileRepository = (*ProfileRepository)(nil)

func (r *ProfileRepository) List(_ context.Context) ([]entities.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Profile, 0, len(r.s.profiles))
	for _, p := range r.s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProfileRepository) GetByID(_ context.Context, id string) (entities.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.profiles[id], nil
}

func (r *ProfileRepository) Upsert(_ context.Context, p entities.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.Investments = nil
	r.s.profiles[p.ID] = p
	return nil
}

type InvestmentRepository struct{ s *Store }

var _ interfaces.IInvestmentRepository = (*InvestmentRepository)(nil)

func (r *InvestmentRepository) Create(_ context.Context, inv entities.Investment) (entities.Investment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.investments[inv.ID]; exists {
		return entities.Investment{}, ErrDuplicateID
	}
	r.s.investments[inv.ID] = inv
	return inv, nil
}

func (r *InvestmentRepository) GetByID(_ context.Context, id string) (entities.Investment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.investments[id], nil
}

func (r *InvestmentRepository) ListByProfileID(_ context.Context, profileID string) ([]entities.Investment, error) {
	return r.filter(func(inv entities.Investment) bool { return inv.ProfileID == profileID }), nil
}

func (r *InvestmentRepository) List(_ context.Context) ([]entities.Investment, error) {
	return r.filter(func(entities.Investment) bool { return true }), nil
}

func (r *InvestmentRepository) filter(keep func(entities.Investment) bool) []entities.Investment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Investment, 0)
	for _, inv := range r.s.investments {
		if keep(inv) {
			out = append(out, inv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}
