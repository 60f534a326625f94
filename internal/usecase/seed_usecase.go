package usecase

import (
	"context"
	"fmt"
	"sort"

	"nextribe/internal/domain/catalog"
	"nextribe/internal/domain/entities"
	"nextribe/internal/domain/geography"
	"nextribe/internal/domain/progress"
	"nextribe/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// SeedReport counts the records written by a seed run.
type SeedReport struct {
	Countries     int `json:"countries"`
	Opportunities int `json:"opportunities"`
	Profiles      int `json:"profiles"`
}

// Seeder writes the demo catalog into a backing store.
type Seeder struct {
	countries     interfaces.ICountryRepository
	opportunities interfaces.IOpportunityRepository
	profiles      interfaces.IProfileRepository
	engine        *progress.Engine
	mapper        *geography.Mapper
	logger        *zap.Logger
}

func NewSeeder(
	countries interfaces.ICountryRepository,
	opportunities interfaces.IOpportunityRepository,
	profiles interfaces.IProfileRepository,
	engine *progress.Engine,
	mapper *geography.Mapper,
	logger *zap.Logger,
) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = progress.NewEngine(nil, progress.DefaultTables())
	}
	if mapper == nil {
		mapper = geography.NewMapper(geography.DefaultRegions())
	}
	return &Seeder{
		countries:     countries,
		opportunities: opportunities,
		profiles:      profiles,
		engine:        engine,
		mapper:        mapper,
		logger:        logger.Named("seed"),
	}
}

// Run upserts derived countries, the demo opportunities and the demo
// profiles. It stops at the first store error.
func (s *Seeder) Run(ctx context.Context) (SeedReport, error) {
	var report SeedReport

	statuses := catalog.CountryStatusMap()
	ids := make([]string, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		name, ok := s.mapper.Name(id)
		if !ok {
			name = id
		}
		c := s.engine.Derive(id, name, statuses[id])
		if err := s.countries.Upsert(ctx, c); err != nil {
			return report, fmt.Errorf("seed country %s: %w", id, err)
		}
		report.Countries++
	}

	for _, o := range catalog.Opportunities() {
		if err := s.opportunities.Upsert(ctx, o); err != nil {
			return report, fmt.Errorf("seed opportunity %s: %w", o.ID, err)
		}
		report.Opportunities++
	}

	for _, p := range demoProfiles() {
		if err := s.profiles.Upsert(ctx, p); err != nil {
			return report, fmt.Errorf("seed profile %s: %w", p.ID, err)
		}
		report.Profiles++
	}

	s.logger.Info("[seed][usecase] catalog written",
		zap.Int("countries", report.Countries),
		zap.Int("opportunities", report.Opportunities),
		zap.Int("profiles", report.Profiles))
	return report, nil
}

// demoProfiles is the demo member plus one profile per leaderboard entry.
func demoProfiles() []entities.Profile {
	demo := catalog.Profile()
	demo.Investments = nil
	out := []entities.Profile{demo}
	for _, e := range catalog.Leaderboard() {
		out = append(out, entities.Profile{
			ID:          "leader-" + e.ID,
			Name:        e.Name,
			AvatarURL:   e.AvatarURL,
			TotalPoints: e.Points,
		})
	}
	return out
}
