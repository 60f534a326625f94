package usecase

import (
	"context"
	"sort"

	"nextribe/internal/domain/catalog"
	"nextribe/internal/domain/entities"
	"nextribe/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	LeaderboardSize = 10

	defaultLeaderName    = "Anonymous"
	defaultLeaderAvatar  = "https://placehold.co/100"
	defaultLeaderCountry = "Global"
	monthlyPointsChange  = 12
)

type IDashboardUseCase interface {
	Leaderboard(ctx context.Context) ([]entities.LeaderboardEntry, error)
	GlobalStats(ctx context.Context) (entities.GlobalStats, error)
}

type DashboardUseCase struct {
	profiles    interfaces.IProfileRepository
	countries   interfaces.ICountryRepository
	investments interfaces.IInvestmentRepository
	logger      *zap.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(profiles interfaces.IProfileRepository, countries interfaces.ICountryRepository, investments interfaces.IInvestmentRepository, logger *zap.Logger) *DashboardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardUseCase{profiles: profiles, countries: countries, investments: investments, logger: logger.Named("dashboard")}
}

// Leaderboard ranks profiles by total points. An empty or failing store
// yields the demo leaderboard.
func (u *DashboardUseCase) Leaderboard(ctx context.Context) ([]entities.LeaderboardEntry, error) {
	if u.profiles == nil {
		return catalog.Leaderboard(), nil
	}
	profiles, err := u.profiles.List(ctx)
	if err != nil {
		u.logger.Warn("[dashboard][usecase] profile list failed, using demo leaderboard", zap.Error(err))
		return catalog.Leaderboard(), nil
	}
	if len(profiles) == 0 {
		return catalog.Leaderboard(), nil
	}

	sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].TotalPoints > profiles[j].TotalPoints })
	if len(profiles) > LeaderboardSize {
		profiles = profiles[:LeaderboardSize]
	}

	out := make([]entities.LeaderboardEntry, 0, len(profiles))
	for _, p := range profiles {
		e := entities.LeaderboardEntry{
			ID:        p.ID,
			Name:      p.Name,
			Country:   defaultLeaderCountry,
			AvatarURL: p.AvatarURL,
			Points:    p.TotalPoints,
		}
		if e.Name == "" {
			e.Name = defaultLeaderName
		}
		if e.AvatarURL == "" {
			e.AvatarURL = defaultLeaderAvatar
		}
		out = append(out, e)
	}
	return out, nil
}

// GlobalStats overlays store aggregates on the demo headline numbers. Each
// aggregate falls back independently when its source is unavailable.
func (u *DashboardUseCase) GlobalStats(ctx context.Context) (entities.GlobalStats, error) {
	stats := catalog.GlobalStats()

	if u.investments != nil {
		invs, err := u.investments.List(ctx)
		if err != nil {
			u.logger.Warn("[dashboard][usecase] investment list failed", zap.Error(err))
		} else {
			var total float64
			for _, inv := range invs {
				if inv.Status != entities.InvestmentStatusDenied {
					total += inv.InvestmentSize
				}
			}
			if total > 0 {
				stats.TotalDistributed = total
			}
		}
	}

	if u.countries != nil {
		cs, err := u.countries.List(ctx)
		if err != nil {
			u.logger.Warn("[dashboard][usecase] country list failed", zap.Error(err))
		} else if len(cs) > 0 {
			var dev, proposed int
			for _, c := range cs {
				st := entities.ParseCountryStatus(string(c.Status))
				if st == entities.CountryStatusDevelopment || st == entities.CountryStatusOperating {
					dev++
				}
				if st != entities.CountryStatusNone {
					proposed++
				}
			}
			stats.ActiveCountriesStats = entities.ActiveCountriesStats{Development: dev, TotalProposed: proposed}
		}
	}

	if u.profiles != nil {
		ps, err := u.profiles.List(ctx)
		if err != nil {
			u.logger.Warn("[dashboard][usecase] profile list failed", zap.Error(err))
		} else {
			points := 0
			for _, p := range ps {
				points += p.TotalPoints
			}
			stats.CommunityPoints.Monthly.Change = monthlyPointsChange
			if points > 0 {
				stats.CommunityPoints.Monthly.Value = float64(points)
			}
		}
	}

	return stats, nil
}
