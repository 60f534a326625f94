package usecase

import (
	"context"
	"strings"

	"nextribe/internal/domain/catalog"
	"nextribe/internal/domain/currency"
	"nextribe/internal/domain/entities"
	"nextribe/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// MoneyView is an amount in USD and its rendering in the requested currency.
type MoneyView struct {
	USD       float64 `json:"usd"`
	Formatted string  `json:"formatted"`
}

type InvestmentView struct {
	entities.Investment
	Size         MoneyView `json:"size"`
	YearlyReturn MoneyView `json:"yearly_return"`
}

// ProfileView is a profile prepared for display in one currency.
type ProfileView struct {
	Profile           entities.Profile `json:"profile"`
	Currency          string           `json:"currency"`
	LevelProgress     float64          `json:"level_progress"`
	TotalInvested     MoneyView        `json:"total_invested"`
	TotalYearlyReturn MoneyView        `json:"total_yearly_return"`
	Investments       []InvestmentView `json:"investments"`
	Demo              bool             `json:"demo"`
}

type IProfileUseCase interface {
	Get(ctx context.Context, id, currencyCode string) (ProfileView, error)
}

type ProfileUseCase struct {
	repo      interfaces.IProfileRepository
	invRepo   interfaces.IInvestmentRepository
	formatter *currency.Formatter
	logger    *zap.Logger
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository, invRepo interfaces.IInvestmentRepository, formatter *currency.Formatter, logger *zap.Logger) *ProfileUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if formatter == nil {
		formatter = currency.NewFormatter(nil, currency.DefaultTag)
	}
	return &ProfileUseCase{repo: repo, invRepo: invRepo, formatter: formatter, logger: logger.Named("profile")}
}

// Get loads a stored profile with its portfolio. A missing profile, or a
// store failure, yields the demo profile.
func (u *ProfileUseCase) Get(ctx context.Context, id, currencyCode string) (ProfileView, error) {
	id = strings.TrimSpace(id)
	p, demo := u.load(ctx, id)

	code, _ := u.formatter.Resolve(currencyCode)
	view := ProfileView{
		Profile:           p,
		Currency:          code,
		LevelProgress:     p.LevelProgress(),
		TotalInvested:     u.money(p.TotalInvested, code),
		TotalYearlyReturn: u.money(p.TotalYearlyReturn, code),
		Investments:       make([]InvestmentView, 0, len(p.Investments)),
		Demo:              demo,
	}
	for _, inv := range p.Investments {
		view.Investments = append(view.Investments, InvestmentView{
			Investment:   inv,
			Size:         u.money(inv.InvestmentSize, code),
			YearlyReturn: u.money(inv.YearlyReturnVal, code),
		})
	}
	return view, nil
}

func (u *ProfileUseCase) load(ctx context.Context, id string) (entities.Profile, bool) {
	if id == "" || id == catalog.DemoProfileID || u.repo == nil {
		return catalog.Profile(), true
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		u.logger.Warn("[profile][usecase] store lookup failed, using demo profile", zap.String("profile_id", id), zap.Error(err))
		return catalog.Profile(), true
	}
	if p.ID == "" {
		u.logger.Info("[profile][usecase] profile not stored, using demo profile", zap.String("profile_id", id))
		return catalog.Profile(), true
	}

	if u.invRepo != nil {
		invs, err := u.invRepo.ListByProfileID(ctx, p.ID)
		if err != nil {
			u.logger.Warn("[profile][usecase] investments lookup failed", zap.String("profile_id", id), zap.Error(err))
		} else {
			p.ApplyInvestments(activeInvestments(invs))
		}
	}
	if p.Investments == nil {
		p.Investments = []entities.Investment{}
	}
	return p, false
}

func (u *ProfileUseCase) money(usd float64, code string) MoneyView {
	return MoneyView{USD: usd, Formatted: u.formatter.Format(usd, code)}
}

// activeInvestments drops denied purchases from a portfolio.
func activeInvestments(invs []entities.Investment) []entities.Investment {
	out := make([]entities.Investment, 0, len(invs))
	for _, inv := range invs {
		if inv.Status != entities.InvestmentStatusDenied {
			out = append(out, inv)
		}
	}
	return out
}
