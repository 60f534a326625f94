package entities

// Profile is a network member with points and an investment portfolio.
type Profile struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	AvatarURL            string       `json:"avatar_url"`
	Level                string       `json:"level"`
	TotalPoints          int          `json:"total_points"`
	NextLevelPoints      int          `json:"next_level_points"`
	TotalInvested        float64      `json:"total_invested"`
	TotalYearlyReturn    float64      `json:"total_yearly_return"`
	TotalYearlyReturnPct float64      `json:"total_yearly_return_pct"`
	RemainingFreeNights  int          `json:"remaining_free_nights"`
	Investments          []Investment `json:"investments"`
}

// LevelProgress is totalPoints/nextLevelPoints as a percentage, capped at 100.
func (p Profile) LevelProgress() float64 {
	if p.NextLevelPoints <= 0 {
		return 0
	}
	pct := float64(p.TotalPoints) / float64(p.NextLevelPoints) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// ApplyInvestments recomputes the yearly totals from the portfolio.
// TotalYearlyReturnPct is the return weighted by investment size.
func (p *Profile) ApplyInvestments(investments []Investment) {
	p.Investments = investments
	if len(investments) == 0 {
		return
	}
	var invested, yearly float64
	for _, inv := range investments {
		invested += inv.InvestmentSize
		yearly += inv.YearlyReturnVal
	}
	p.TotalYearlyReturn = yearly
	if invested > 0 {
		p.TotalYearlyReturnPct = yearly / invested * 100
	}
	if invested > p.TotalInvested {
		p.TotalInvested = invested
	}
}
