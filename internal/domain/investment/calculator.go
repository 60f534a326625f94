// Package investment projects the cost and returns of fractional ownership.
package investment

import (
	"errors"
	"math"
)

const (
	// TotalShares is the fixed number of shares each opportunity is split into.
	TotalShares = 12
	// NightsPerShare is the yearly free-night allotment of one share.
	NightsPerShare = 30
	// MaxNightsRatio caps free nights at 30% of the year.
	MaxNightsRatio = 0.30
	// GrowthRate is the assumed yearly appreciation.
	GrowthRate = 0.05
	// PctTolerance absorbs float drift when share percentages are summed.
	PctTolerance = 1e-9
)

// MaxNights is 365 * 30% = 109.5.
const MaxNights = 365 * MaxNightsRatio

var (
	ErrInvalidShareCount  = errors.New("invalid share count")
	ErrInvalidOpportunity = errors.New("invalid opportunity pricing")
)

// Pricing is the subset of an opportunity the calculator needs.
type Pricing struct {
	TotalPrice     float64
	ExpectedRoiPct float64
}

// Projection is the outcome of buying Shares of an opportunity.
type Projection struct {
	Shares          int     `json:"shares"`
	TotalShares     int     `json:"total_shares"`
	SharePercentage float64 `json:"share_percentage"`
	InvestmentCost  float64 `json:"investment_cost"`
	RawNights       float64 `json:"raw_nights"`
	MaxNights       float64 `json:"max_nights"`
	FreeNights      float64 `json:"free_nights"`
	FreeNightsWhole int     `json:"free_nights_whole"`
	YearlyReturn    float64 `json:"yearly_return"`
	GrowthRate      float64 `json:"growth_rate"`
	Value5Years     float64 `json:"value_5_years"`
	Value10Years    float64 `json:"value_10_years"`
}

// ValueAfter is the cost compounded at GrowthRate for years.
func (p Projection) ValueAfter(years int) float64 {
	return compound(p.InvestmentCost, p.GrowthRate, years)
}

// Compute projects buying shares of the priced opportunity. Share counts
// outside [1, TotalShares] are rejected.
func Compute(pricing Pricing, shares int) (Projection, error) {
	if shares < 1 || shares > TotalShares {
		return Projection{}, ErrInvalidShareCount
	}
	if !finite(pricing.TotalPrice) || pricing.TotalPrice <= 0 || !finite(pricing.ExpectedRoiPct) {
		return Projection{}, ErrInvalidOpportunity
	}

	sharePct := float64(shares) / TotalShares
	cost := pricing.TotalPrice * sharePct
	rawNights := float64(NightsPerShare * shares)
	freeNights := math.Min(rawNights, MaxNights)

	return Projection{
		Shares:          shares,
		TotalShares:     TotalShares,
		SharePercentage: sharePct,
		InvestmentCost:  cost,
		RawNights:       rawNights,
		MaxNights:       MaxNights,
		FreeNights:      freeNights,
		FreeNightsWhole: int(math.Floor(freeNights)),
		YearlyReturn:    cost * (pricing.ExpectedRoiPct / 100),
		GrowthRate:      GrowthRate,
		Value5Years:     compound(cost, GrowthRate, 5),
		Value10Years:    compound(cost, GrowthRate, 10),
	}, nil
}

// SharesAvailable converts an available percentage into whole shares.
func SharesAvailable(availablePct float64) int {
	if availablePct <= 0 || !finite(availablePct) {
		return 0
	}
	n := int(math.Floor(availablePct/100*TotalShares + PctTolerance))
	if n > TotalShares {
		return TotalShares
	}
	return n
}

// SharesToPct is the ownership percentage (0-100) of shares.
func SharesToPct(shares int) float64 {
	return float64(shares) / TotalShares * 100
}

func compound(principal, rate float64, years int) float64 {
	return principal * math.Pow(1+rate, float64(years))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
