package investment

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_ReferenceOpportunity(t *testing.T) {
	p, err := Compute(Pricing{TotalPrice: 120000, ExpectedRoiPct: 11.5}, 6)
	require.NoError(t, err)

	assert.Equal(t, 0.5, p.SharePercentage)
	assert.InDelta(t, 60000, p.InvestmentCost, 1e-9)
	assert.InDelta(t, 6900, p.YearlyReturn, 1e-9)
	assert.InDelta(t, 76576.89, p.Value5Years, 0.01)
	assert.InDelta(t, 97733.68, p.Value10Years, 0.01)
	assert.InDelta(t, p.Value5Years, p.ValueAfter(5), 1e-9)
	assert.Equal(t, 109.5, p.FreeNights)
	assert.Equal(t, 109, p.FreeNightsWhole)
}

func TestCompute_FreeNights(t *testing.T) {
	cases := []struct {
		shares int
		nights float64
		whole  int
	}{
		{1, 30, 30},
		{2, 60, 60},
		{3, 90, 90},
		{4, 109.5, 109},
		{12, 109.5, 109},
	}
	for _, tc := range cases {
		p, err := Compute(Pricing{TotalPrice: 100000, ExpectedRoiPct: 10}, tc.shares)
		require.NoError(t, err)
		assert.Equal(t, tc.nights, p.FreeNights, "shares=%d", tc.shares)
		assert.Equal(t, tc.whole, p.FreeNightsWhole, "shares=%d", tc.shares)
		assert.Equal(t, float64(30*tc.shares), p.RawNights)
	}
}

func TestCompute_Monotonic(t *testing.T) {
	pricing := Pricing{TotalPrice: 145000, ExpectedRoiPct: 12.2}
	prev, err := Compute(pricing, 1)
	require.NoError(t, err)
	assert.Greater(t, prev.InvestmentCost, 0.0)

	for shares := 2; shares <= TotalShares; shares++ {
		p, err := Compute(pricing, shares)
		require.NoError(t, err)

		assert.Greater(t, p.InvestmentCost, prev.InvestmentCost)
		assert.LessOrEqual(t, p.InvestmentCost, pricing.TotalPrice)
		assert.GreaterOrEqual(t, p.FreeNights, prev.FreeNights)
		assert.Greater(t, p.YearlyReturn, prev.YearlyReturn)
		assert.Greater(t, p.Value5Years, prev.Value5Years)
		assert.Greater(t, p.Value10Years, prev.Value10Years)
		prev = p
	}
	assert.InDelta(t, pricing.TotalPrice, prev.InvestmentCost, 1e-6)
}

func TestCompute_Rejects(t *testing.T) {
	_, err := Compute(Pricing{TotalPrice: 1000, ExpectedRoiPct: 5}, 0)
	assert.ErrorIs(t, err, ErrInvalidShareCount)

	_, err = Compute(Pricing{TotalPrice: 1000, ExpectedRoiPct: 5}, 13)
	assert.ErrorIs(t, err, ErrInvalidShareCount)

	_, err = Compute(Pricing{TotalPrice: 0, ExpectedRoiPct: 5}, 1)
	assert.ErrorIs(t, err, ErrInvalidOpportunity)
}

func TestMaxNightsIsConstant(t *testing.T) {
	const ceiling float64 = MaxNights
	assert.Equal(t, 109.5, ceiling)
}

func TestSourceIsFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	for _, f := range files {
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-formatted", f)
	}
}

func TestShareHelpers(t *testing.T) {
	assert.Equal(t, 7, SharesAvailable(60))
	assert.Equal(t, 12, SharesAvailable(100))
	assert.Equal(t, 0, SharesAvailable(0))
	assert.Equal(t, 3, SharesAvailable(25))

	assert.InDelta(t, 50, SharesToPct(6), 1e-9)
}
