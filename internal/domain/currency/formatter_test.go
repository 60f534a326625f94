package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatter_Format(t *testing.T) {
	f := NewFormatter(nil, language.AmericanEnglish)

	assert.Equal(t, "€920.00", f.Format(1000, "EUR"))
	assert.Equal(t, "$1,000.00", f.Format(1000, "USD"))
	assert.Equal(t, "$1,000.00", f.Format(1000, "XYZ"))
	assert.Equal(t, "$1,000.00", f.Format(1000, " usd "))
	assert.Equal(t, "-$5.50", f.Format(-5.5, "USD"))
	assert.Contains(t, f.Format(85000, "BTC"), "1.275")
}

func TestFormatter_Convert(t *testing.T) {
	f := NewFormatter(nil, language.Und)

	assert.InDelta(t, 920, f.Convert(1000, "EUR"), 1e-9)
	assert.InDelta(t, 1000, f.Convert(1000, "XYZ"), 1e-9)
	assert.InDelta(t, 9850, f.Convert(1000, "SOL"), 1e-9)
	assert.True(t, f.Known("eth"))
	assert.False(t, f.Known("XYZ"))
}

func TestFormatter_InjectedRates(t *testing.T) {
	f := NewFormatter(map[string]Spec{"GBP": {Rate: 0.5, Symbol: "£"}}, language.BritishEnglish)

	assert.Equal(t, "£500.00", f.Format(1000, "gbp"))
	// USD is always available as the fallback
	assert.Equal(t, "$10.00", f.Format(10, "EUR"))
	assert.ElementsMatch(t, []string{"GBP", "USD"}, f.Codes())
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, language.MustParse("pt-BR"), ParseLocale("pt-BR"))
	assert.Equal(t, DefaultTag, ParseLocale("not a locale!"))
}
