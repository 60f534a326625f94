// Package currency converts USD amounts to display currencies and renders
// them with locale-aware grouping.
package currency

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const BaseCode = "USD"

// DefaultTag is the locale used when none is configured.
var DefaultTag = language.AmericanEnglish

// ParseLocale parses a BCP 47 tag such as "en-US", falling back to DefaultTag.
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return DefaultTag
	}
	return tag
}

// Spec describes one display currency.
type Spec struct {
	// Rate converts one USD into this currency.
	Rate float64
	// Symbol prefixes the number.
	Symbol string
	// MinDigits/MaxDigits bound the fraction digits. Zero values fall back to
	// the ISO 4217 rounding scale when the code is an ISO currency.
	MinDigits int
	MaxDigits int
}

// DefaultRates is the static rate table shown in the profile view.
func DefaultRates() map[string]Spec {
	return map[string]Spec{
		"USD": {Rate: 1, Symbol: "$"},
		"EUR": {Rate: 0.92, Symbol: "€"},
		"SOL": {Rate: 9.85, Symbol: "SOL ", MinDigits: 2, MaxDigits: 2},
		"BTC": {Rate: 0.000015, Symbol: "₿", MinDigits: 4, MaxDigits: 6},
		"ETH": {Rate: 0.00031, Symbol: "Ξ", MinDigits: 4, MaxDigits: 6},
	}
}

// Formatter renders amounts for a fixed locale and rate table.
type Formatter struct {
	rates map[string]Spec
	tag   language.Tag
}

// NewFormatter copies rates; a nil table uses DefaultRates. USD is always present.
func NewFormatter(rates map[string]Spec, tag language.Tag) *Formatter {
	if rates == nil {
		rates = DefaultRates()
	}
	cp := make(map[string]Spec, len(rates)+1)
	for code, s := range rates {
		cp[strings.ToUpper(code)] = s
	}
	if _, ok := cp[BaseCode]; !ok {
		cp[BaseCode] = Spec{Rate: 1, Symbol: "$"}
	}
	if tag == language.Und {
		tag = language.AmericanEnglish
	}
	return &Formatter{rates: cp, tag: tag}
}

// Resolve returns the normalized code and its spec. Unknown codes resolve to USD.
func (f *Formatter) Resolve(code string) (string, Spec) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if s, ok := f.rates[code]; ok {
		return code, s
	}
	return BaseCode, f.rates[BaseCode]
}

// Known reports whether code has a rate.
func (f *Formatter) Known(code string) bool {
	_, ok := f.rates[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Codes lists the configured currency codes.
func (f *Formatter) Codes() []string {
	out := make([]string, 0, len(f.rates))
	for code := range f.rates {
		out = append(out, code)
	}
	return out
}

// Convert multiplies a USD amount by the rate of code.
func (f *Formatter) Convert(amountUSD float64, code string) float64 {
	_, s := f.Resolve(code)
	return amountUSD * s.Rate
}

// Format converts and renders amountUSD in code, e.g. Format(1000, "EUR") = "€920.00".
func (f *Formatter) Format(amountUSD float64, code string) string {
	code, s := f.Resolve(code)
	minDigits, maxDigits := digitsFor(code, s)

	p := message.NewPrinter(f.tag)
	converted := amountUSD * s.Rate
	sign := ""
	if converted < 0 {
		sign = "-"
		converted = -converted
	}
	return sign + s.Symbol + p.Sprintf("%v", number.Decimal(converted,
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	))
}

func digitsFor(code string, s Spec) (int, int) {
	if s.MaxDigits > 0 {
		return s.MinDigits, s.MaxDigits
	}
	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ := currency.Standard.Rounding(unit)
		return scale, scale
	}
	return 2, 2
}
