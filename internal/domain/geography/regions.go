// Package geography maps world-topology region identifiers to the alpha-3
// country codes used everywhere else.
package geography

import (
	"sort"
	"strconv"
	"strings"

	"nextribe/internal/domain/entities"
)

// Region is one country of the demo network.
type Region struct {
	Numeric string `json:"numeric"`
	Alpha3  string `json:"alpha3"`
	Name    string `json:"name"`
}

// DefaultRegions covers the countries referenced by the demo data.
func DefaultRegions() []Region {
	return []Region{
		{"300", "GRC", "Greece"},
		{"724", "ESP", "Spain"},
		{"380", "ITA", "Italy"},
		{"250", "FRA", "France"},
		{"276", "DEU", "Germany"},
		{"620", "PRT", "Portugal"},
		{"100", "BGR", "Bulgaria"},
		{"826", "GBR", "United Kingdom"},
		{"840", "USA", "United States of America"},
		{"792", "TUR", "Turkey"},
		{"191", "HRV", "Croatia"},
		{"040", "AUT", "Austria"},
		{"642", "ROU", "Romania"},
		{"705", "SVN", "Slovenia"},
		{"458", "MYS", "Malaysia"},
		{"196", "CYP", "Cyprus"},
		{"440", "LTU", "Lithuania"},
		{"616", "POL", "Poland"},
		{"392", "JPN", "Japan"},
	}
}

// Mapper resolves numeric region ids. It is immutable after construction.
type Mapper struct {
	byNumeric map[string]Region
	byAlpha3  map[string]Region
}

func NewMapper(regions []Region) *Mapper {
	m := &Mapper{
		byNumeric: make(map[string]Region, len(regions)),
		byAlpha3:  make(map[string]Region, len(regions)),
	}
	for _, r := range regions {
		r.Numeric = PadNumeric(r.Numeric)
		r.Alpha3 = strings.ToUpper(r.Alpha3)
		m.byNumeric[r.Numeric] = r
		m.byAlpha3[r.Alpha3] = r
	}
	return m
}

// PadNumeric left-pads a topology id to three digits ("40" -> "040").
func PadNumeric(id string) string {
	id = strings.TrimSpace(id)
	if n, err := strconv.Atoi(id); err == nil && n >= 0 && len(id) < 3 {
		return strings.Repeat("0", 3-len(id)) + id
	}
	return id
}

// Code returns the alpha-3 code for a numeric id. Unmapped ids return the
// padded id and false.
func (m *Mapper) Code(numericID string) (string, bool) {
	padded := PadNumeric(numericID)
	if r, ok := m.byNumeric[padded]; ok {
		return r.Alpha3, true
	}
	return padded, false
}

// Name returns the display name for an alpha-3 code.
func (m *Mapper) Name(alpha3 string) (string, bool) {
	r, ok := m.byAlpha3[strings.ToUpper(alpha3)]
	return r.Name, ok
}

// RegionStatus is the map view of a region.
type RegionStatus struct {
	Numeric string                 `json:"numeric"`
	Code    string                 `json:"code"`
	Name    string                 `json:"name"`
	Status  entities.CountryStatus `json:"status"`
	Label   string                 `json:"label"`
	Color   string                 `json:"color"`
}

// Resolve looks up the status of a numeric region in statuses (keyed by
// alpha-3). Unmapped regions and unknown countries render as none.
func (m *Mapper) Resolve(numericID string, statuses map[string]entities.CountryStatus) RegionStatus {
	code, mapped := m.Code(numericID)
	status := entities.CountryStatusNone
	name := ""
	if mapped {
		if st, ok := statuses[code]; ok && st.Valid() {
			status = st
		}
		name, _ = m.Name(code)
	}
	return RegionStatus{
		Numeric: PadNumeric(numericID),
		Code:    code,
		Name:    name,
		Status:  status,
		Label:   status.Label(),
		Color:   status.Color(),
	}
}

// ResolveAll resolves every mapped region, ordered by numeric id.
func (m *Mapper) ResolveAll(statuses map[string]entities.CountryStatus) []RegionStatus {
	ids := make([]string, 0, len(m.byNumeric))
	for id := range m.byNumeric {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]RegionStatus, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.Resolve(id, statuses))
	}
	return out
}
