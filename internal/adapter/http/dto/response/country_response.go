package response

import (
	"nextribe/internal/domain/entities"
	"nextribe/internal/usecase"
)

// CountryResponse is a progress record plus the display attributes of its status.
type CountryResponse struct {
	entities.CountryProgress
	StatusLabel   string `json:"status_label"`
	StatusColor   string `json:"status_color"`
	StatusRank    int    `json:"status_rank"`
	HasAmbassador bool   `json:"has_ambassador"`
}

type CountryDetailResponse struct {
	Country    CountryResponse `json:"country"`
	Insight    string          `json:"insight"`
	Generated  bool            `json:"generated"`
	Motivation string          `json:"motivation,omitempty"`
}

func FromCountry(c entities.CountryProgress) CountryResponse {
	return CountryResponse{
		CountryProgress: c,
		StatusLabel:     c.Status.Label(),
		StatusColor:     c.Status.Color(),
		StatusRank:      c.Status.Rank(),
		HasAmbassador:   c.Status.HasAmbassador(),
	}
}

func FromCountries(cs []entities.CountryProgress) []CountryResponse {
	out := make([]CountryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCountry(c))
	}
	return out
}

func FromCountryDetail(d usecase.CountryDetail) CountryDetailResponse {
	return CountryDetailResponse{
		Country:    FromCountry(d.Country),
		Insight:    d.Insight,
		Generated:  d.Generated,
		Motivation: d.Motivation,
	}
}
