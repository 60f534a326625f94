package request

import (
	"strings"

	"nextribe/internal/domain/entities"
)

// CountryQuery carries the selection made on the map.
type CountryQuery struct {
	Name   string `form:"name" binding:"max=120"`
	Status string `form:"status" binding:"max=32"`
	Viewer string `form:"viewer" binding:"max=64"`
}

// ResolveStatus returns the requested status, or "" when none was given.
// Unknown values resolve to none.
func (q CountryQuery) ResolveStatus() entities.CountryStatus {
	s := strings.TrimSpace(q.Status)
	if s == "" {
		return ""
	}
	return entities.ParseCountryStatus(s)
}
