package geography

import (
	"testing"

	"nextribe/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestMapper_Code(t *testing.T) {
	m := NewMapper(DefaultRegions())

	code, ok := m.Code("40")
	assert.True(t, ok)
	assert.Equal(t, "AUT", code)

	code, ok = m.Code("300")
	assert.True(t, ok)
	assert.Equal(t, "GRC", code)

	code, ok = m.Code("4")
	assert.False(t, ok)
	assert.Equal(t, "004", code)
}

func TestMapper_Resolve(t *testing.T) {
	m := NewMapper(DefaultRegions())
	statuses := map[string]entities.CountryStatus{
		"BGR": entities.CountryStatusDevelopment,
		"XXX": entities.CountryStatusOperating,
	}

	bg := m.Resolve("100", statuses)
	assert.Equal(t, "BGR", bg.Code)
	assert.Equal(t, "Bulgaria", bg.Name)
	assert.Equal(t, entities.CountryStatusDevelopment, bg.Status)
	assert.Equal(t, "#3F5B4C", bg.Color)

	unknown := m.Resolve("999", statuses)
	assert.Equal(t, entities.CountryStatusNone, unknown.Status)
	assert.Equal(t, "Available Market", unknown.Label)

	all := m.ResolveAll(statuses)
	assert.Len(t, all, len(DefaultRegions()))
	assert.Equal(t, "040", all[0].Numeric)
}
