package refdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountyForTown(t *testing.T) {
	county, ok := CountyForTown("Tuam")
	assert.True(t, ok)
	assert.Equal(t, "Galway", county)

	// Case-insensitive exact match.
	county, ok = CountyForTown("  tralee ")
	assert.True(t, ok)
	assert.Equal(t, "Kerry", county)

	// Unknown towns are not an error, just unknown.
	_, ok = CountyForTown("Atlantis")
	assert.False(t, ok)
}

func TestSearchTownsRanking(t *testing.T) {
	results := SearchTowns("kil")
	assert.NotEmpty(t, results)
	// Prefix matches come before plain substring matches.
	assert.True(t, strings.HasPrefix(strings.ToLower(results[0]), "kil"), "got %q", results[0])
	for _, town := range results {
		assert.Contains(t, strings.ToLower(town), "kil")
	}
}

func TestSearchTownsEmptyQueryIsCapped(t *testing.T) {
	results := SearchTowns("")
	assert.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), DefaultSearchLimit)
}

func TestSearchRolesCap(t *testing.T) {
	results := SearchRoles("er")
	assert.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), RoleSearchLimit)

	assert.Empty(t, SearchRoles("quantum basket weaver"))
}

func TestSearchExperience(t *testing.T) {
	assert.Equal(t, ExperienceLevels, SearchExperience(""))
	assert.Contains(t, SearchExperience("senior"), "Senior")
}

func TestTownCoordinatesFallsBackToCounty(t *testing.T) {
	coords, ok := TownCoordinates("Galway", "")
	assert.True(t, ok)
	assert.InDelta(t, 53.27, coords.Lat, 0.01)

	// Unknown town with a known county resolves to the county center.
	coords, ok = TownCoordinates("Ballygocrazy", "Mayo")
	assert.True(t, ok)
	center, _ := CountyCenter("Mayo")
	assert.Equal(t, center, coords)

	_, ok = TownCoordinates("Nowhere", "Narnia")
	assert.False(t, ok)
}

func TestCounties(t *testing.T) {
	counties := Counties()
	assert.Len(t, counties, 26)
	assert.Contains(t, counties, "Cork")
	assert.Contains(t, counties, "Donegal")
}
