package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegions(t *testing.T) {
	regions := Regions()
	assert.Len(t, regions, len(RegionsAndCities))
	assert.Contains(t, regions, "Riyadh")
	assert.Contains(t, regions, "Eastern Province")
}

func TestValidRegion(t *testing.T) {
	assert.True(t, ValidRegion("Riyadh"))
	assert.True(t, ValidRegion("Najran"))
	assert.False(t, ValidRegion("Atlantis"))
	assert.False(t, ValidRegion(""))
}

func TestValidCity(t *testing.T) {
	assert.True(t, ValidCity("Makkah", "Jeddah"))
	assert.True(t, ValidCity("Eastern Province", "Khobar"))
	assert.False(t, ValidCity("Makkah", "Riyadh"))
	assert.False(t, ValidCity("Atlantis", "Jeddah"))
}

// City names with apostrophes use U+2019, the spelling the catalog data
// and stored locations carry. The ASCII variant is a different string.
func TestValidCity_ApostropheSpelling(t *testing.T) {
	assert.True(t, ValidCity("Riyadh", "Al Majma’ah"))
	assert.True(t, ValidCity("Riyadh", "Al Quway’iyah"))
	assert.False(t, ValidCity("Riyadh", "Al Majma'ah"))
}

func TestNormalizeLocation(t *testing.T) {
	assert.Equal(t, "Riyadh,Riyadh", NormalizeLocation("Riyadh, Riyadh"))
	assert.Equal(t, "Makkah,Jeddah", NormalizeLocation("  Makkah ,  Jeddah  "))
	assert.Equal(t, "Riyadh,", NormalizeLocation("Riyadh"))
	assert.Equal(t, "", NormalizeLocation("   "))
}

func TestParseLocation(t *testing.T) {
	region, city := ParseLocation("Riyadh,Riyadh")
	assert.Equal(t, "Riyadh", region)
	assert.Equal(t, "Riyadh", city)

	region, city = ParseLocation("Makkah, Jeddah")
	assert.Equal(t, "Makkah", region)
	assert.Equal(t, "Jeddah", city)

	region, city = ParseLocation("Riyadh,")
	assert.Equal(t, "Riyadh", region)
	assert.Equal(t, "", city)

	region, city = ParseLocation("Remote")
	assert.Equal(t, "", region)
	assert.Equal(t, "", city)
}

func TestSanitizeFilter(t *testing.T) {
	region, city := SanitizeFilter("Riyadh", "Al Kharj")
	assert.Equal(t, "Riyadh", region)
	assert.Equal(t, "Al Kharj", city)

	// City outside the region drops the city only
	region, city = SanitizeFilter("Riyadh", "Jeddah")
	assert.Equal(t, "Riyadh", region)
	assert.Equal(t, "", city)

	// Unknown region drops both
	region, city = SanitizeFilter("Atlantis", "Jeddah")
	assert.Equal(t, "", region)
	assert.Equal(t, "", city)

	region, city = SanitizeFilter("", "Jeddah")
	assert.Equal(t, "", region)
	assert.Equal(t, "", city)
}
