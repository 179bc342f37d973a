package geo

import "strings"

// RegionsAndCities is the catalog of Saudi regions and the cities the
// platform accepts as location filters. Opportunity locations are stored as
// "Region,City" strings; anything outside this catalog is treated as
// unfiltered rather than rejected.
var RegionsAndCities = map[string][]string{
	"Riyadh":           {"Riyadh", "Al Kharj", "Al Majma’ah", "Al Quway’iyah"},
	"Makkah":           {"Jeddah", "Makkah", "Taif", "Rabigh"},
	"Eastern Province": {"Dammam", "Khobar", "Dhahran", "Jubail"},
	"Madinah":          {"Madinah", "Yanbu", "Al Ula", "Badr"},
	"Qassim":           {"Buraidah", "Unaizah", "Al Rass", "Bukayriyah"},
	"Asir":             {"Abha", "Khamis Mushait", "Mahayel", "Bisha"},
	"Tabuk":            {"Tabuk", "Duba", "Umluj", "Tayma"},
	"Hail":             {"Hail", "Baqaa", "Ash Shinan", "Ghazalah"},
	"Jazan":            {"Jazan", "Sabya", "Abu Arish", "Al Ardah"},
	"Najran":           {"Najran", "Sharurah", "Hubuna"},
	"Al Bahah":         {"Al Bahah", "Baljurashi", "Al Mandaq"},
	"Al Jawf":          {"Sakaka", "Dumat Al Jandal", "Qurayyat"},
	"Northern Borders": {"Arar", "Rafha", "Turaif"},
}

// Regions returns the region names in no particular order.
func Regions() []string {
	regions := make([]string, 0, len(RegionsAndCities))
	for region := range RegionsAndCities {
		regions = append(regions, region)
	}
	return regions
}

// ValidRegion reports whether region is in the catalog.
func ValidRegion(region string) bool {
	_, ok := RegionsAndCities[region]
	return ok
}

// ValidCity reports whether city belongs to region.
func ValidCity(region, city string) bool {
	for _, c := range RegionsAndCities[region] {
		if c == city {
			return true
		}
	}
	return false
}

// NormalizeLocation stores a raw location as "Region,City". The city part
// may be empty. Returns "" for empty input.
func NormalizeLocation(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if idx := strings.Index(raw, ","); idx >= 0 {
		region := strings.TrimSpace(raw[:idx])
		city := strings.TrimSpace(raw[idx+1:])
		return region + "," + city
	}
	return raw + ","
}

// ParseLocation splits a stored location into region and city. Both are
// empty when the location does not contain a comma.
func ParseLocation(location string) (region, city string) {
	idx := strings.Index(location, ",")
	if idx < 0 {
		return "", ""
	}
	return strings.TrimSpace(location[:idx]), strings.TrimSpace(location[idx+1:])
}

// SanitizeFilter validates a region/city filter pair against the catalog.
// An unknown region drops both values; a city outside the region drops the
// city only.
func SanitizeFilter(region, city string) (string, string) {
	region = strings.TrimSpace(region)
	city = strings.TrimSpace(city)

	if region == "" {
		return "", ""
	}
	if !ValidRegion(region) {
		return "", ""
	}
	if city != "" && !ValidCity(region, city) {
		city = ""
	}
	return region, city
}
