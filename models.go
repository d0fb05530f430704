package geoip

import "math"

// Country - result of a country-level lookup.
type Country struct {
	Code string // 2 letter country code
	Name string // country name
}

// UnknownCountry is returned when the address resolves to the reserved
// entry at index zero.
var UnknownCountry = Country{Code: "--", Name: "N/A"}

// Region - result of a region-edition lookup.
type Region struct {
	CountryCode string
	CountryName string
	Region      string // two-letter US state / Canadian province code, empty elsewhere
}

// Location - result of a city-edition lookup.
type Location struct {
	CountryCode string
	CountryName string
	Region      string
	City        string
	PostalCode  string
	Latitude    float64
	Longitude   float64
	DMACode     int // city revision 1, US only
	AreaCode    int // city revision 1, US only
	MetroCode   int // alias of DMACode
}

const (
	earthDiameterKm = 2 * 6378.2
	radConvert      = math.Pi / 180
)

// DistanceTo returns the great-circle distance to loc in kilometers.
func (l *Location) DistanceTo(loc *Location) float64 {
	lat1 := l.Latitude * radConvert
	lat2 := loc.Latitude * radConvert
	deltaLat := lat2 - lat1
	deltaLon := (loc.Longitude - l.Longitude) * radConvert

	temp := math.Pow(math.Sin(deltaLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(deltaLon/2), 2)
	return earthDiameterKm * math.Atan2(math.Sqrt(temp), math.Sqrt(1-temp))
}
