package domain

import "time"

// LocationPoint is one recorded driver position on a match path.
type LocationPoint struct {
	MatchID   int64
	DriverID  int64
	Latitude  float64
	Longitude float64
	Status    string
	Notes     string
	Timestamp time.Time
}

// ValidCoordinates reports whether lat/lng are inside WGS84 bounds.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
