// Package geo provides great-circle math over WGS84 coordinates.
//
// Distances use the spherical model with a mean Earth radius of 6371 km,
// which is the convention the planning engine builds its estimates on.
// Inputs are assumed to be valid degrees; there are no error states.
package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean Earth radius used for all distance math.
const EarthRadiusKm = 6371.0

// Point represents a geographic coordinate in WGS84 degrees.
type Point struct {
	Lat float64
	Lng float64
}

// DistanceKm returns the great-circle distance between a and b in
// kilometers. The result is symmetric and zero for identical points.
func DistanceKm(a, b Point) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// BearingDegrees returns the initial bearing from a to b in degrees,
// normalized to [0, 360), where 0 is north and 90 is east.
func BearingDegrees(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lngDiff := (b.Lng - a.Lng) * math.Pi / 180

	y := math.Sin(lngDiff) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lngDiff)
	bearing := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(bearing+360, 360)
}
