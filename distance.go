package go_maidenhead

import (
	"math"

	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.01

// Distance returns the great-circle distance in kilometers between the centers
// of two locators.
func Distance(from, to string) (float64, error) {
	a, b, err := centers(from, to)
	if err != nil {
		return 0, err
	}
	return distanceKM(a, b), nil
}

// Bearing returns the initial great-circle bearing in degrees, clockwise from
// north within [0, 360), to travel from the center of one locator to the center
// of another.
func Bearing(from, to string) (float64, error) {
	a, b, err := centers(from, to)
	if err != nil {
		return 0, err
	}
	lat1, lat2 := a.Lat.Radians(), b.Lat.Radians()
	dLng := (b.Lng - a.Lng).Radians()
	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	bearing := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(bearing+360, 360), nil
}

func centers(from, to string) (s2.LatLng, s2.LatLng, error) {
	a, err := Center(from)
	if err != nil {
		return s2.LatLng{}, s2.LatLng{}, err
	}
	b, err := Center(to)
	if err != nil {
		return s2.LatLng{}, s2.LatLng{}, err
	}
	return a.S2(), b.S2(), nil
}

func distanceKM(a, b s2.LatLng) float64 {
	return float64(a.Distance(b)) * earthRadiusKm
}
