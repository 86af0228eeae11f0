package go_maidenhead

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

const (
	MinLatitude  = -90
	MaxLatitude  = 90
	MinLongitude = -180
	MaxLongitude = 180
)

// CoordinateLike is anything that can be read as a WGS84 coordinate.
// Both the named-field Coordinate and the ordered LatLng pair implement it.
type CoordinateLike interface {
	Coordinate() Coordinate
}

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

func (c Coordinate) Coordinate() Coordinate {
	return c
}

// S2 converts the coordinate into an s2.LatLng.
func (c Coordinate) S2() s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lng)
}

// Pair returns the coordinate as an ordered (lat, lng) pair.
func (c Coordinate) Pair() LatLng {
	return LatLng{c.Lat, c.Lng}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%f, %f)", c.Lat, c.Lng)
}

// LatLng is a coordinate as an ordered pair, latitude first.
type LatLng [2]float64

func (p LatLng) Coordinate() Coordinate {
	return Coordinate{Lat: p[0], Lng: p[1]}
}

// FromS2 converts an s2.LatLng into a Coordinate.
func FromS2(ll s2.LatLng) Coordinate {
	return Coordinate{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}
}

// validateCoordinate resolves a CoordinateLike and checks that both fields are
// numbers within the WGS84 bounds. The bounds are inclusive.
func validateCoordinate(coord CoordinateLike) (Coordinate, error) {
	if coord == nil {
		return Coordinate{}, fmt.Errorf("coordinate is nil: %w", ErrInvalidInput)
	}
	c := coord.Coordinate()
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return Coordinate{}, fmt.Errorf("coordinate %v is not a number: %w", c, ErrInvalidInput)
	}
	if c.Lat < MinLatitude || c.Lat > MaxLatitude {
		return Coordinate{}, fmt.Errorf("invalid latitude %f (Min: %d, Max: %d): %w", c.Lat, MinLatitude, MaxLatitude, ErrOutOfRange)
	}
	if c.Lng < MinLongitude || c.Lng > MaxLongitude {
		return Coordinate{}, fmt.Errorf("invalid longitude %f (Min: %d, Max: %d): %w", c.Lng, MinLongitude, MaxLongitude, ErrOutOfRange)
	}
	return c, nil
}
