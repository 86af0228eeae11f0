package go_maidenhead

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// BoundingBox is the area covered by a locator, given by two diagonal corners.
type BoundingBox struct {
	LowerLeft  Coordinate
	UpperRight Coordinate
}

// Pair returns both corners as ordered pairs, lower-left first.
func (b BoundingBox) Pair() [2]LatLng {
	return [2]LatLng{b.LowerLeft.Pair(), b.UpperRight.Pair()}
}

// Rect converts the bounding box into an s2.Rect.
func (b BoundingBox) Rect() s2.Rect {
	return s2.RectFromLatLng(b.LowerLeft.S2()).AddPoint(b.UpperRight.S2())
}

// Contains reports whether c lies within the box, edges included.
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Lat >= b.LowerLeft.Lat && c.Lat <= b.UpperRight.Lat &&
		c.Lng >= b.LowerLeft.Lng && c.Lng <= b.UpperRight.Lng
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Coordinate {
	return Coordinate{
		Lat: (b.LowerLeft.Lat + b.UpperRight.Lat) / 2,
		Lng: (b.LowerLeft.Lng + b.UpperRight.Lng) / 2,
	}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%v, %v]", b.LowerLeft, b.UpperRight)
}

// ToBoundingBox returns the corners of the cell named by locator. The lower-left
// corner equals ToCoordinate(locator), the upper-right one is one subsquare
// (5' longitude, 2.5' latitude) further.
func ToBoundingBox(locator string) (BoundingBox, error) {
	lngUnit, latUnit, err := decodeUnits(locator)
	if err != nil {
		return BoundingBox{}, err
	}
	return cellBounds(levelSubsquare, lngUnit, latUnit), nil
}

// Center returns the centroid of the cell named by locator.
func Center(locator string) (Coordinate, error) {
	box, err := ToBoundingBox(locator)
	if err != nil {
		return Coordinate{}, err
	}
	return box.Center(), nil
}

// level is the depth of a cell in the locator hierarchy.
type level int

const (
	levelGlobe level = iota
	levelField
	levelSquare
	levelSubsquare
)

// cellBounds returns the bounds of the cell at the given level which contains
// the subsquare (lngUnit, latUnit).
func cellBounds(l level, lngUnit, latUnit int) BoundingBox {
	lo := Coordinate{
		Lat: latAxis.levelCorner(l, latUnit),
		Lng: lngAxis.levelCorner(l, lngUnit),
	}
	hi := Coordinate{
		Lat: lo.Lat + latAxis.levelSize(l),
		Lng: lo.Lng + lngAxis.levelSize(l),
	}
	return BoundingBox{LowerLeft: lo, UpperRight: hi}
}

func (a axis) levelCorner(l level, unit int) float64 {
	switch l {
	case levelGlobe:
		return a.origin
	case levelField:
		return a.corner(unit/unitsPerField, 0, 0)
	case levelSquare:
		return a.corner(unit/unitsPerField, unit/subsquaresPerSquare%squaresPerField, 0)
	}
	return a.unitCorner(unit)
}

func (a axis) levelSize(l level) float64 {
	switch l {
	case levelGlobe:
		return a.fieldSize * fieldCount
	case levelField:
		return a.fieldSize
	case levelSquare:
		return a.squareSize
	}
	return a.subsquareSize()
}
