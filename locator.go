package go_maidenhead

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const (
	// LocatorLength is the number of characters of a field, square and subsquare locator.
	LocatorLength = 6

	fieldCount          = 18
	squaresPerField     = 10
	subsquaresPerSquare = 24
	unitsPerField       = squaresPerField * subsquaresPerSquare

	// gridUnits is the number of subsquares along one axis of the globe.
	gridUnits = fieldCount * unitsPerField
)

var locatorPattern = regexp.MustCompile(`^[A-R]{2}[0-9]{2}[A-Xa-x]{2}$`)

// axis describes how one of the two dimensions is divided into fields,
// squares and subsquares. The subsquare size is subsquareMinutes/60 degrees.
type axis struct {
	origin           float64
	fieldSize        float64
	squareSize       float64
	subsquareMinutes float64
}

var (
	lngAxis = axis{origin: MinLongitude, fieldSize: 20, squareSize: 2, subsquareMinutes: 5}
	latAxis = axis{origin: MinLatitude, fieldSize: 10, squareSize: 1, subsquareMinutes: 2.5}
)

// corner returns the lower edge of the given cell in degrees.
func (a axis) corner(field, square, subsquare int) float64 {
	return float64(field)*a.fieldSize + a.origin + float64(square)*a.squareSize + float64(subsquare)*a.subsquareMinutes/60
}

func (a axis) subsquareSize() float64 {
	return a.subsquareMinutes / 60
}

// unitCorner returns the lower edge of the unit-th subsquare counted from the origin.
func (a axis) unitCorner(unit int) float64 {
	return a.corner(unit/unitsPerField, unit/subsquaresPerSquare%squaresPerField, unit%subsquaresPerSquare)
}

// unit returns the index of the subsquare containing v. It is the floor of
// (v-origin)/size, corrected so that unitCorner(unit) <= v < unitCorner(unit+1)
// holds for the exact values the decoder produces. The upper bound of the axis
// belongs to the last subsquare.
func (a axis) unit(v float64) int {
	unit := int(math.Floor((v - a.origin) / a.subsquareSize()))
	unit = max(0, min(unit, gridUnits-1))
	for unit+1 < gridUnits && a.unitCorner(unit+1) <= v {
		unit++
	}
	for unit > 0 && a.unitCorner(unit) > v {
		unit--
	}
	return unit
}

// ValidateGridLocator reports whether locator is a 6 character Maidenhead locator:
// two field letters A-R, two square digits and two subsquare letters A-X in
// either case. It never fails, any other input is simply not valid.
func ValidateGridLocator(locator string) bool {
	if len(locator) != LocatorLength {
		return false
	}
	return locatorPattern.MatchString(locator)
}

// ToGridLocator encodes a coordinate into its 6 character locator. The subsquare
// letters are lower case. Latitudes must be within [-90, 90] and longitudes within
// [-180, 180], the bounds themselves are part of the last cell.
func ToGridLocator(coord CoordinateLike) (string, error) {
	c, err := validateCoordinate(coord)
	if err != nil {
		return "", err
	}
	return encodeCoordinate(c), nil
}

func encodeCoordinate(c Coordinate) string {
	return encodeUnits(lngAxis.unit(c.Lng), latAxis.unit(c.Lat))
}

func encodeUnits(lngUnit, latUnit int) string {
	locator := []byte{
		indexToLetter(lngUnit / unitsPerField),
		indexToLetter(latUnit / unitsPerField),
		byte('0' + lngUnit/subsquaresPerSquare%squaresPerField),
		byte('0' + latUnit/subsquaresPerSquare%squaresPerField),
		indexToLetter(lngUnit % subsquaresPerSquare),
		indexToLetter(latUnit % subsquaresPerSquare),
	}
	return string(locator[:4]) + strings.ToLower(string(locator[4:]))
}

// ToCoordinate decodes a locator into the lower-left corner of its cell.
// Use Center for the middle of the cell.
func ToCoordinate(locator string) (Coordinate, error) {
	lngUnit, latUnit, err := decodeUnits(locator)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{Lat: latAxis.unitCorner(latUnit), Lng: lngAxis.unitCorner(lngUnit)}, nil
}

// decodeUnits returns the subsquare indices along both axes.
func decodeUnits(locator string) (lngUnit int, latUnit int, err error) {
	if !ValidateGridLocator(locator) {
		return 0, 0, fmt.Errorf("grid locator %q: %w", locator, ErrInvalidFormat)
	}
	var idx [4]int
	for i, pos := range []int{0, 1, 4, 5} {
		idx[i], err = letterToIndex(locator[pos : pos+1])
		if err != nil {
			return 0, 0, err
		}
	}
	lngSquare := int(locator[2] - '0')
	latSquare := int(locator[3] - '0')
	lngUnit = idx[0]*unitsPerField + lngSquare*subsquaresPerSquare + idx[2]
	latUnit = idx[1]*unitsPerField + latSquare*subsquaresPerSquare + idx[3]
	return lngUnit, latUnit, nil
}
