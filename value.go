package go_maidenhead

type Value[T any] struct {
	key        string
	value      T
	coordinate Coordinate
	locator    string
}

func (v *Value[T]) Value() T {
	return v.value
}

func (v *Value[T]) Key() string {
	return v.key
}

// Locator returns the subsquare the value is stored in.
func (v *Value[T]) Locator() string {
	return v.locator
}

// Coordinate returns the position the value was added with.
func (v *Value[T]) Coordinate() Coordinate {
	return v.coordinate
}

func (v *Value[T]) DistanceKM(lat, lng float64) float64 {
	return distanceKM(Coordinate{Lat: lat, Lng: lng}.S2(), v.coordinate.S2())
}
