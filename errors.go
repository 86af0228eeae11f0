package go_maidenhead

import "errors"

var (
	// ErrInvalidInput is returned for values of the wrong shape, e.g. a nil
	// coordinate, a NaN field or a letter that is not a single ASCII letter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOutOfRange is returned when a latitude or longitude is outside of its bounds.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidFormat is returned when a grid locator does not match the 6 character form.
	ErrInvalidFormat = errors.New("invalid grid locator format")
)
