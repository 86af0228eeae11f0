package go_maidenhead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Distance(t *testing.T) {
	distance, err := Distance("JO62qm", "JO62qm")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, distance)

	// Nine subsquares north along the same meridian: 9 * 2.5' = 0.375 degrees.
	distance, err = Distance("JJ00aa", "JJ00aj")
	assert.NoError(t, err)
	assert.InDelta(t, 41.698, distance, 0.01)

	reverse, err := Distance("JJ00aj", "JJ00aa")
	assert.NoError(t, err)
	assert.InDelta(t, distance, reverse, 1e-9)

	// Dresden to Berlin is roughly 165 km.
	distance, err = Distance("JO61uc", "JO62qm")
	assert.NoError(t, err)
	assert.InDelta(t, 165, distance, 15)
}

func Test_Distance_InvalidFormat(t *testing.T) {
	_, err := Distance("JO62qm", "JO62")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Distance("ZZ00aa", "JO62qm")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func Test_Bearing(t *testing.T) {
	bearing, err := Bearing("JJ00aa", "JJ00aj")
	assert.NoError(t, err)
	assert.InDelta(t, 0, bearing, 1e-9)

	bearing, err = Bearing("JJ00aj", "JJ00aa")
	assert.NoError(t, err)
	assert.InDelta(t, 180, bearing, 1e-9)

	bearing, err = Bearing("JJ00aa", "JJ00ja")
	assert.NoError(t, err)
	assert.InDelta(t, 90, bearing, 0.1)

	bearing, err = Bearing("JJ00ja", "JJ00aa")
	assert.NoError(t, err)
	assert.InDelta(t, 270, bearing, 0.1)

	_, err = Bearing("JJ00aa", "")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
