package go_maidenhead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_indexToLetter(t *testing.T) {
	assert.Equal(t, byte('A'), indexToLetter(0))
	assert.Equal(t, byte('B'), indexToLetter(1))
	assert.Equal(t, byte('R'), indexToLetter(17))
	assert.Equal(t, byte('X'), indexToLetter(23))
}

func Test_letterToIndex(t *testing.T) {
	for i := range 26 {
		upper := string(rune('A' + i))
		lower := string(rune('a' + i))

		index, err := letterToIndex(upper)
		assert.NoError(t, err)
		assert.Equal(t, i, index)

		index, err = letterToIndex(lower)
		assert.NoError(t, err)
		assert.Equal(t, i, index)
	}
}

func Test_letterToIndex_Error(t *testing.T) {
	for _, letter := range []string{"", "AB", "1", " ", "é", "["} {
		_, err := letterToIndex(letter)
		assert.ErrorIs(t, err, ErrInvalidInput, letter)
	}
}
