package go_maidenhead

import "fmt"

// indexToLetter maps 0 to 'A', 1 to 'B' and so on.
// Callers only pass indices between 0 and 23.
func indexToLetter(index int) byte {
	return byte('A' + index)
}

// letterToIndex returns the zero based alphabet position of a single letter.
// Lower case letters map to the same index as upper case ones.
func letterToIndex(letter string) (int, error) {
	if len(letter) != 1 {
		return 0, fmt.Errorf("letter %q must be exactly one character: %w", letter, ErrInvalidInput)
	}
	c := letter[0]
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), nil
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), nil
	}
	return 0, fmt.Errorf("letter %q is not alphabetic: %w", letter, ErrInvalidInput)
}
