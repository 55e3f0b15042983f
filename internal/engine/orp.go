package engine

import "unicode/utf8"

// ORPPosition returns the Optimal Recognition Point index for a word.
// This is the character (rune) position where the eye should focus for
// fastest recognition.
func ORPPosition(word string) int {
	length := utf8.RuneCountInString(word)
	if length <= 1 {
		return 0
	} else if length <= 5 {
		return 1
	}
	return length / 3
}
