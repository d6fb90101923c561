package validator

import "unicode/utf8"

// ValidLength reports whether the rune count of text is at least minLength
// and, when maxLength is non-nil, at most *maxLength. A nil maxLength means
// no upper limit.
func ValidLength(text string, minLength int, maxLength *int) bool {
	length := utf8.RuneCountInString(text)
	if length < minLength {
		return false
	}
	if maxLength != nil && length > *maxLength {
		return false
	}
	return true
}
