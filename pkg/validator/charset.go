package validator

import "unicode"

// ContainsOnlyAllowedChars reports whether every rune of text appears in
// allowedChars. An empty text is vacuously valid. The allowed set is
// indexed once, so the scan is linear in len(text)+len(allowedChars).
func ContainsOnlyAllowedChars(text string, allowedChars string) bool {
	if text == "" {
		return true
	}

	allowed := make(map[rune]bool, len(allowedChars))
	for _, char := range allowedChars {
		allowed[char] = true
	}

	for _, char := range text {
		if !allowed[char] {
			return false
		}
	}
	return true
}

// ContainsUppercase reports whether value contains at least one uppercase letter.
func ContainsUppercase(value string) bool {
	for _, char := range value {
		if unicode.IsUpper(char) {
			return true
		}
	}
	return false
}

// ContainsLowercase reports whether value contains at least one lowercase letter.
func ContainsLowercase(value string) bool {
	for _, char := range value {
		if unicode.IsLower(char) {
			return true
		}
	}
	return false
}

// ContainsDigit reports whether value contains at least one decimal digit.
func ContainsDigit(value string) bool {
	for _, char := range value {
		if unicode.IsDigit(char) {
			return true
		}
	}
	return false
}
