package validator

import "unicode/utf8"

// PasswordConfig controls which criteria IsValidPassword enforces.
type PasswordConfig struct {
	MinLength        int
	RequireNumber    bool
	RequireUppercase bool
}

// DefaultPasswordConfig returns the default policy: at least 8 characters
// with an uppercase letter and a decimal digit.
func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		MinLength:        8,
		RequireNumber:    true,
		RequireUppercase: true,
	}
}

// IsValidPassword reports whether password satisfies config. Length is
// measured in runes.
func IsValidPassword(password string, config PasswordConfig) bool {
	if utf8.RuneCountInString(password) < config.MinLength {
		return false
	}
	if config.RequireUppercase && !ContainsUppercase(password) {
		return false
	}
	if config.RequireNumber && !ContainsDigit(password) {
		return false
	}
	return true
}
