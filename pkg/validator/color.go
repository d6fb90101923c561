package validator

import "regexp"

// Go's regexp anchors ^ and $ to the whole input by default, so this is
// a true full match with no trailing-newline bypass.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// IsValidHexColor reports whether color is a hexadecimal color code:
// a # followed by exactly 3 or 6 hex digits.
func IsValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}
