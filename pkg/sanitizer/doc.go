// Package sanitizer provides generic helpers for constraining numeric
// values to a range.
//
// Unlike the boolean checks in the validator package, these functions
// return an adjusted value: Clamp restricts a value to [min, max], and
// ClampMin/ClampMax apply a single bound. All helpers are pure,
// allocation-free comparisons with no shared state, so they are safe
// for concurrent use.
//
//	limit := sanitizer.Clamp(requested, 1, 100)
package sanitizer
