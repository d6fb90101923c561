// Package validator provides a small set of pure, stateless boolean
// checks over primitive inputs: password strength, hex color codes,
// numeric ranges, text length, and character-set membership.
//
// Every function is a total function from its arguments to a bool;
// there is no mutable state between calls, so all checks are safe
// for concurrent use. Optional behavior is expressed the Go way:
// defaults live in config structs with Default* constructors
// (password checks), and an inclusive/exclusive switch becomes two
// functions (InRange / InRangeExclusive).
//
//	ok := validator.IsValidPassword(input, validator.DefaultPasswordConfig())
//
// Length checks count runes, not bytes, so multi-byte characters
// count once.
package validator
