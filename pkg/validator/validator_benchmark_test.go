package validator_test

import (
	"strings"
	"testing"

	"github.com/validkit/validkit/pkg/validator"
)

func BenchmarkIsValidPassword(b *testing.B) {
	config := validator.DefaultPasswordConfig()
	password := "StrongPass123"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = validator.IsValidPassword(password, config)
	}
}

func BenchmarkIsValidHexColor(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = validator.IsValidHexColor("#a1b2c3")
	}
}

func BenchmarkContainsOnlyAllowedChars(b *testing.B) {
	text := strings.Repeat("abcdef", 100)
	allowed := "abcdefghijklmnopqrstuvwxyz"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = validator.ContainsOnlyAllowedChars(text, allowed)
	}
}
