package sanitizer

// Numeric represents numeric types that support ordered comparison.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp constrains a numeric value to be within the specified range [min, max].
// If the value is less than min, it returns min. If greater than max, it returns max.
// Callers must ensure min <= max; the result for an inverted range follows the
// comparison order above and is not otherwise defined.
func Clamp[T Numeric](value T, min T, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampMin ensures a numeric value is not less than the specified minimum.
func ClampMin[T Numeric](value T, min T) T {
	if value < min {
		return min
	}
	return value
}

// ClampMax ensures a numeric value is not greater than the specified maximum.
func ClampMax[T Numeric](value T, max T) T {
	if value > max {
		return max
	}
	return value
}
