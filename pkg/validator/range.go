package validator

// Numeric represents numeric types that support ordered comparison.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// InRange reports whether value falls within [min, max], bounds included.
func InRange[T Numeric](value T, min T, max T) bool {
	return value >= min && value <= max
}

// InRangeExclusive reports whether value falls strictly between min and max.
// Values equal to either bound are out of range.
func InRangeExclusive[T Numeric](value T, min T, max T) bool {
	return value > min && value < max
}
