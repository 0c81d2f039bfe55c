package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// ClampPositive keeps f strictly above zero, replacing anything not greater
// than FloatEpsilon with FloatEpsilon.
func ClampPositive(f float32) float32 {
	if f <= FloatEpsilon {
		return FloatEpsilon
	}
	return f
}

// Bit reports whether bit n of value is set.
func Bit[T constraints.Integer](value T, n uint) bool {
	return value&(T(1)<<n) != 0
}
