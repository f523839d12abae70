package raster

import "math"

// ClampU8 clamps an int value to the uint8 range [0, 255].
func ClampU8(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// RoundHalfUp rounds to the nearest integer, ties toward +Inf.
// Every float-to-sample conversion in the engines goes through this function
// so that results are reproducible.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// RoundU8 rounds half-up, then clamps to [0, 255].
func RoundU8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(RoundHalfUp(v))
}

// ClampI16 clamps an int value to the int16 range.
func ClampI16(x int) int16 {
	if x < math.MinInt16 {
		return math.MinInt16
	}
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(x)
}
