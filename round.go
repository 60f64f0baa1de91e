// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

// TruncF32 converts a to int32, rounding toward zero.
// The result is unspecified for NaN, infinities and values outside the int32 range.
func TruncF32(a float32) int32 {
	return truncF32(a)
}

// RoundF32 converts a to the nearest int32, ties to even.
func RoundF32(a float32) int32 {
	return roundF32(a)
}

// FloorF32 converts a to the largest int32 not greater than a.
func FloorF32(a float32) int32 {
	return floorF32(a)
}

// CeilF32 converts a to the smallest int32 not less than a.
func CeilF32(a float32) int32 {
	return ceilF32(a)
}

// TruncF64 converts a to int64, rounding toward zero.
// Both paths agree for |a| < 2^62; the float64 family is unspecified beyond that.
func TruncF64(a float64) int64 {
	return truncF64(a)
}

// RoundF64 converts a to the nearest int64, ties to even.
func RoundF64(a float64) int64 {
	return roundF64(a)
}

// FloorF64 converts a to the largest int64 not greater than a.
func FloorF64(a float64) int64 {
	return floorF64(a)
}

// CeilF64 converts a to the smallest int64 not less than a.
func CeilF64(a float64) int64 {
	return ceilF64(a)
}
