// Copyright 2020 Aleksandr Demakin. All rights reserved.

package portable

import (
	"math"

	"github.com/avdva/arith/internal/bitmask"
)

const (
	signBit32 = 1 << 31
	signBit64 = 1 << 63

	mantBits32 = 23
	mantBits64 = 52
	bias32     = 127
	bias64     = 1023

	// 2^23 and 2^52: adding them to a smaller non-negative value leaves no
	// fractional mantissa bits, so the FPU rounds to an integer.
	magic32 = 1 << mantBits32
	magic64 = 1 << mantBits64
)

var (
	magic32Bits   = math.Float32bits(magic32)
	magic64Bits   = math.Float64bits(magic64)
	quarter32Bits = math.Float32bits(0.25)
	quarter64Bits = math.Float64bits(0.25)
)

// TruncBitsF32 rounds a toward zero by clearing its fractional mantissa bits.
func TruncBitsF32(a float32) float32 {
	u := math.Float32bits(a)
	e := int32(u>>mantBits32&0xff) - bias32
	frac := uint32(1)<<uint32(mantBits32-e) - 1
	// |a| < 1 keeps only the sign; e >= 23 is integral already.
	mask := bitmask.Blend(uint32(bitmask.Less(e, 0)), ^uint32(signBit32),
		bitmask.Blend(uint32(bitmask.Less(e, mantBits32)), frac, 0))
	return math.Float32frombits(u &^ mask)
}

// TruncBitsF64 rounds a toward zero by clearing its fractional mantissa bits.
func TruncBitsF64(a float64) float64 {
	u := math.Float64bits(a)
	e := int64(u>>mantBits64&0x7ff) - bias64
	frac := uint64(1)<<uint64(mantBits64-e) - 1
	mask := bitmask.Blend(uint64(bitmask.Less(e, 0)), ^uint64(signBit64),
		bitmask.Blend(uint64(bitmask.Less(e, mantBits64)), frac, 0))
	return math.Float64frombits(u &^ mask)
}

// RoundEvenF32 rounds a to the nearest integer, ties to even.
func RoundEvenF32(a float32) float32 {
	u := math.Float32bits(a)
	abs := math.Float32frombits(u &^ signBit32)
	r := float32(float32(abs+magic32) - magic32)
	r = math.Float32frombits(math.Float32bits(r) | u&signBit32)
	// |a| >= 2^23 has no fraction; NaN and Inf also pass through.
	return math.Float32frombits(bitmask.Blend(bitmask.Less(u&^signBit32, magic32Bits), math.Float32bits(r), u))
}

// RoundEvenF64 rounds a to the nearest integer, ties to even.
func RoundEvenF64(a float64) float64 {
	u := math.Float64bits(a)
	abs := math.Float64frombits(u &^ signBit64)
	r := float64(float64(abs+magic64) - magic64)
	r = math.Float64frombits(math.Float64bits(r) | u&signBit64)
	return math.Float64frombits(bitmask.Blend(bitmask.Less(u&^signBit64, magic64Bits), math.Float64bits(r), u))
}

// liftF32 raises a nonzero |a| below 0.25 to 0.25, keeping the sign.
// Floor and ceiling do not change, and 2a-0.5 no longer absorbs a.
func liftF32(a float32) float32 {
	u := math.Float32bits(a)
	abs := u &^ signBit32
	small := bitmask.Less(abs, quarter32Bits) & bitmask.NonZero(abs)
	return math.Float32frombits(bitmask.Blend(small, quarter32Bits|u&signBit32, u))
}

// liftF64 is liftF32 for float64.
func liftF64(a float64) float64 {
	u := math.Float64bits(a)
	abs := u &^ signBit64
	small := bitmask.Less(abs, quarter64Bits) & bitmask.NonZero(abs)
	return math.Float64frombits(bitmask.Blend(small, quarter64Bits|u&signBit64, u))
}

// TruncF32 converts a to int32 rounding toward zero.
// The fraction is cleared in the bits; the final step is the language conversion.
func TruncF32(a float32) int32 {
	return int32(TruncBitsF32(a))
}

// RoundF32 converts a to the nearest int32, ties to even.
// The value is rounded in the bits; the final step is the language conversion.
func RoundF32(a float32) int32 {
	return int32(RoundEvenF32(a))
}

// FloorF32 returns the largest integer not greater than a, for a in [-2^31, 2^31).
// It uses floor(a) = round(2a - 0.5) >> 1, with the doubled value rounded into
// an int64. Small magnitudes are lifted first, see liftF32.
func FloorF32(a float32) int32 {
	a = liftF32(a)
	d := float32(float32(a+a) - 0.5)
	return int32(int64(RoundEvenF32(d)) >> 1)
}

// CeilF32 returns the smallest integer not less than a,
// as ceil(a) = -(round(-2a - 0.5) >> 1).
func CeilF32(a float32) int32 {
	a = liftF32(a)
	d := float32(-0.5 - float32(a+a))
	return int32(-(int64(RoundEvenF32(d)) >> 1))
}

// TruncF64 converts a to int64 rounding toward zero.
// The final step is the language conversion, as in TruncF32.
func TruncF64(a float64) int64 {
	return int64(TruncBitsF64(a))
}

// RoundF64 converts a to the nearest int64, ties to even.
// The final step is the language conversion, as in RoundF32.
func RoundF64(a float64) int64 {
	return int64(RoundEvenF64(a))
}

// FloorF64 returns the largest integer not greater than a, for |a| < 2^62.
func FloorF64(a float64) int64 {
	a = liftF64(a)
	d := float64(float64(a+a) - 0.5)
	return int64(RoundEvenF64(d)) >> 1
}

// CeilF64 returns the smallest integer not less than a, for |a| < 2^62.
func CeilF64(a float64) int64 {
	a = liftF64(a)
	d := float64(-0.5 - float64(a+a))
	return -(int64(RoundEvenF64(d)) >> 1)
}
