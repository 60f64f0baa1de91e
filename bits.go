// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/avdva/arith/internal/bitmask"
)

// LeadingZeros32 returns the number of leading zero bits in a; 32 for a == 0.
func LeadingZeros32(a uint32) uint32 {
	return leadingZeros32(a)
}

// LeadingZeros64 returns the number of leading zero bits in a; 64 for a == 0.
func LeadingZeros64(a uint64) uint64 {
	return leadingZeros64(a)
}

// TrailingZeros32 returns the number of trailing zero bits in a; 32 for a == 0.
func TrailingZeros32(a uint32) uint32 {
	return SelectIfZero(a, 32, 31-LeadingZeros32(a&-a))
}

// TrailingZeros64 returns the number of trailing zero bits in a; 64 for a == 0.
func TrailingZeros64(a uint64) uint64 {
	return SelectIfZero(a, 64, 63-LeadingZeros64(a&-a))
}

// FloorPowerOfTwo32 returns the largest power of two not greater than a, or 0 for 0.
func FloorPowerOfTwo32(a uint32) uint32 {
	return bitmask.NonZero(a) & (1 << (31 - LeadingZeros32(a)))
}

// FloorPowerOfTwo64 returns the largest power of two not greater than a, or 0 for 0.
func FloorPowerOfTwo64(a uint64) uint64 {
	return bitmask.NonZero(a) & (1 << (63 - LeadingZeros64(a)))
}

// CeilPowerOfTwo32 returns the smallest power of two not less than a.
// CeilPowerOfTwo32(0) is 1; inputs above 1<<31 wrap to 0.
func CeilPowerOfTwo32(a uint32) uint32 {
	x := a - 1
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	// a == 0 fills to all ones and wraps to 0.
	return (x + 1) | SelectIfZero(a, 1, 0)
}

// CeilPowerOfTwo64 returns the smallest power of two not less than a.
// CeilPowerOfTwo64(0) is 1; inputs above 1<<63 wrap to 0.
func CeilPowerOfTwo64(a uint64) uint64 {
	x := a - 1
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return (x + 1) | SelectIfZero(a, 1, 0)
}

// IsPowerOfTwo reports whether a has exactly one bit set. Zero is not a power of two.
func IsPowerOfTwo[T constraints.Unsigned](a T) bool {
	m := a & (a - 1)
	return m|SelectIfZero(a, 1, 0) == 0
}

// ReverseByte reverses the bit order of v.
func ReverseByte(v uint8) uint8 {
	x := uint32(v)
	return uint8(((x*0x0802&0x22110)|(x*0x8020&0x88440))*0x10101>>16)
}

// ExponentF32 returns the unbiased binary exponent of a.
// Zero, subnormals, Inf and NaN are not special cased: they give -127 or 128.
func ExponentF32(a float32) int32 {
	return int32(math.Float32bits(a)>>23&0xff) - 127
}

// ExponentF64 returns the unbiased binary exponent of a, see ExponentF32.
func ExponentF64(a float64) int64 {
	return int64(math.Float64bits(a)>>52&0x7ff) - 1023
}
