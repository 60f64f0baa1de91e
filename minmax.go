// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"golang.org/x/exp/constraints"

	"github.com/avdva/arith/internal/bitmask"
)

// Min returns the smaller of a and b.
// Signed values are compared natively, unsigned ones through the borrow of a-b.
func Min[T constraints.Integer](a, b T) T {
	if bitmask.IsSigned[T]() {
		return min(a, b)
	}
	return bitmask.Blend(bitmask.Less(a, b), a, b)
}

// Max returns the larger of a and b.
func Max[T constraints.Integer](a, b T) T {
	if bitmask.IsSigned[T]() {
		return max(a, b)
	}
	return bitmask.Blend(bitmask.Less(a, b), b, a)
}

// Clamp limits a to [lo, hi]. The caller must ensure lo <= hi.
func Clamp[T constraints.Integer](a, lo, hi T) T {
	return Min(Max(a, lo), hi)
}

// MinF32 returns the smaller of a and b, which must be finite.
func MinF32(a, b float32) float32 {
	return SelectF32(a-b, b, a)
}

// MaxF32 returns the larger of a and b, which must be finite.
func MaxF32(a, b float32) float32 {
	return SelectF32(a-b, a, b)
}

// MinF64 returns the smaller of a and b, which must be finite.
func MinF64(a, b float64) float64 {
	return SelectF64(a-b, b, a)
}

// MaxF64 returns the larger of a and b, which must be finite.
func MaxF64(a, b float64) float64 {
	return SelectF64(a-b, a, b)
}

// ClampF32 limits a to [lo, hi].
func ClampF32(a, lo, hi float32) float32 {
	return MinF32(MaxF32(a, lo), hi)
}

// ClampF64 limits a to [lo, hi].
func ClampF64(a, lo, hi float64) float64 {
	return MinF64(MaxF64(a, lo), hi)
}

// SaturateF32 clamps a to [0, 1].
func SaturateF32(a float32) float32 {
	return ClampF32(a, 0, 1)
}
