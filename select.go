// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"golang.org/x/exp/constraints"

	"github.com/avdva/arith/internal/bitmask"
)

// Select returns a if x >= 0 and b otherwise.
// For unsigned types the top bit of x is treated as the sign.
func Select[T constraints.Integer](x, a, b T) T {
	return bitmask.Blend(^bitmask.Sign(x), a, b)
}

// SelectIfPositive returns a if x > 0 and b otherwise.
func SelectIfPositive[T constraints.Integer](x, a, b T) T {
	return bitmask.Blend(bitmask.Positive(x), a, b)
}

// SelectIfNegative returns a if x < 0 and b otherwise.
func SelectIfNegative[T constraints.Integer](x, a, b T) T {
	return bitmask.Blend(bitmask.Sign(x), a, b)
}

// SelectIfZero returns a if x == 0 and b otherwise.
func SelectIfZero[T constraints.Integer](x, a, b T) T {
	return bitmask.Blend(^bitmask.NonZero(x), a, b)
}

// SelectF32 returns a if x >= 0 and b otherwise. -0 selects a, NaN selects b.
// Floats have no portable sign-mask trick with these semantics, so this is a
// plain comparison; compilers usually turn it into a conditional move.
func SelectF32(x, a, b float32) float32 {
	if x >= 0 {
		return a
	}
	return b
}

// SelectF64 is SelectF32 for float64.
func SelectF64(x, a, b float64) float64 {
	if x >= 0 {
		return a
	}
	return b
}
