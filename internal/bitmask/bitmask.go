// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bitmask derives all-zeros/all-ones masks from integer bit patterns.
// Every branchless selection in the module goes through these helpers.
package bitmask

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Width returns the number of bits in T.
func Width[T constraints.Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T is a signed type.
// The result is fixed per instantiation, so branching on it is not data dependent.
func IsSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}

// Sign returns all ones if the top bit of x is set, zero otherwise.
// The top bit is treated as a sign for unsigned types too.
func Sign[T constraints.Integer](x T) T {
	return T(int64(x) << (64 - Width[T]()) >> 63)
}

// NonZero returns all ones if x != 0.
func NonZero[T constraints.Integer](x T) T {
	return Sign(x | -x)
}

// Positive returns all ones if the top bit of x is clear and x != 0.
// It never negates into the sign bit, so it holds for the minimum signed value.
func Positive[T constraints.Integer](x T) T {
	return Sign(^x & -x)
}

// Less returns all ones if a < b, comparing as signed or unsigned according to T.
// The comparison never overflows.
func Less[T constraints.Integer](a, b T) T {
	d := a - b
	if IsSigned[T]() {
		return Sign(d ^ ((a ^ b) & (d ^ a)))
	}
	// borrow out of a-b
	return Sign((^a & b) | (^(a ^ b) & d))
}

// Blend returns a where mask is all ones and b where it is zero.
func Blend[T constraints.Integer](mask, a, b T) T {
	return b + ((a - b) & mask)
}
