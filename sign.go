// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/avdva/arith/internal/bitmask"
)

const signBit32 = 1 << 31

// Abs returns |a|. Abs of the minimum value is the minimum value.
func Abs[T constraints.Signed](a T) T {
	m := bitmask.Sign(a)
	return (a ^ m) - m
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](a T) T {
	// the second term is the logical top bit of -a: 1 for a > 0.
	return bitmask.Sign(a) | T(uint64(-a)>>(bitmask.Width[T]()-1)&1)
}

// TransferSign returns |a| with the sign of b, or 0 when b == 0.
func TransferSign[T constraints.Signed](a, b T) T {
	return Abs(a) * Sign(b)
}

// AbsF32 clears the sign bit of a.
func AbsF32(a float32) float32 {
	return math.Float32frombits(math.Float32bits(a) &^ signBit32)
}

// SignF32 returns -1, 0 or 1. Both zeros map to +0.
func SignF32(a float32) float32 {
	return SelectF32(a, SelectF32(-AbsF32(a), 0, 1), -1)
}

// TransferSignF32 returns |a| with the sign of b, or 0 when b == 0.
func TransferSignF32(a, b float32) float32 {
	return AbsF32(a) * SignF32(b)
}

// SignFlip maps the bits of a float32 held in an int32 to an integer with
// the same ordering as the float: negative values get all bits flipped,
// others get only the sign bit flipped.
func SignFlip(a int32) int32 {
	u := uint32(a)
	return int32(u ^ (-(u >> 31) | signBit32))
}

// InvSignFlip reverses SignFlip.
func InvSignFlip(a int32) int32 {
	u := uint32(a)
	return int32(u ^ ((u>>31 - 1) | signBit32))
}

// SignFlip64 is SignFlip for float64 bit patterns.
func SignFlip64(a int64) int64 {
	u := uint64(a)
	return int64(u ^ (-(u >> 63) | 1<<63))
}

// InvSignFlip64 reverses SignFlip64.
func InvSignFlip64(a int64) int64 {
	u := uint64(a)
	return int64(u ^ ((u>>63 - 1) | 1<<63))
}
