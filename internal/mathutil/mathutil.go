package mathutil

import (
	"math/bits"
)

// Mul128 returns the 128-bit two's complement product x*y.
func Mul128(x, y int64) (hi, lo uint64) {
	hi, lo = bits.Mul64(uint64(x), uint64(y))
	// the unsigned product counts a negative operand as operand+2^64,
	// so take the other operand back out of the high word.
	hi -= uint64(x>>63) & uint64(y)
	hi -= uint64(y>>63) & uint64(x)
	return hi, lo
}

// MulShr64 returns the low 64 bits of (x*y) >> shift, computed on the full
// 128-bit product. shift must be less than 64.
func MulShr64(x, y int64, shift uint) int64 {
	hi, lo := Mul128(x, y)
	// hi << 64 is 0 in Go, so shift == 0 needs no special case.
	return int64(lo>>shift | hi<<(64-shift))
}

// ShlDiv64 returns the low 64 bits of (x << shift) / y, where the shifted
// dividend is 128 bits wide. The quotient is truncated toward zero.
// It panics with a runtime divide error if y == 0.
func ShlDiv64(x, y int64, shift uint) int64 {
	ux, uy := AbsUint64(x), AbsUint64(y)
	nhi, nlo := ux>>(64-shift), ux<<shift
	// dividing the high word first keeps the remainder below uy for Div64.
	rem := nhi % uy
	q, _ := bits.Div64(rem, nlo, uy)
	neg := uint64((x ^ y) >> 63)
	return int64((q ^ neg) - neg)
}

// AbsUint64 returns |val| as an unsigned value, so AbsUint64(math.MinInt64) is 1<<63.
func AbsUint64(val int64) uint64 {
	mask := val >> 63
	return uint64((val ^ mask) - mask)
}
