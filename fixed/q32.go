package fixed

import (
	"github.com/shopspring/decimal"

	"github.com/avdva/arith"
)

// Q32 is a signed fixed-point number stored in 32 bits.
type Q32 int32

// Q32FromInt returns s with frac fractional bits.
func Q32FromInt(s int32, frac uint) Q32 {
	return Q32(s << frac)
}

// Q32FromFloat converts f, rounding the fraction half to even.
func Q32FromFloat(f float64, frac uint) Q32 {
	integ, fraction := splitFloat(f, frac)
	return Q32(int32(integ)<<frac | int32(fraction))
}

// Q32FromDecimal converts d, rounding half to even. Values out of range wrap.
func Q32FromDecimal(d decimal.Decimal, frac uint) Q32 {
	return Q32(fromDecimal(d, frac))
}

// ParseQ32 parses a decimal string such as "-12.375".
func ParseQ32(s string, frac uint) (Q32, error) {
	v, err := parse(s, frac, 32)
	return Q32(v), err
}

// MustParseQ32 is like ParseQ32, but panics on error.
func MustParseQ32(s string, frac uint) Q32 {
	q, err := ParseQ32(s, frac)
	if err != nil {
		panic(err)
	}
	return q
}

// Int returns the integer part of q, rounded toward negative infinity.
func (q Q32) Int(frac uint) int32 {
	return int32(q) >> frac
}

// Float returns q as a float64. The result is exact.
func (q Q32) Float(frac uint) float64 {
	return toFloat(int64(q), frac)
}

// Decimal returns the exact decimal value of q.
func (q Q32) Decimal(frac uint) decimal.Decimal {
	return toDecimal(int64(q), frac)
}

// Add returns q+other.
func (q Q32) Add(other Q32) Q32 {
	return q + other
}

// Sub returns q-other.
func (q Q32) Sub(other Q32) Q32 {
	return q - other
}

// Mul returns q*other. The product is computed in 64 bits, then shifted back.
func (q Q32) Mul(other Q32, frac uint) Q32 {
	return Q32((int64(q) * int64(other)) >> frac)
}

// Div returns q/other, truncated toward zero. It panics if other is zero.
func (q Q32) Div(other Q32, frac uint) Q32 {
	return Q32((int64(q) << frac) / int64(other))
}

// Neg returns -q.
func (q Q32) Neg() Q32 {
	return -q
}

// Abs returns |q|. The absolute value of the minimum is the minimum.
func (q Q32) Abs() Q32 {
	return Q32(arith.Abs(int32(q)))
}
