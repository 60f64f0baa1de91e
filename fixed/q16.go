package fixed

import (
	"github.com/shopspring/decimal"

	"github.com/avdva/arith"
)

// Q16 is a signed fixed-point number stored in 16 bits.
type Q16 int16

// Q16FromInt returns s with frac fractional bits.
func Q16FromInt(s int16, frac uint) Q16 {
	return Q16(s << frac)
}

// Q16FromFloat converts f, rounding the fraction half to even.
func Q16FromFloat(f float64, frac uint) Q16 {
	integ, fraction := splitFloat(f, frac)
	return Q16(int16(integ)<<frac | int16(fraction))
}

// Q16FromDecimal converts d, rounding half to even. Values out of range wrap.
func Q16FromDecimal(d decimal.Decimal, frac uint) Q16 {
	return Q16(fromDecimal(d, frac))
}

// ParseQ16 parses a decimal string such as "-12.375".
func ParseQ16(s string, frac uint) (Q16, error) {
	v, err := parse(s, frac, 16)
	return Q16(v), err
}

// MustParseQ16 is like ParseQ16, but panics on error.
func MustParseQ16(s string, frac uint) Q16 {
	q, err := ParseQ16(s, frac)
	if err != nil {
		panic(err)
	}
	return q
}

// Int returns the integer part of q, rounded toward negative infinity.
func (q Q16) Int(frac uint) int16 {
	return int16(q) >> frac
}

// Float returns q as a float64. The result is exact.
func (q Q16) Float(frac uint) float64 {
	return toFloat(int64(q), frac)
}

// Decimal returns the exact decimal value of q.
func (q Q16) Decimal(frac uint) decimal.Decimal {
	return toDecimal(int64(q), frac)
}

// Add returns q+other.
func (q Q16) Add(other Q16) Q16 {
	return q + other
}

// Sub returns q-other.
func (q Q16) Sub(other Q16) Q16 {
	return q - other
}

// Mul returns q*other. The product is computed in 32 bits, then shifted back.
func (q Q16) Mul(other Q16, frac uint) Q16 {
	return Q16((int32(q) * int32(other)) >> frac)
}

// Div returns q/other, truncated toward zero. It panics if other is zero.
func (q Q16) Div(other Q16, frac uint) Q16 {
	return Q16((int32(q) << frac) / int32(other))
}

// Neg returns -q.
func (q Q16) Neg() Q16 {
	return -q
}

// Abs returns |q|. The absolute value of the minimum is the minimum.
func (q Q16) Abs() Q16 {
	return Q16(arith.Abs(int16(q)))
}
