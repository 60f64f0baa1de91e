package fixed

import (
	"github.com/shopspring/decimal"

	"github.com/avdva/arith"
	"github.com/avdva/arith/internal/mathutil"
)

// Q64 is a signed fixed-point number stored in 64 bits.
type Q64 int64

// Q64FromInt returns s with frac fractional bits.
func Q64FromInt(s int64, frac uint) Q64 {
	return Q64(s << frac)
}

// Q64FromFloat converts f, rounding the fraction half to even.
// The integer part of f must be below 2^62 in magnitude.
func Q64FromFloat(f float64, frac uint) Q64 {
	integ, fraction := splitFloat(f, frac)
	return Q64(integ<<frac | fraction)
}

// Q64FromDecimal converts d, rounding half to even. Values out of range wrap.
func Q64FromDecimal(d decimal.Decimal, frac uint) Q64 {
	return Q64(fromDecimal(d, frac))
}

// ParseQ64 parses a decimal string such as "-12.375".
func ParseQ64(s string, frac uint) (Q64, error) {
	v, err := parse(s, frac, 64)
	return Q64(v), err
}

// MustParseQ64 is like ParseQ64, but panics on error.
func MustParseQ64(s string, frac uint) Q64 {
	q, err := ParseQ64(s, frac)
	if err != nil {
		panic(err)
	}
	return q
}

// Int returns the integer part of q, rounded toward negative infinity.
func (q Q64) Int(frac uint) int64 {
	return int64(q) >> frac
}

// Float returns q as a float64. Precision is lost beyond 53 significant bits.
func (q Q64) Float(frac uint) float64 {
	return toFloat(int64(q), frac)
}

// Decimal returns the exact decimal value of q.
func (q Q64) Decimal(frac uint) decimal.Decimal {
	return toDecimal(int64(q), frac)
}

// Add returns q+other.
func (q Q64) Add(other Q64) Q64 {
	return q + other
}

// Sub returns q-other.
func (q Q64) Sub(other Q64) Q64 {
	return q - other
}

// Mul returns q*other. The product is computed in 128 bits, then shifted back.
func (q Q64) Mul(other Q64, frac uint) Q64 {
	return Q64(mathutil.MulShr64(int64(q), int64(other), frac))
}

// Div returns q/other, truncated toward zero. The shifted dividend is 128
// bits wide. It panics if other is zero.
func (q Q64) Div(other Q64, frac uint) Q64 {
	return Q64(mathutil.ShlDiv64(int64(q), int64(other), frac))
}

// Neg returns -q.
func (q Q64) Neg() Q64 {
	return -q
}

// Abs returns |q|. The absolute value of the minimum is the minimum.
func (q Q64) Abs() Q64 {
	return Q64(arith.Abs(int64(q)))
}
