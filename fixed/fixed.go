// Package fixed implements binary fixed-point numbers stored in 16, 32 and 64-bit integers.
//
// A value q with frac fractional bits represents q / 2^frac. The number of
// fractional bits is not stored: every operation that depends on it takes it
// as an argument, and callers keep it consistent. frac must be less than the
// storage width minus one. Arithmetic wraps on overflow like the underlying
// integers; division by zero panics.
package fixed

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/avdva/arith"
)

// ErrRange is returned by the Parse functions when the value does not fit the storage type.
var ErrRange = fmt.Errorf("value out of range")

// splitFloat splits f into floor(f) and the fraction scaled by 2^frac and
// rounded half to even. A fraction that rounds up to 2^frac is carried into
// the integer part, so the fraction is always in [0, 2^frac).
func splitFloat(f float64, frac uint) (integ, fraction int64) {
	integ = arith.FloorF64(f)
	one := int64(1) << frac
	fraction = arith.RoundF64((f - float64(integ)) * float64(one))
	return integ + fraction>>frac, fraction & (one - 1)
}

// toFloat returns q / 2^frac.
func toFloat(q int64, frac uint) float64 {
	mask := int64(1)<<frac - 1
	return float64(q>>frac) + float64(q&mask)/float64(mask+1)
}

// toDecimal returns q / 2^frac exactly, as q * 5^frac / 10^frac.
func toDecimal(q int64, frac uint) decimal.Decimal {
	m := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(frac)), nil)
	m.Mul(m, big.NewInt(q))
	return decimal.NewFromBigInt(m, -int32(frac))
}

// scaleDecimal returns d * 2^frac rounded half to even.
func scaleDecimal(d decimal.Decimal, frac uint) *big.Int {
	scale := decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), frac), 0)
	return d.Mul(scale).RoundBank(0).BigInt()
}

// low64 returns the low 64 bits of v in two's complement.
func low64(v *big.Int) int64 {
	u := new(big.Int).And(v, maxUint64)
	return int64(u.Uint64())
}

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

func fromDecimal(d decimal.Decimal, frac uint) int64 {
	return low64(scaleDecimal(d, frac))
}

func parse(s string, frac, width uint) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	v := scaleDecimal(d, frac)
	limit := new(big.Int).Lsh(big.NewInt(1), width-1)
	if v.Cmp(limit) >= 0 || v.Cmp(limit.Neg(limit)) < 0 {
		return 0, ErrRange
	}
	return v.Int64(), nil
}
