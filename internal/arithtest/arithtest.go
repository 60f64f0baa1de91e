// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package arithtest contains property suites shared by the tests of every
// implementation strategy, so the hardware and software paths are held to
// the same contract.
package arithtest

import (
	"math"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Rounding is a set of float to integer conversions under test.
type Rounding struct {
	TruncF32, RoundF32, FloorF32, CeilF32 func(float32) int32
	TruncF64, RoundF64, FloorF64, CeilF64 func(float64) int64
}

// BitScan is a pair of leading zero counters under test.
type BitScan struct {
	LeadingZeros32 func(uint32) uint32
	LeadingZeros64 func(uint64) uint64
}

const (
	// largest float32 below 2^31
	maxF32InRange = float32(math.MaxInt32 - 127)
	f64Limit      = 1 << 62
)

// BoundaryF32 returns inputs around the places where rounding identities
// tend to break: ties, values one ulp off a tie, the 2^23 mantissa edge and
// the int32 limits.
func BoundaryF32() []float32 {
	vals := []float32{
		0, float32(math.Copysign(0, -1)), 1e-30, -1e-30, math.SmallestNonzeroFloat32,
		0.25, 0.5, 0.75, 1, 1.5, 2, 2.5, 3.5, -0.25, -0.5, -0.75, -1, -1.5, -2, -2.5, -3.5,
		1 << 22, 1<<22 + 0.5, 1<<23 - 0.5, 1 << 23, 1<<23 + 1, 1 << 24, 1<<24 + 2,
		-(1<<22 + 0.5), -(1<<23 - 0.5), -(1 << 23), -(1 << 24),
		1 << 30, -(1 << 30), maxF32InRange, -maxF32InRange, math.MinInt32,
		// 2a-0.5 absorbs a below about 2^-26
		-math.SmallestNonzeroFloat32, 1.0 / (1 << 24), -1.0 / (1 << 24),
		1.0 / (1 << 26), -1.0 / (1 << 26), 1.0 / (1 << 27), -1.0 / (1 << 27),
		0.24999999, -0.24999999, 0.2500001, -0.2500001, 1e-10, -1e-10,
	}
	for _, k := range []float32{0, 1, 2, 7, 100, 4095, -1, -2, -7, -100, -4096} {
		for _, h := range []float32{k + 0.5, k} {
			vals = append(vals, h, math.Nextafter32(h, float32(math.Inf(1))), math.Nextafter32(h, float32(math.Inf(-1))))
		}
	}
	return vals
}

// BoundaryF64 is BoundaryF32 for float64, limited to |a| < 2^62.
func BoundaryF64() []float64 {
	vals := []float64{
		0, math.Copysign(0, -1), 1e-300, -1e-300, math.SmallestNonzeroFloat64,
		0.25, 0.5, 0.75, 1, 1.5, 2, 2.5, 3.5, -0.25, -0.5, -0.75, -1, -1.5, -2, -2.5, -3.5,
		1 << 51, 1<<51 + 0.5, 1<<52 - 0.5, 1 << 52, 1<<52 + 1, 1 << 53, 1<<53 + 2,
		-(1<<51 + 0.5), -(1<<52 - 0.5), -(1 << 52), -(1 << 53),
		math.MaxInt32, math.MinInt32, 1 << 61, -(1 << 61),
		math.Nextafter(f64Limit, 0), -math.Nextafter(f64Limit, 0),
		-math.SmallestNonzeroFloat64, 1.0 / (1 << 26), -1.0 / (1 << 26), 1.0 / (1 << 27), -1.0 / (1 << 27),
		1.0 / (1 << 55), -1.0 / (1 << 55), 0.24999999999999997, -0.24999999999999997, 1e-20, -1e-20,
	}
	for _, k := range []float64{0, 1, 2, 7, 100, 1 << 40, -1, -2, -7, -100, -(1 << 40)} {
		for _, h := range []float64{k + 0.5, k} {
			vals = append(vals, h, math.Nextafter(h, math.Inf(1)), math.Nextafter(h, math.Inf(-1)))
		}
	}
	return vals
}

// SampleF32 returns n random float32 values whose floor and ceiling fit an int32.
// Half of them are random bit patterns, the rest are multiples of 0.25 near zero.
func SampleF32(rng *rand.Rand, n int) []float32 {
	vals := make([]float32, 0, n)
	for len(vals) < n/2 {
		f := math.Float32frombits(rng.Uint32())
		if math.IsNaN(float64(f)) || f < math.MinInt32 || f > maxF32InRange {
			continue
		}
		vals = append(vals, f)
	}
	for len(vals) < n {
		vals = append(vals, float32(rng.Intn(1<<14)-1<<13)/4)
	}
	return vals
}

// SampleF64 returns n random float64 values with |a| < 2^62.
func SampleF64(rng *rand.Rand, n int) []float64 {
	vals := make([]float64, 0, n)
	for len(vals) < n/2 {
		f := math.Float64frombits(rng.Uint64())
		if math.IsNaN(f) || math.Abs(f) >= f64Limit {
			continue
		}
		vals = append(vals, f)
	}
	for len(vals) < n {
		vals = append(vals, float64(rng.Intn(1<<20)-1<<19)/4)
	}
	return vals
}

// RunRounding checks r against the math package on boundary and random inputs.
func RunRounding(t *testing.T, r Rounding) {
	rng := rand.New(rand.NewSource(42))
	t.Run("f32", func(t *testing.T) {
		a := assert.New(t)
		// fixed points of the floor/ceil identities
		a.Equal(int32(2), r.FloorF32(2.0))
		a.Equal(int32(2), r.CeilF32(2.0))
		a.Equal(int32(-3), r.FloorF32(-2.5))
		a.Equal(int32(-2), r.CeilF32(-2.5))
		a.Equal(int32(2), r.RoundF32(2.5))
		a.Equal(int32(-2), r.RoundF32(-2.5))
		a.Equal(int32(-2), r.TruncF32(-2.5))
		// tiny magnitudes still round away from zero on the open side
		a.Equal(int32(-1), r.FloorF32(-1e-30))
		a.Equal(int32(1), r.CeilF32(1e-30))
		a.Equal(int32(1), r.CeilF32(math.SmallestNonzeroFloat32))
		a.Equal(int32(-1), r.FloorF32(-math.SmallestNonzeroFloat32))
		a.Equal(int32(0), r.FloorF32(math.SmallestNonzeroFloat32))
		a.Equal(int32(0), r.CeilF32(-math.SmallestNonzeroFloat32))
		for _, f := range append(BoundaryF32(), SampleF32(rng, 100000)...) {
			x := float64(f)
			if !a.Equal(int32(math.Trunc(x)), r.TruncF32(f), "trunc(%v)", f) ||
				!a.Equal(int32(math.RoundToEven(x)), r.RoundF32(f), "round(%v)", f) ||
				!a.Equal(int32(math.Floor(x)), r.FloorF32(f), "floor(%v)", f) ||
				!a.Equal(int32(math.Ceil(x)), r.CeilF32(f), "ceil(%v)", f) {
				return
			}
		}
	})
	t.Run("f64", func(t *testing.T) {
		a := assert.New(t)
		a.Equal(int64(2), r.FloorF64(2.0))
		a.Equal(int64(2), r.CeilF64(2.0))
		a.Equal(int64(-3), r.FloorF64(-2.5))
		a.Equal(int64(-2), r.CeilF64(-2.5))
		a.Equal(int64(4), r.RoundF64(3.5))
		a.Equal(int64(-4), r.RoundF64(-3.5))
		a.Equal(int64(-1), r.FloorF64(-1e-300))
		a.Equal(int64(1), r.CeilF64(1e-300))
		a.Equal(int64(1), r.CeilF64(math.SmallestNonzeroFloat64))
		a.Equal(int64(-1), r.FloorF64(-math.SmallestNonzeroFloat64))
		for _, f := range append(BoundaryF64(), SampleF64(rng, 100000)...) {
			if !a.Equal(int64(math.Trunc(f)), r.TruncF64(f), "trunc(%v)", f) ||
				!a.Equal(int64(math.RoundToEven(f)), r.RoundF64(f), "round(%v)", f) ||
				!a.Equal(int64(math.Floor(f)), r.FloorF64(f), "floor(%v)", f) ||
				!a.Equal(int64(math.Ceil(f)), r.CeilF64(f), "ceil(%v)", f) {
				return
			}
		}
	})
}

// RunBitScan checks b against math/bits on every single-bit and low-mask
// pattern and on random inputs.
func RunBitScan(t *testing.T, b BitScan) {
	a := assert.New(t)
	a.Equal(uint32(32), b.LeadingZeros32(0))
	a.Equal(uint32(31), b.LeadingZeros32(1))
	a.Equal(uint32(0), b.LeadingZeros32(0x80000000))
	a.Equal(uint64(64), b.LeadingZeros64(0))
	a.Equal(uint64(63), b.LeadingZeros64(1))
	a.Equal(uint64(0), b.LeadingZeros64(1<<63))
	for i := uint(0); i < 64; i++ {
		v := uint64(1) << i
		a.Equal(uint64(63-i), b.LeadingZeros64(v), "1<<%d", i)
		a.Equal(uint64(64-i), b.LeadingZeros64(v-1), "1<<%d-1", i)
		if i < 32 {
			a.Equal(uint32(31-i), b.LeadingZeros32(uint32(v)), "1<<%d", i)
			a.Equal(uint32(32-i), b.LeadingZeros32(uint32(v-1)), "1<<%d-1", i)
		}
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100000; i++ {
		v := rng.Uint64() >> (rng.Uint32() % 64)
		if !a.Equal(uint64(bits.LeadingZeros64(v)), b.LeadingZeros64(v), "%#x", v) ||
			!a.Equal(uint32(bits.LeadingZeros32(uint32(v))), b.LeadingZeros32(uint32(v)), "%#x", uint32(v)) {
			return
		}
	}
}
