// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax_Exhaustive8(t *testing.T) {
	a := assert.New(t)
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			x, y := int8(i), int8(j)
			ux, uy := uint8(i), uint8(j)
			a.Equal(min(x, y), Min(x, y))
			a.Equal(max(x, y), Max(x, y))
			a.Equal(min(ux, uy), Min(ux, uy))
			a.Equal(max(ux, uy), Max(ux, uy))
		}
	}
}

func TestMinMax_Unsigned(t *testing.T) {
	a := assert.New(t)
	// the plain sign of a-b gives the wrong answer for these
	a.Equal(uint32(0), Min(uint32(0), math.MaxUint32))
	a.Equal(uint32(math.MaxUint32), Max(uint32(0), math.MaxUint32))
	a.Equal(uint32(1), Min(uint32(1<<31+1), 1))
	a.Equal(uint64(1<<63), Max(uint64(1<<63), 1))
	a.Equal(uint64(2), Min(uint64(math.MaxUint64), 2))
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		x, y := rng.Uint64(), rng.Uint64()
		a.Equal(min(x, y), Min(x, y))
		a.Equal(max(x, y), Max(x, y))
		a.Equal(min(uint32(x), uint32(y)), Min(uint32(x), uint32(y)))
	}
}

func TestClamp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v, lo, hi, result int32
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{math.MinInt32, -1, 1, -1},
		{math.MaxInt32, -1, 1, 1},
		{3, 3, 3, 3},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.result, Clamp(test.v, test.lo, test.hi))
			a.Equal(float32(test.result), ClampF32(float32(test.v), float32(test.lo), float32(test.hi)))
			a.Equal(float64(test.result), ClampF64(float64(test.v), float64(test.lo), float64(test.hi)))
		})
	}
	a.Equal(uint8(200), Clamp(uint8(250), 100, 200))
}

func TestMinMaxF(t *testing.T) {
	a := assert.New(t)
	a.Equal(float32(-1.5), MinF32(-1.5, 2))
	a.Equal(float32(2), MaxF32(-1.5, 2))
	a.Equal(float32(1), MinF32(1, 1))
	a.Equal(-1e300, MinF64(-1e300, 1e300))
	a.Equal(1e300, MaxF64(-1e300, 1e300))
	a.Equal(float32(0), SaturateF32(-0.25))
	a.Equal(float32(0.25), SaturateF32(0.25))
	a.Equal(float32(1), SaturateF32(7))
}

func TestAbsSign(t *testing.T) {
	a := assert.New(t)
	for i := math.MinInt8; i <= math.MaxInt8; i++ {
		x := int8(i)
		want := x
		if x < 0 {
			want = -x
		}
		a.Equal(want, Abs(x), "Abs(%d)", x)
		switch {
		case x < 0:
			a.Equal(int8(-1), Sign(x), "Sign(%d)", x)
		case x > 0:
			a.Equal(int8(1), Sign(x), "Sign(%d)", x)
		default:
			a.Equal(int8(0), Sign(x))
		}
	}
	a.Equal(int32(math.MinInt32), Abs(int32(math.MinInt32)))
	a.Equal(int64(math.MaxInt64), Abs(int64(-math.MaxInt64)))
	a.Equal(int64(-1), Sign(int64(math.MinInt64)))
	a.Equal(int64(1), Sign(int64(math.MaxInt64)))
	a.Equal(int32(-5), TransferSign(int32(5), -3))
	a.Equal(int32(5), TransferSign(int32(-5), 3))
	a.Equal(int32(0), TransferSign(int32(-5), 0))
}

func TestSignF32(t *testing.T) {
	a := assert.New(t)
	negZero := float32(math.Copysign(0, -1))
	tests := []struct {
		v, abs, sign float32
	}{
		{0, 0, 0},
		{negZero, 0, 0},
		{2.5, 2.5, 1},
		{-2.5, 2.5, -1},
		{1e-40, 1e-40, 1},
		{-1e-40, 1e-40, -1},
		{float32(math.Inf(-1)), float32(math.Inf(1)), -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.abs, AbsF32(test.v))
			a.Equal(test.sign, SignF32(test.v))
		})
	}
	// -0 maps to +0
	a.False(math.Signbit(float64(SignF32(negZero))))
	a.False(math.Signbit(float64(AbsF32(negZero))))
	a.Equal(float32(-3), TransferSignF32(3, -0.5))
	a.Equal(float32(3), TransferSignF32(-3, 8))
	a.Equal(float32(0), TransferSignF32(-3, 0))
}

func TestSignFlip(t *testing.T) {
	a := assert.New(t)
	vals := []float32{
		float32(math.Inf(-1)), -math.MaxFloat32, -1e10, -1, -1e-30, -math.SmallestNonzeroFloat32,
		0, math.SmallestNonzeroFloat32, 1e-30, 1, 1e10, math.MaxFloat32, float32(math.Inf(1)),
	}
	prev := uint32(0)
	for i, v := range vals {
		bits := int32(math.Float32bits(v))
		key := uint32(SignFlip(bits))
		if i > 0 {
			a.Greater(key, prev, "%v", v)
		}
		prev = key
		a.Equal(bits, InvSignFlip(SignFlip(bits)))
	}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10000; i++ {
		x, y := rng.Int63(), int64(rng.Uint64())
		a.Equal(x, InvSignFlip64(SignFlip64(x)))
		a.Equal(y, InvSignFlip64(SignFlip64(y)))
		f, g := math.Float64frombits(uint64(x)), math.Float64frombits(uint64(y))
		if math.IsNaN(f) || math.IsNaN(g) || f == g {
			continue
		}
		a.Equal(f < g, uint64(SignFlip64(x)) < uint64(SignFlip64(y)), "%v %v", f, g)
	}
}

func TestWrap(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint8(1), IncrementWrap(uint8(0), 3))
	a.Equal(uint8(0), IncrementWrap(uint8(3), 3))
	a.Equal(uint8(0), IncrementWrap(uint8(255), 255))
	a.Equal(uint8(255), IncrementWrap(uint8(254), 255))
	a.Equal(int32(0), IncrementWrap(int32(math.MaxInt32), math.MaxInt32))
	a.Equal(uint8(3), DecrementWrap(uint8(0), 3))
	a.Equal(uint8(2), DecrementWrap(uint8(3), 3))
	a.Equal(uint8(255), DecrementWrap(uint8(0), 255))
	a.Equal(int32(math.MaxInt32), DecrementWrap(int32(0), math.MaxInt32))

	// a full cycle visits every value once
	seen := make(map[uint16]bool)
	var x uint16
	for i := 0; i < 1000; i++ {
		seen[x] = true
		x = IncrementWrap(x, 999)
	}
	a.Len(seen, 1000)
	a.Equal(uint16(0), x)
	for i := 0; i < 1000; i++ {
		x = DecrementWrap(x, 999)
	}
	a.Equal(uint16(0), x)
}
