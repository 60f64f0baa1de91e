// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/arith/internal/arithtest"
	"github.com/avdva/arith/internal/portable"
)

func TestRounding(t *testing.T) {
	arithtest.RunRounding(t, arithtest.Rounding{
		TruncF32: TruncF32,
		RoundF32: RoundF32,
		FloorF32: FloorF32,
		CeilF32:  CeilF32,
		TruncF64: TruncF64,
		RoundF64: RoundF64,
		FloorF64: FloorF64,
		CeilF64:  CeilF64,
	})
}

func TestRounding_MatchesPortable(t *testing.T) {
	a := assert.New(t)
	rng := rand.New(rand.NewSource(17))
	for _, f := range append(arithtest.BoundaryF32(), arithtest.SampleF32(rng, 50000)...) {
		if !a.Equal(portable.TruncF32(f), TruncF32(f), "trunc(%v)", f) ||
			!a.Equal(portable.RoundF32(f), RoundF32(f), "round(%v)", f) ||
			!a.Equal(portable.FloorF32(f), FloorF32(f), "floor(%v)", f) ||
			!a.Equal(portable.CeilF32(f), CeilF32(f), "ceil(%v)", f) {
			return
		}
	}
	for _, f := range append(arithtest.BoundaryF64(), arithtest.SampleF64(rng, 50000)...) {
		if !a.Equal(portable.TruncF64(f), TruncF64(f), "trunc(%v)", f) ||
			!a.Equal(portable.RoundF64(f), RoundF64(f), "round(%v)", f) ||
			!a.Equal(portable.FloorF64(f), FloorF64(f), "floor(%v)", f) ||
			!a.Equal(portable.CeilF64(f), CeilF64(f), "ceil(%v)", f) {
			return
		}
	}
}

func BenchmarkFloorF32(b *testing.B) {
	var dummy int32
	for i := 0; i < b.N; i++ {
		dummy += FloorF32(float32(i) * 0.37)
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkRoundF64(b *testing.B) {
	var dummy int64
	for i := 0; i < b.N; i++ {
		dummy += RoundF64(float64(i) * 0.37)
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}
