// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolation(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		t, a, b, lerp float32
	}{
		{0, 2, 10, 2},
		{1, 2, 10, 10},
		{0.5, 2, 10, 6},
		{0.25, -4, 4, -2},
		{2, 0, 1, 2},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.lerp, Lerp(test.t, test.a, test.b))
			a.Equal(test.t, Unlerp(test.lerp, test.a, test.b))
		})
	}
}

func TestSmoothstep(t *testing.T) {
	a := assert.New(t)
	a.Equal(float32(0), Smoothstep(0))
	a.Equal(float32(1), Smoothstep(1))
	a.Equal(float32(0.5), Smoothstep(0.5))
	a.InDelta(0.15625, Smoothstep(0.25), 1e-7)
	a.Equal(float32(9), Sqr(-3))
}

func TestConstants(t *testing.T) {
	a := assert.New(t)
	a.InDelta(1, Pi*OneOverPi, 1e-6)
	a.InDelta(1, HalfPi*TwoOverPi, 1e-6)
	a.InDelta(2, RootTwo*RootTwo, 1e-6)
	a.InDelta(180, Pi*RadToDeg, 1e-4)
	a.InDelta(Pi, 180*DegToRad, 1e-6)
	a.Equal(TwoPi, 4*HalfPi)
	a.Equal(MaxPosFloat, -MinNegFloat)
}
