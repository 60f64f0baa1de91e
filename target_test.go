// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategy_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("portable", StrategyPortable.String())
	a.Equal("native", StrategyNative.String())
	a.Equal("unknown", Strategy(42).String())
}

func TestCurrentTarget(t *testing.T) {
	a := assert.New(t)
	target := CurrentTarget()
	a.Equal(runtime.GOARCH, target.Arch)
	a.Equal(RoundingStrategy, target.Rounding)
	a.Equal(BitScanStrategy, target.BitScan)
	switch runtime.GOARCH {
	case "arm64", "ppc64", "ppc64le", "s390x":
		a.True(target.Features.RoundToIntegral)
		a.True(target.Features.LeadingZeroCount)
	case "amd64", "386":
		a.True(target.Features.LeadingZeroCount)
	}
}
