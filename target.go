// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"runtime"

	"github.com/avdva/arith/endian"
)

// Strategy identifies how an operation is implemented on the current build.
type Strategy int

const (
	// StrategyPortable is the pure software path, available everywhere.
	StrategyPortable Strategy = iota
	// StrategyNative relies on the compiler lowering to a hardware instruction.
	StrategyNative
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyPortable:
		return "portable"
	case StrategyNative:
		return "native"
	default:
		return "unknown"
	}
}

// Features lists the hardware capabilities relevant to this package.
// They are informational only: the implementation is chosen at build time.
type Features struct {
	// RoundToIntegral is set when the CPU has a float round-to-integral instruction.
	RoundToIntegral bool
	// LeadingZeroCount is set when the CPU has a leading zero count or bit scan instruction.
	LeadingZeroCount bool
	// Names holds the detected extension names, e.g. "sse4.1".
	Names []string
}

// Target describes the build and the machine the package runs on.
type Target struct {
	Arch      string
	BigEndian bool
	Rounding  Strategy
	BitScan   Strategy
	Features  Features
}

// CurrentTarget returns the description of the running target.
func CurrentTarget() Target {
	return Target{
		Arch:      runtime.GOARCH,
		BigEndian: endian.BigEndianHost,
		Rounding:  RoundingStrategy,
		BitScan:   BitScanStrategy,
		Features:  detectFeatures(),
	}
}
