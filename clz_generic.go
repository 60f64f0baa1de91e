// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build purego || !(386 || amd64 || arm || arm64 || mips || mipsle || mips64 || mips64le || ppc64 || ppc64le || s390x || wasm)

package arith

import "github.com/avdva/arith/internal/portable"

// BitScanStrategy is the implementation behind the leading zero counters on this build.
const BitScanStrategy = StrategyPortable

func leadingZeros32(a uint32) uint32 {
	return portable.LeadingZeros32(a)
}

func leadingZeros64(a uint64) uint64 {
	return portable.LeadingZeros64(a)
}
