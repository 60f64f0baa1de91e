// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build !purego && (386 || amd64 || arm || arm64 || mips || mipsle || mips64 || mips64le || ppc64 || ppc64le || s390x || wasm)

package arith

import "math/bits"

// BitScanStrategy is the implementation behind the leading zero counters on this build.
const BitScanStrategy = StrategyNative

// math/bits is lowered to a single instruction on these targets
// (BSR/LZCNT, CLZ, CNTLZ, FLOGR, i32.clz).

func leadingZeros32(a uint32) uint32 {
	return uint32(bits.LeadingZeros32(a))
}

func leadingZeros64(a uint64) uint64 {
	return uint64(bits.LeadingZeros64(a))
}
