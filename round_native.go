// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build !purego && (amd64 || arm64 || ppc64 || ppc64le || s390x || wasm)

package arith

import "math"

// RoundingStrategy is the implementation behind the float to integer conversions on this build.
const RoundingStrategy = StrategyNative

// The compiler lowers math.RoundToEven, math.Floor and math.Ceil to a single
// rounding instruction on these targets (ROUNDSD, FRINT*, FRI*, FIDBR, f64.nearest).

func truncF32(a float32) int32 { return int32(a) }

func roundF32(a float32) int32 { return int32(math.RoundToEven(float64(a))) }

func floorF32(a float32) int32 { return int32(math.Floor(float64(a))) }

func ceilF32(a float32) int32 { return int32(math.Ceil(float64(a))) }

func truncF64(a float64) int64 { return int64(a) }

func roundF64(a float64) int64 { return int64(math.RoundToEven(a)) }

func floorF64(a float64) int64 { return int64(math.Floor(a)) }

func ceilF64(a float64) int64 { return int64(math.Ceil(a)) }
