// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build purego || !(amd64 || arm64 || ppc64 || ppc64le || s390x || wasm)

package arith

import "github.com/avdva/arith/internal/portable"

// RoundingStrategy is the implementation behind the float to integer conversions on this build.
const RoundingStrategy = StrategyPortable

func truncF32(a float32) int32 { return portable.TruncF32(a) }

func roundF32(a float32) int32 { return portable.RoundF32(a) }

func floorF32(a float32) int32 { return portable.FloorF32(a) }

func ceilF32(a float32) int32 { return portable.CeilF32(a) }

func truncF64(a float64) int64 { return portable.TruncF64(a) }

func roundF64(a float64) int64 { return portable.RoundF64(a) }

func floorF64(a float64) int64 { return portable.FloorF64(a) }

func ceilF64(a float64) int64 { return portable.CeilF64(a) }
