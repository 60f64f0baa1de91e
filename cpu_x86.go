// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build 386 || amd64

package arith

import "golang.org/x/sys/cpu"

func detectFeatures() Features {
	f := Features{
		RoundToIntegral: cpu.X86.HasSSE41,
		// BSR is part of the base instruction set.
		LeadingZeroCount: true,
	}
	if cpu.X86.HasSSE41 {
		f.Names = append(f.Names, "sse4.1")
	}
	if cpu.X86.HasBMI1 {
		f.Names = append(f.Names, "bmi1")
	}
	if cpu.X86.HasAVX2 {
		f.Names = append(f.Names, "avx2")
	}
	return f
}
