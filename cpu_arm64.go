// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build arm64

package arith

import "golang.org/x/sys/cpu"

func detectFeatures() Features {
	// FRINT* and CLZ are part of ARMv8-A.
	f := Features{RoundToIntegral: true, LeadingZeroCount: true}
	if cpu.ARM64.HasFP {
		f.Names = append(f.Names, "fp")
	}
	if cpu.ARM64.HasASIMD {
		f.Names = append(f.Names, "asimd")
	}
	return f
}
