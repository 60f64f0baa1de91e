// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build ppc64 || ppc64le

package arith

import "golang.org/x/sys/cpu"

func detectFeatures() Features {
	f := Features{RoundToIntegral: true, LeadingZeroCount: true}
	if cpu.PPC64.IsPOWER8 {
		f.Names = append(f.Names, "power8")
	}
	if cpu.PPC64.IsPOWER9 {
		f.Names = append(f.Names, "power9")
	}
	return f
}
