// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build s390x

package arith

import "golang.org/x/sys/cpu"

func detectFeatures() Features {
	f := Features{RoundToIntegral: true, LeadingZeroCount: true}
	if cpu.S390X.HasVX {
		f.Names = append(f.Names, "vx")
	}
	return f
}
