// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build !386 && !amd64 && !arm64 && !ppc64 && !ppc64le && !s390x

package arith

func detectFeatures() Features {
	return Features{}
}
