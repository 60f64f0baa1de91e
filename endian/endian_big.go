// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build !386 && !amd64 && !arm && !arm64 && !loong64 && !mips64le && !mipsle && !ppc64le && !riscv64 && !wasm

package endian

import "encoding/binary"

// BigEndianHost reports whether the host stores integers most significant byte first.
const BigEndianHost = true

// Native is the host byte order.
var Native binary.ByteOrder = binary.BigEndian
