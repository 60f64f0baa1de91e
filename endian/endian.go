// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package endian converts integers between host byte order and big or
// little endian wire order. The host order is fixed by GOARCH at build
// time, so every conversion compiles to either nothing or a byte swap.
package endian

// Swap16 reverses the bytes of v.
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// Swap32 reverses the bytes of v.
func Swap32(v uint32) uint32 {
	return v<<24&0xff000000 |
		v<<8&0x00ff0000 |
		v>>8&0x0000ff00 |
		v>>24&0x000000ff
}

// Swap64 reverses the bytes of v.
func Swap64(v uint64) uint64 {
	return v<<56&0xff00000000000000 |
		v<<40&0x00ff000000000000 |
		v<<24&0x0000ff0000000000 |
		v<<8&0x000000ff00000000 |
		v>>8&0x00000000ff000000 |
		v>>24&0x0000000000ff0000 |
		v>>40&0x000000000000ff00 |
		v>>56&0x00000000000000ff
}

// HostToBig16 converts v from host to big endian order.
func HostToBig16(v uint16) uint16 {
	if BigEndianHost {
		return v
	}
	return Swap16(v)
}

// HostToBig32 converts v from host to big endian order.
func HostToBig32(v uint32) uint32 {
	if BigEndianHost {
		return v
	}
	return Swap32(v)
}

// HostToBig64 converts v from host to big endian order.
func HostToBig64(v uint64) uint64 {
	if BigEndianHost {
		return v
	}
	return Swap64(v)
}

// BigToHost16 converts v from big endian to host order.
func BigToHost16(v uint16) uint16 { return HostToBig16(v) }

// BigToHost32 converts v from big endian to host order.
func BigToHost32(v uint32) uint32 { return HostToBig32(v) }

// BigToHost64 converts v from big endian to host order.
func BigToHost64(v uint64) uint64 { return HostToBig64(v) }

// HostToLittle16 converts v from host to little endian order.
func HostToLittle16(v uint16) uint16 {
	if BigEndianHost {
		return Swap16(v)
	}
	return v
}

// HostToLittle32 converts v from host to little endian order.
func HostToLittle32(v uint32) uint32 {
	if BigEndianHost {
		return Swap32(v)
	}
	return v
}

// HostToLittle64 converts v from host to little endian order.
func HostToLittle64(v uint64) uint64 {
	if BigEndianHost {
		return Swap64(v)
	}
	return v
}

// LittleToHost16 converts v from little endian to host order.
func LittleToHost16(v uint16) uint16 { return HostToLittle16(v) }

// LittleToHost32 converts v from little endian to host order.
func LittleToHost32(v uint32) uint32 { return HostToLittle32(v) }

// LittleToHost64 converts v from little endian to host order.
func LittleToHost64(v uint64) uint64 { return HostToLittle64(v) }
