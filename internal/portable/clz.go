// Copyright 2020 Aleksandr Demakin. All rights reserved.

package portable

import "github.com/avdva/arith/internal/bitmask"

// LeadingZeros32 counts the leading zero bits of x, returning 32 for x == 0.
// It is a branchless binary search: each step shifts x left by k when its
// top k bits are all zero.
func LeadingZeros32(x uint32) uint32 {
	var n uint32
	s := ^bitmask.NonZero(x>>16) & 16
	n, x = n+s, x<<s
	s = ^bitmask.NonZero(x>>24) & 8
	n, x = n+s, x<<s
	s = ^bitmask.NonZero(x>>28) & 4
	n, x = n+s, x<<s
	s = ^bitmask.NonZero(x>>30) & 2
	n, x = n+s, x<<s
	s = ^bitmask.NonZero(x>>31) & 1
	n, x = n+s, x<<s
	// the top bit is set now unless x was zero.
	return n + (^x >> 31)
}

// LeadingZeros64 counts the leading zero bits of x, returning 64 for x == 0.
func LeadingZeros64(x uint64) uint64 {
	var n uint64
	s := ^bitmask.NonZero(x>>32) & 32
	n, x = n+s, x<<s
	s = ^bitmask.NonZero(x>>48) & 16
	n, x = n+s, x<<s
	s = ^bitmask.NonZero(x>>56) & 8
	n, x = n+s, x<<s
	s = ^bitmask.NonZero(x>>60) & 4
	n, x = n+s, x<<s
	s = ^bitmask.NonZero(x>>62) & 2
	n, x = n+s, x<<s
	s = ^bitmask.NonZero(x>>63) & 1
	n, x = n+s, x<<s
	return n + (^x >> 63)
}
