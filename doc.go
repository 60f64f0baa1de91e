// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package arith implements branchless scalar arithmetic primitives:
// sign-driven selection, min/max/clamp, sign manipulation, bit scans,
// power-of-two helpers and float to integer rounding.
//
// Integer operations derive an all-zeros or all-ones mask from a sign bit
// and blend the operands with it instead of branching on the data.
// Operations that have a hardware fast path (bit scans and rounding) pick
// their implementation at build time from GOARCH; building with the purego
// tag selects the software path everywhere. Both paths return identical
// results on every input inside the documented domain.
//
// Overflow wraps in two's complement. No function in this package returns
// an error or validates its preconditions.
package arith
