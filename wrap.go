// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"golang.org/x/exp/constraints"

	"github.com/avdva/arith/internal/bitmask"
)

// IncrementWrap returns x+1, or 0 once x reaches hi.
// It works as a ring counter over [0, hi], including hi equal to the type maximum.
func IncrementWrap[T constraints.Integer](x, hi T) T {
	return (x + 1) & bitmask.Less(x, hi)
}

// DecrementWrap returns x-1, or hi once x reaches 0.
func DecrementWrap[T constraints.Integer](x, hi T) T {
	return bitmask.Blend(bitmask.Less(0, x), x-1, hi)
}
