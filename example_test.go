// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"fmt"
)

func ExampleSelect() {
	// branchless if x >= 0 { r = a } else { r = b }
	fmt.Println(Select(int32(5), 1, 2), Select(int32(-5), 1, 2))
	fmt.Println(SelectIfZero(uint8(0), 10, 20), SelectIfPositive(int64(0), 10, 20))
	// Output:
	// 1 2
	// 10 20
}

func ExampleFloorF32() {
	for _, f := range []float32{2.5, -2.5, 3.5, -0.25} {
		fmt.Println(f, TruncF32(f), RoundF32(f), FloorF32(f), CeilF32(f))
	}
	// Output:
	// 2.5 2 2 2 3
	// -2.5 -2 -2 -3 -2
	// 3.5 3 4 3 4
	// -0.25 0 0 -1 0
}

func ExampleCeilPowerOfTwo32() {
	for _, v := range []uint32{0, 1, 17, 64} {
		fmt.Println(v, FloorPowerOfTwo32(v), CeilPowerOfTwo32(v), IsPowerOfTwo(v))
	}
	// Output:
	// 0 0 1 false
	// 1 1 1 true
	// 17 16 32 false
	// 64 64 64 true
}

func ExampleIncrementWrap() {
	var slot uint8
	for i := 0; i < 5; i++ {
		fmt.Print(slot, " ")
		slot = IncrementWrap(slot, 2)
	}
	fmt.Println()
	// Output: 0 1 2 0 1
}
