// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import "math"

// Common float32 constants.
const (
	Pi        float32 = math.Pi
	TwoPi     float32 = 2 * math.Pi
	HalfPi    float32 = math.Pi / 2
	QuarterPi float32 = math.Pi / 4
	OneOverPi float32 = 1 / math.Pi
	TwoOverPi float32 = 2 / math.Pi
	RootTwo   float32 = math.Sqrt2
	RootHalf  float32 = math.Sqrt2 / 2
	DegToRad  float32 = math.Pi / 180
	RadToDeg  float32 = 180 / math.Pi
	Log2      float32 = math.Ln2
	Log10     float32 = math.Ln10

	MaxPosFloat float32 = math.MaxFloat32
	MinNegFloat float32 = -math.MaxFloat32
)
