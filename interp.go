// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

// Sqr returns a*a.
func Sqr(a float32) float32 {
	return a * a
}

// Lerp interpolates linearly between a and b: t == 0 gives a, t == 1 gives b.
func Lerp(t, a, b float32) float32 {
	return a + t*(b-a)
}

// Unlerp is the inverse of Lerp: it returns the t for which Lerp(t, a, b) == v.
// a must differ from b.
func Unlerp(v, a, b float32) float32 {
	return (v - a) / (b - a)
}

// Smoothstep evaluates 3a²-2a³, the cubic Hermite curve from 0 to 1 on [0, 1].
func Smoothstep(a float32) float32 {
	return (3 - 2*a) * a * a
}
