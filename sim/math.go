package sim

import "math"

// float32 wrappers over the math package. The solver keeps exact
// IEEE semantics, so no polynomial approximations here.

func floorf(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
