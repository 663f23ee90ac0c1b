//go:build fastmath

package gamma

import "github.com/meko-christian/algo-approx"

// sqrt computes the square-root term using fast approximation.
func sqrt(x float64) float64 {
	return approx.FastSqrt(x)
}

// sqrtf computes the square-root term using fast approximation.
// algo-approx works in double precision, so the argument is widened.
func sqrtf(x float32) float32 {
	return float32(approx.FastSqrt(float64(x)))
}
