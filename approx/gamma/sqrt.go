//go:build !fastmath

package gamma

import (
	"math"

	"github.com/chewxy/math32"
)

// sqrt computes the square-root term using standard library math.
func sqrt(x float64) float64 {
	return math.Sqrt(x)
}

// sqrtf computes the square-root term in single precision.
func sqrtf(x float32) float32 {
	return math32.Sqrt(x)
}
