package gamma

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	twoPi = 2 * math.Pi
	invE  = 1 / math.E
)

// Stirling approximates Γ(x) with Stirling's formula using math.Pow and
// math.Sqrt. The relative error is below 1/(12(x-1)) for x >= 2.
// The argument is not checked.
func Stirling(x float64) float64 {
	x -= 1
	return math.Sqrt(twoPi*x) * math.Pow(x*invE, x)
}

// Stirling32 is the float32 counterpart of Stirling. It stays in single
// precision throughout.
func Stirling32(x float32) float32 {
	x -= 1
	return math32.Sqrt(twoPi*x) * math32.Pow(x*invE, x)
}
