package testutil

import (
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Grid returns n evenly spaced arguments covering [lo, hi].
func Grid[T constraints.Float](lo, hi T, n int) []T {
	out := make([]T, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / T(n-1)
	for i := range out {
		out[i] = lo + step*T(i)
	}
	out[n-1] = hi
	return out
}

// DeterministicArgs returns n uniformly distributed arguments in [lo, hi)
// drawn from a fixed seed for reproducibility.
func DeterministicArgs(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// Invalid lists arguments outside the positive finite domain, used to
// characterize (not validate) behavior on contract violations.
func Invalid() []float64 {
	return []float64{
		0, math.Copysign(0, -1), -1, -2.5, -1e300, 5e-324,
		math.NaN(), math.Inf(1), math.Inf(-1),
	}
}
