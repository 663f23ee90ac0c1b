package gamma

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gamma/approx/bitmath"
)

// GammaBlock writes Gamma(src[i]) into dst[i]. dst and src must have the
// same length; they may alias.
func GammaBlock(dst, src []float64) {
	gammaBlock(dst, src, defaultTable)
}

// LogGammaBlock writes LogGamma(src[i]) into dst[i]. dst and src must have
// the same length and must not overlap.
func LogGammaBlock(dst, src []float64) {
	logGammaBlock(dst, src, defaultTable)
}

// GammaBlock writes a.Gamma(src[i]) into dst[i].
func (a Approximator) GammaBlock(dst, src []float64) {
	gammaBlock(dst, src, a.tab)
}

// LogGammaBlock writes a.LogGamma(src[i]) into dst[i].
func (a Approximator) LogGammaBlock(dst, src []float64) {
	logGammaBlock(dst, src, a.tab)
}

func gammaBlock(dst, src []float64, t *bitmath.Table) {
	if len(dst) != len(src) {
		panic("gamma: GammaBlock length mismatch")
	}

	for i, x := range src {
		dst[i] = gamma(x, t)
	}
}

// logGammaBlock computes the per-element factor ln(x) - offset first and
// multiplies by x in one vector pass.
func logGammaBlock(dst, src []float64, t *bitmath.Table) {
	if len(dst) != len(src) {
		panic("gamma: LogGammaBlock length mismatch")
	}

	off := t.LogGammaOffset()
	for i, x := range src {
		dst[i] = bitmath.Log2(x, t)*math.Ln2 - off
	}

	vecmath.MulBlockInPlace(dst, src)
}
