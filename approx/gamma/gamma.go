package gamma

import (
	"math"

	"github.com/cwbudde/algo-gamma/approx/bitmath"
)

// defaultTable is resolved during package initialization, before any caller
// can reach it.
var defaultTable = bitmath.For(DefaultSize)

// Gamma approximates Γ(x) for x > 1 using the build-time default table.
// The argument is not checked.
func Gamma(x float64) float64 {
	return gamma(x, defaultTable)
}

// Gamma32 approximates Γ(x) in single precision using the build-time
// default table.
func Gamma32(x float32) float32 {
	return gamma32(x, defaultTable)
}

// LogGamma approximates ln Γ(x) for x > 0 using the build-time default
// table. The argument is not checked.
func LogGamma(x float64) float64 {
	return logGamma(x, defaultTable)
}

// LogGamma32 approximates ln Γ(x) in single precision using the build-time
// default table.
func LogGamma32(x float32) float32 {
	return logGamma32(x, defaultTable)
}

// Approximator evaluates the approximations with one specific correction
// table. The zero value is not usable; create one with New. Approximators
// are immutable values and safe for concurrent use.
type Approximator struct {
	tab *bitmath.Table
}

// New returns an Approximator backed by the table for size. It panics on an
// unknown size.
func New(size bitmath.Size) Approximator {
	return Approximator{tab: bitmath.For(size)}
}

// Size reports the correction table in use.
func (a Approximator) Size() bitmath.Size {
	return a.tab.Size()
}

// Gamma approximates Γ(x) for x > 1.
func (a Approximator) Gamma(x float64) float64 {
	return gamma(x, a.tab)
}

// Gamma32 approximates Γ(x) for x > 1 in single precision.
func (a Approximator) Gamma32(x float32) float32 {
	return gamma32(x, a.tab)
}

// LogGamma approximates ln Γ(x) for x > 0.
func (a Approximator) LogGamma(x float64) float64 {
	return logGamma(x, a.tab)
}

// LogGamma32 approximates ln Γ(x) for x > 0 in single precision.
func (a Approximator) LogGamma32(x float32) float32 {
	return logGamma32(x, a.tab)
}

// gamma evaluates sqrt(2πt) * (t/e)^t with t = x-1, where the power term is
// 2^(t*log2(t/e)) built from the bit-level primitives.
func gamma(x float64, t *bitmath.Table) float64 {
	x -= 1
	p := bitmath.Exp2(x*bitmath.Log2(x*invE, t), t)
	return sqrt(twoPi*x) * p
}

func gamma32(x float32, t *bitmath.Table) float32 {
	x -= 1
	p := bitmath.Exp2f(x*bitmath.Log2f(x*invE, t), t)
	return sqrtf(twoPi*x) * p
}

// logGamma evaluates x*(ln(x) - offset). The offset is 1 with a correction
// table. The uncorrected table realigns the estimate one binade down and
// carries ln(2) instead, see bitmath.Table.LogGammaOffset.
func logGamma(x float64, t *bitmath.Table) float64 {
	return x * (bitmath.Log2(x, t)*math.Ln2 - t.LogGammaOffset())
}

func logGamma32(x float32, t *bitmath.Table) float32 {
	return x * (bitmath.Log2f(x, t)*math.Ln2 - float32(t.LogGammaOffset()))
}
