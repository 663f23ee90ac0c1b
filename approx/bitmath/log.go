package bitmath

import "math"

// Log2 approximates log2(x) for positive, finite, normal x.
//
// Subtracting the bit pattern of 1.0 leaves the unbiased exponent in the top
// bits and the untouched mantissa below it. The top log2(N) mantissa bits
// index the correction table. The arithmetic shift keeps the exponent signed,
// so inputs below 1 give negative results and the estimate stays monotone.
func Log2(x float64, t *Table) float64 {
	u := math.Float64bits(x) - one64
	idx := (u >> t.shift) & t.mask
	e := float64(int64(u) >> mantissaBits64)

	return e + t.log2[idx]
}

// Log2f is the float32 counterpart of Log2.
func Log2f(x float32, t *Table) float32 {
	u := math.Float32bits(x) - one32
	idx := (u >> t.shiftf) & uint32(t.mask)
	e := float32(int32(u) >> mantissaBits32)

	return e + t.log2f[idx]
}

// Ln approximates the natural logarithm of x.
func Ln(x float64, t *Table) float64 {
	return Log2(x, t) * math.Ln2
}

// Lnf approximates the natural logarithm of x in single precision.
func Lnf(x float32, t *Table) float32 {
	return Log2f(x, t) * math.Ln2
}

// LnBlock writes Ln(src[i]) into dst[i]. dst and src must have the same
// length; they may alias.
func LnBlock(dst, src []float64, t *Table) {
	if len(dst) != len(src) {
		panic("bitmath: LnBlock length mismatch")
	}

	for i, x := range src {
		dst[i] = Log2(x, t) * math.Ln2
	}
}
