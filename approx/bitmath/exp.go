package bitmath

import "math"

// Exponent range of normal values: 2^y is finite and normal for
// minExp <= y < maxExp.
const (
	maxExp64 = 1024
	minExp64 = -1022

	maxExp32 = 128
	minExp32 = -126
)

// Exp2 approximates 2^y.
//
// y is scaled by the table size first. Because N is a power of two the
// product is exact, and the floor of it splits cleanly: the high bits are the
// integer exponent, written straight into the exponent field, and the low
// log2(N) bits index the 2^(i/N) table. Taking the floor rather than
// truncating keeps the index in range for negative y.
//
// Results past the largest finite value are +Inf and results below the
// smallest normal value are 0, so the estimate never wraps into the sign bit.
func Exp2(y float64, t *Table) float64 {
	switch {
	case y >= maxExp64:
		return math.Inf(1)
	case y < minExp64:
		return 0
	}

	z := y * float64(uint64(1)<<t.bits)

	k := int64(z)
	if float64(k) > z {
		k--
	}

	e := k >> t.bits
	p := math.Float64frombits(uint64(e+exponentBias64) << mantissaBits64)

	return p * t.exp2[uint64(k)&t.mask]
}

// Exp2f is the float32 counterpart of Exp2.
func Exp2f(y float32, t *Table) float32 {
	switch {
	case y >= maxExp32:
		return float32(math.Inf(1))
	case y < minExp32:
		return 0
	}

	z := y * float32(int32(1)<<t.bits)

	k := int32(z)
	if float32(k) > z {
		k--
	}

	e := k >> t.bits
	p := math.Float32frombits(uint32(e+exponentBias32) << mantissaBits32)

	return p * t.exp2f[uint32(k)&uint32(t.mask)]
}
