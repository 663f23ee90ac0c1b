package gamma

import "math"

// factorials holds n! for n in [0, 34].
var factorials = [...]float64{
	1.0, 1.0, 2.0, 6.0, 24.0,
	120.0, 720.0, 5040.0, 40320.0, 362880.0,
	3628800.0, 39916800.0, 479001600.0, 6227020800.0, 87178291200.0,
	1307674368000.0, 20922789888000.0, 355687428096000.0, 6402373705728000.0, 1.21645100408832e+17,
	2.43290200817664e+18, 5.109094217170944e+19, 1.1240007277776077e+21, 2.585201673888498e+22, 6.204484017332394e+23,
	1.5511210043330986e+25, 4.0329146112660565e+26, 1.0888869450418352e+28, 3.0488834461171387e+29, 8.841761993739702e+30,
	2.6525285981219107e+32, 8.222838654177922e+33, 2.631308369336935e+35, 8.683317618811886e+36, 2.9523279903960416e+38,
}

const (
	// recurrenceLimit is where FullRange switches from upward recurrence to
	// the closed form.
	recurrenceLimit = 12

	// overflowLimit is slightly above the largest x with finite float64 Γ(x).
	overflowLimit = 171.625
)

// FullRange approximates Γ(x) over the whole real line, unlike Gamma which
// only serves x > 1 and checks nothing.
//
// Positive integers up to 35 are looked up exactly. Other positive arguments
// are shifted above 12 by the recurrence Γ(x+1) = xΓ(x) and evaluated with
// Windschitl's refinement of Stirling's formula. Negative arguments use the
// reflection formula. The result is NaN for NaN, zero and negative integers,
// and +Inf once Γ(x) overflows.
func FullRange(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x >= overflowLimit:
		return math.Inf(1)
	}

	if x <= 0 {
		x = -x
		if x == math.Trunc(x) {
			return math.NaN()
		}
		return -math.Pi / math.Sin(math.Pi*x) / FullRange(x+1)
	}

	if x == math.Trunc(x) && x <= float64(len(factorials)) {
		return factorials[int(x)-1]
	}

	if x > recurrenceLimit {
		return windschitl(x)
	}

	k := recurrenceLimit - int(x)
	y := x + float64(k)
	r := windschitl(y)
	for i := 1; i <= k; i++ {
		r /= y - float64(i)
	}

	return r
}

// FullRange32 is FullRange rounded to float32. Results beyond the float32
// range (x above about 35.04) become +Inf.
func FullRange32(x float32) float32 {
	return float32(FullRange(float64(x)))
}

// Factorial returns x! = Γ(x+1) for x >= 0 and NaN for negative x.
func Factorial(x float64) float64 {
	if x < 0 {
		return math.NaN()
	}
	return FullRange(x + 1)
}

// Factorial32 is the float32 counterpart of Factorial.
func Factorial32(x float32) float32 {
	if x < 0 {
		return float32(math.NaN())
	}
	return FullRange32(x + 1)
}

// windschitl evaluates sqrt(2π/x) * ((x + 1/(12x - 1/(10x)))/e)^x.
func windschitl(x float64) float64 {
	return math.Sqrt(twoPi/x) * math.Pow(invE*(x+1/(12*x-1/(10*x))), x)
}
