package bitmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-gamma/internal/testutil"
)

func TestExp2ExactAtIntegers(t *testing.T) {
	for _, s := range Sizes() {
		tab := For(s)
		for k := -60; k <= 60; k++ {
			require.Equal(t, math.Ldexp(1, k), Exp2(float64(k), tab), "%s: k=%d", s, k)
			require.Equal(t, float32(math.Ldexp(1, k)), Exp2f(float32(k), tab), "%s: k=%d", s, k)
		}
	}
}

func TestExp2ExactAtSamplePoints(t *testing.T) {
	for _, s := range Sizes() {
		t.Run(s.String(), func(t *testing.T) {
			tab := For(s)
			n := float64(tab.Len())

			for _, k := range []int{-7, -1, 0, 3, 30} {
				for i := 0; i < tab.Len(); i++ {
					y := float64(k) + float64(i)/n
					require.Equal(t, math.Ldexp(tab.exp2[i], k), Exp2(y, tab), "y=%v", y)
					require.Equal(t, float32(math.Ldexp(float64(tab.exp2f[i]), k)), Exp2f(float32(y), tab), "y=%v", y)
				}
			}
		})
	}
}

func TestExp2NegativeFractions(t *testing.T) {
	tab := For(Size32)

	require.Equal(t, math.Sqrt2/2, Exp2(-0.5, tab))
	require.InEpsilon(t, math.Exp2(-2.75), Exp2(-2.75, tab), 1e-15)
	require.InDelta(t, 1.0, Exp2(-1e-20, tab), 0.03)
	require.InDelta(t, 1.0, float64(Exp2f(-1e-9, tab)), 0.03)
}

func TestExp2ErrorBound(t *testing.T) {
	ys := testutil.DeterministicArgs(4, -40, 40, 4096)

	for _, s := range Sizes() {
		t.Run(s.String(), func(t *testing.T) {
			tab := For(s)
			lower := 1 / math.Exp2(1/float64(tab.Len()))

			for _, y := range ys {
				ratio := Exp2(y, tab) / math.Exp2(y)
				require.LessOrEqual(t, ratio, 1+1e-12, "Exp2(%v) overestimates", y)
				require.Greater(t, ratio, lower-1e-12, "Exp2(%v) ratio %v", y, ratio)

				ratiof := float64(Exp2f(float32(y), tab)) / math.Exp2(float64(float32(y)))
				require.LessOrEqual(t, ratiof, 1+1e-6, "Exp2f(%v) overestimates", y)
				require.Greater(t, ratiof, lower-1e-6, "Exp2f(%v) ratio %v", y, ratiof)
			}
		})
	}
}

func TestExp2InvertsLog2(t *testing.T) {
	xs := testutil.DeterministicArgs(5, 0.01, 1e4, 1024)
	for _, s := range []Size{Size128, Size256} {
		tab := For(s)
		rel := 2.5 / float64(tab.Len())
		for _, x := range xs {
			testutil.RequireRelative(t, Exp2(Log2(x, tab), tab), x, rel)
		}
	}
}

func TestExp2InvalidInputsDoNotPanic(t *testing.T) {
	ys := []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e6, -1e6, 2000, -2000}
	for _, s := range Sizes() {
		tab := For(s)
		for _, y := range ys {
			require.NotPanics(t, func() {
				_ = Exp2(y, tab)
				_ = Exp2f(float32(y), tab)
			}, "y=%v", y)
		}
	}
}

func TestExp2Saturates(t *testing.T) {
	for _, s := range Sizes() {
		tab := For(s)

		for _, y := range []float64{1024, 1024.5, 1100, 2000, 1e6, math.Inf(1)} {
			require.True(t, math.IsInf(Exp2(y, tab), 1), "%s: Exp2(%v) = %v", s, y, Exp2(y, tab))
		}
		for _, y := range []float32{128, 128.5, 140, 300, 1e6} {
			got := Exp2f(y, tab)
			require.True(t, math.IsInf(float64(got), 1), "%s: Exp2f(%v) = %v", s, y, got)
		}

		for _, y := range []float64{-1022.5, -1100, -2000, math.Inf(-1)} {
			require.Zero(t, Exp2(y, tab), "%s: y=%v", s, y)
		}
		for _, y := range []float32{-126.5, -140, -300} {
			require.Zero(t, Exp2f(y, tab), "%s: y=%v", s, y)
		}

		require.Equal(t, math.Ldexp(1, -1022), Exp2(-1022, tab))
		require.Equal(t, float32(math.Ldexp(1, -126)), Exp2f(-126, tab))

		top := Exp2(1024-1.0/1024, tab)
		require.False(t, math.IsInf(top, 0), "%s: top of range overflowed", s)
		require.GreaterOrEqual(t, top, math.Ldexp(1, 1023))
		topf := Exp2f(128-1.0/1024, tab)
		require.False(t, math.IsInf(float64(topf), 0), "%s: top of float32 range overflowed", s)
		require.GreaterOrEqual(t, topf, float32(math.Ldexp(1, 127)))
	}
}

func TestExp2NonDecreasingAcrossRange(t *testing.T) {
	ys := testutil.Grid(-1100.0, 1100.0, 22001)
	for _, s := range Sizes() {
		tab := For(s)
		prev, prevf := 0.0, float32(0)
		for _, y := range ys {
			got := Exp2(y, tab)
			require.GreaterOrEqual(t, got, prev, "%s: Exp2 decreased at y=%v", s, y)
			prev = got

			gotf := Exp2f(float32(y), tab)
			require.GreaterOrEqual(t, gotf, prevf, "%s: Exp2f decreased at y=%v", s, y)
			prevf = gotf
		}
	}
}
