package bitmath

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-gamma/internal/testutil"
)

func TestLog2ExactAtSamplePoints(t *testing.T) {
	for _, s := range Sizes() {
		t.Run(s.String(), func(t *testing.T) {
			tab := For(s)
			n := float64(tab.Len())

			for _, k := range []int{-20, -3, -1, 0, 1, 5, 40} {
				for i := 0; i < tab.Len(); i++ {
					x := math.Ldexp(1+float64(i)/n, k)
					require.Equal(t, float64(k)+tab.log2[i], Log2(x, tab), "x=%v", x)

					xf := float32(x)
					require.Equal(t, float32(k)+tab.log2f[i], Log2f(xf, tab), "x=%v", xf)
				}
			}
		})
	}
}

func TestLog2ErrorBound(t *testing.T) {
	xs := testutil.DeterministicArgs(1, 1e-3, 1e6, 4096)
	xs = append(xs, testutil.Grid(0.5, 4.0, 1001)...)

	for _, s := range Sizes() {
		t.Run(s.String(), func(t *testing.T) {
			tab := For(s)
			bound := math.Log2(1 + 1/float64(tab.Len()))

			for _, x := range xs {
				d := math.Log2(x) - Log2(x, tab)
				require.GreaterOrEqual(t, d, -1e-12, "Log2(%v) overestimates", x)
				require.Less(t, d, bound+1e-12, "Log2(%v) error %v", x, d)

				df := math.Log2(x) - float64(Log2f(float32(x), tab))
				require.GreaterOrEqual(t, df, -1e-5, "Log2f(%v) overestimates", x)
				require.Less(t, df, bound+1e-5, "Log2f(%v) error %v", x, df)
			}
		})
	}
}

func TestLog2Monotone(t *testing.T) {
	xs := testutil.DeterministicArgs(2, 1e-4, 1e4, 2048)
	sort.Float64s(xs)

	for _, s := range Sizes() {
		tab := For(s)
		prev, prevf := math.Inf(-1), float32(math.Inf(-1))
		for _, x := range xs {
			got := Log2(x, tab)
			require.GreaterOrEqual(t, got, prev, "%s: Log2 decreases at %v", s, x)
			prev = got

			gotf := Log2f(float32(x), tab)
			require.GreaterOrEqual(t, gotf, prevf, "%s: Log2f decreases at %v", s, x)
			prevf = gotf
		}
	}
}

func TestLnMatchesLog2(t *testing.T) {
	tab := For(Size128)
	bound := math.Log2(1+1.0/128) * math.Ln2
	for _, x := range []float64{0.25, 1, 2.718281828, 10, 1e5} {
		require.Equal(t, Log2(x, tab)*math.Ln2, Ln(x, tab))
		require.InDelta(t, math.Log(x), Ln(x, tab), bound+1e-12)
		require.InDelta(t, math.Log(x), float64(Lnf(float32(x), tab)), bound+1e-5)
	}
}

func TestLnBlock(t *testing.T) {
	src := testutil.DeterministicArgs(3, 0.1, 500, 257)
	dst := make([]float64, len(src))

	for _, s := range Sizes() {
		tab := For(s)
		LnBlock(dst, src, tab)
		for i, x := range src {
			require.InDelta(t, Ln(x, tab), dst[i], 1e-12, "index %d", i)
		}
	}

	inPlace := append([]float64(nil), src...)
	LnBlock(inPlace, inPlace, For(Size32))
	for i, x := range src {
		require.InDelta(t, Ln(x, For(Size32)), inPlace[i], 1e-12, "index %d", i)
	}

	require.Panics(t, func() { LnBlock(make([]float64, 3), src, For(Size32)) })
}

func TestLog2InvalidInputsDoNotPanic(t *testing.T) {
	for _, s := range Sizes() {
		tab := For(s)
		for _, x := range testutil.Invalid() {
			require.NotPanics(t, func() {
				_ = Log2(x, tab)
				_ = Log2f(float32(x), tab)
				_ = Ln(x, tab)
			}, "x=%v", x)
		}
	}
}
