package errstats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const tolerance = 1e-12

func sq(x float64) float64 { return x * x }

func TestStreamEmpty(t *testing.T) {
	require.Equal(t, Stats{}, NewStream(0).Result())
}

func TestStreamBasic(t *testing.T) {
	s := NewStream(0)
	s.Update(1, 11, 10)  // rel 0.1
	s.Update(2, 19, 20)  // rel 0.05
	s.Update(3, 100, 80) // rel 0.25, abs 20
	r := s.Result()

	require.Equal(t, 3, r.Count)
	require.InDelta(t, 0.25, r.MaxRel, tolerance)
	require.Equal(t, 3.0, r.MaxRelAt)
	require.InDelta(t, 20, r.MaxAbs, tolerance)
	require.Equal(t, 3.0, r.MaxAbsAt)
	require.InDelta(t, 0.4/3, r.MeanRel, tolerance)
	require.InDelta(t, 22.0/3, r.MeanAbs, tolerance)
	require.InDelta(t, math.Sqrt((0.01+0.0025+0.0625)/3), r.RMSRel, tolerance)

	mean := 0.4 / 3
	wantStd := math.Sqrt((sq(0.1-mean) + sq(0.05-mean) + sq(0.25-mean)) / 3)
	require.InDelta(t, wantStd, r.StdRel, tolerance)

	require.True(t, r.Exceeds(0.2))
	require.False(t, r.Exceeds(0.25))
}

func TestStreamNonFinite(t *testing.T) {
	s := NewStream(0)
	s.Update(1, math.NaN(), 1)
	s.Update(2, 1, math.Inf(1))
	s.Update(3, 2, 2)
	r := s.Result()

	require.Equal(t, 1, r.Count)
	require.Equal(t, 2, r.NonFinite)
	require.Zero(t, r.MaxRel)
}

func TestStreamFloor(t *testing.T) {
	s := NewStream(1)
	s.Update(2, 0.5, 0) // lnΓ(2) = 0: relative to the floor
	require.InDelta(t, 0.5, s.Result().MaxRel, tolerance)

	// Without a floor a zero reference falls back to the absolute error.
	s = NewStream(0)
	s.Update(2, 0.5, 0)
	require.InDelta(t, 0.5, s.Result().MaxRel, tolerance)
}

func TestStreamReset(t *testing.T) {
	s := NewStream(0.5)
	s.Update(1, 2, 1)
	s.Reset()

	r := s.Result()
	require.Zero(t, r.Count)
	require.Zero(t, r.MaxRel)
	require.Equal(t, 0.5, s.floor, "Reset dropped floor")
}

func TestObserveFloat32(t *testing.T) {
	s := NewStream(0)
	Observe(s, float32(3), float32(1.5), float32(2))
	require.InDelta(t, 0.25, s.Result().MaxRel, tolerance)
}

func TestMeasureDefaultsToGamma(t *testing.T) {
	xs := Linspace(2, 20, 100)
	r := Measure(math.Gamma, xs)
	require.Equal(t, 100, r.Count)
	require.Zero(t, r.MaxRel)

	r = Measure(func(x float64) float64 { return 1.01 * math.Gamma(x) }, xs)
	require.InDelta(t, 0.01, r.MaxRel, 1e-12)
}

func TestMeasureWithReference(t *testing.T) {
	xs := Linspace(0.5, 3, 51)
	r := Measure(LogGammaReference, xs, WithReference(LogGammaReference), WithFloor(1))
	require.Zero(t, r.MaxAbs)

	r = Measure(func(float64) float64 { return 0 }, xs, WithReference(LogGammaReference), WithFloor(1))
	require.LessOrEqual(t, r.MaxRel, 1.0)
}

func TestMeasure32(t *testing.T) {
	gamma32 := func(x float32) float32 { return float32(math.Gamma(float64(x))) }

	r := Measure32(gamma32, Linspace(2, 30, 57))
	require.Equal(t, 57, r.Count)
	require.Zero(t, r.MaxRel)

	r = Measure32(gamma32, Linspace(30, 40, 11))
	require.NotZero(t, r.NonFinite, "float32 overflow must be counted as non-finite")
}

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(nil, WithFloor(-1), WithReference(nil))
	require.Zero(t, cfg.Floor)
	require.NotNil(t, cfg.Reference)

	cfg = ApplyOptions(WithFloor(2))
	require.Equal(t, 2.0, cfg.Floor)
}

func TestLinspace(t *testing.T) {
	require.Nil(t, Linspace(0, 1, 0))
	require.Equal(t, []float64{5}, Linspace(5, 9, 1))
	require.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5), tolerance)
}
