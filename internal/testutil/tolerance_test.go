package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1.0, 2.0, 3.0}, []float64{1.0, 2.1, 3.0})
	require.NoError(t, err)
	require.InDelta(t, 0.1, d, 1e-15)
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	require.Error(t, err)
}

func TestMaxAbsDiffFloat32(t *testing.T) {
	d, err := MaxAbsDiff([]float32{1, 2}, []float32{1, 2.5})
	require.NoError(t, err)
	require.Equal(t, 0.5, d)
}

func TestRelErr(t *testing.T) {
	tests := []struct {
		name      string
		got, want float64
		expected  float64
	}{
		{name: "exact", got: 24, want: 24, expected: 0},
		{name: "tenPercentLow", got: 90, want: 100, expected: 0.1},
		{name: "zeroWant", got: 0.25, want: 0, expected: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expected, RelErr(tt.got, tt.want), 1e-15)
		})
	}
}

func TestMaxRelErr(t *testing.T) {
	e, at, err := MaxRelErr([]float64{1, 2.2, 2.9}, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 1, at)
	require.InDelta(t, 0.1, e, 1e-12)

	_, _, err = MaxRelErr([]float64{1}, nil)
	require.Error(t, err)
}

func TestGrid(t *testing.T) {
	require.InDeltaSlice(t, []float64{2, 2.5, 3, 3.5, 4}, Grid(2.0, 4.0, 5), 1e-15)
	require.Equal(t, []float32{3}, Grid(float32(3), 9, 1))
}

func TestDeterministicArgs(t *testing.T) {
	a := DeterministicArgs(7, 2, 10, 64)
	require.Equal(t, a, DeterministicArgs(7, 2, 10, 64))
	for i, x := range a {
		require.GreaterOrEqual(t, x, 2.0, "index %d", i)
		require.Less(t, x, 10.0, "index %d", i)
	}
	RequireFinite(t, a)
}
