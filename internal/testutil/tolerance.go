package testutil

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/constraints"
)

// RelErr returns |got-want| / |want|, or |got| when want is zero.
func RelErr[T constraints.Float](got, want T) float64 {
	g, w := float64(got), float64(want)
	if w == 0 {
		return math.Abs(g)
	}
	return math.Abs(g-w) / math.Abs(w)
}

// RequireNearlyEqual fails t if got and want differ by more than eps
// (absolute tolerance).
func RequireNearlyEqual[T constraints.Float](t *testing.T, got, want, eps T) {
	t.Helper()
	diff := math.Abs(float64(got) - float64(want))
	if diff > float64(eps) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireRelative fails t if got deviates from want by more than rel
// (relative tolerance).
func RequireRelative[T constraints.Float](t *testing.T, got, want T, rel float64) {
	t.Helper()
	if e := RelErr(got, want); e > rel || math.IsNaN(e) {
		t.Fatalf("got %v, want %v (relative error %.4g > %.4g)", got, want, e, rel)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T constraints.Float](t *testing.T, data []T) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxRelErr returns the largest relative error between got and want and the
// index where it occurs. Returns an error if the slices differ in length.
func MaxRelErr[T constraints.Float](got, want []T) (float64, int, error) {
	if len(got) != len(want) {
		return 0, -1, fmt.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	maxErr, at := 0.0, -1
	for i := range got {
		e := RelErr(got[i], want[i])
		if e > maxErr || at < 0 {
			maxErr, at = e, i
		}
	}
	return maxErr, at, nil
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T constraints.Float](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
