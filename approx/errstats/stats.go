package errstats

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Stats holds accuracy statistics of an approximation.
type Stats struct {
	Count     int     // finite samples
	NonFinite int     // samples skipped because a value was NaN or Inf
	MaxAbs    float64 // max |got - want|
	MaxAbsAt  float64 // argument of MaxAbs
	MaxRel    float64 // max |got - want| / max(|want|, floor)
	MaxRelAt  float64 // argument of MaxRel
	MeanAbs   float64
	MeanRel   float64
	RMSRel    float64
	StdRel    float64 // population standard deviation of the relative error
}

// Exceeds reports whether the worst relative error is above rel.
func (s Stats) Exceeds(rel float64) bool {
	return s.MaxRel > rel
}

// Stream accumulates error statistics incrementally.
type Stream struct {
	floor float64

	n         int
	nonFinite int

	maxAbs, maxAbsAt float64
	maxRel, maxRelAt float64

	meanAbs float64
	meanRel float64
	m2Rel   float64
	sumSq   float64
}

// NewStream creates a Stream. Relative errors use max(|want|, floor) as the
// denominator.
func NewStream(floor float64) *Stream {
	return &Stream{floor: floor}
}

// Reset clears all accumulated samples and keeps the floor.
func (s *Stream) Reset() {
	*s = Stream{floor: s.floor}
}

// Update adds one comparison at argument x.
func (s *Stream) Update(x, got, want float64) {
	if !finite(got) || !finite(want) {
		s.nonFinite++
		return
	}

	absErr := math.Abs(got - want)
	relErr := absErr / math.Max(math.Abs(want), s.floor)
	if math.IsInf(relErr, 0) || math.IsNaN(relErr) {
		// want == 0 with no floor.
		relErr = absErr
	}

	s.n++
	ni := float64(s.n)

	// Welford update for the relative error.
	delta := relErr - s.meanRel
	s.meanRel += delta / ni
	s.m2Rel += delta * (relErr - s.meanRel)

	s.meanAbs += (absErr - s.meanAbs) / ni
	s.sumSq += relErr * relErr

	if s.n == 1 || absErr > s.maxAbs {
		s.maxAbs, s.maxAbsAt = absErr, x
	}

	if s.n == 1 || relErr > s.maxRel {
		s.maxRel, s.maxRelAt = relErr, x
	}
}

// Observe adds one comparison of any float width to s.
func Observe[T constraints.Float](s *Stream, x, got, want T) {
	s.Update(float64(x), float64(got), float64(want))
}

// Result returns the statistics accumulated so far.
func (s *Stream) Result() Stats {
	if s.n == 0 {
		return Stats{NonFinite: s.nonFinite}
	}

	nf := float64(s.n)

	return Stats{
		Count:     s.n,
		NonFinite: s.nonFinite,
		MaxAbs:    s.maxAbs,
		MaxAbsAt:  s.maxAbsAt,
		MaxRel:    s.maxRel,
		MaxRelAt:  s.maxRelAt,
		MeanAbs:   s.meanAbs,
		MeanRel:   s.meanRel,
		RMSRel:    math.Sqrt(s.sumSq / nf),
		StdRel:    math.Sqrt(s.m2Rel / nf),
	}
}

// Measure evaluates f and the configured reference at every x and returns
// the accumulated statistics.
func Measure(f func(float64) float64, xs []float64, opts ...Option) Stats {
	cfg := ApplyOptions(opts...)
	s := NewStream(cfg.Floor)
	for _, x := range xs {
		s.Update(x, f(x), cfg.Reference(x))
	}
	return s.Result()
}

// Measure32 is Measure for single-precision approximations. Each x is
// rounded to float32 first and the reference is evaluated at the rounded
// argument.
func Measure32(f func(float32) float32, xs []float64, opts ...Option) Stats {
	cfg := ApplyOptions(opts...)
	s := NewStream(cfg.Floor)
	for _, x := range xs {
		xf := float32(x)
		Observe(s, xf, f(xf), float32(cfg.Reference(float64(xf))))
	}
	return s.Result()
}

// Linspace returns n evenly spaced values covering [lo, hi]. It returns nil
// for n <= 0.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}

	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi

	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
