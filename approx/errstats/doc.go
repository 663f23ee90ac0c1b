// Package errstats measures the accuracy of a numeric approximation against
// a reference implementation.
//
// Stream accumulates absolute and relative errors one sample at a time using
// Welford's online algorithm, so arbitrarily long sweeps need constant
// memory. Measure and Measure32 run a whole sweep in one call.
package errstats
