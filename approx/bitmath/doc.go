// Package bitmath provides bit-level approximations of log2 and 2^y for
// float32 and float64 values.
//
// The logarithm reads the biased exponent straight out of the IEEE-754 bit
// pattern and refines it with a lookup table indexed by the top mantissa
// bits. The exponential does the reverse: the integer part of y is written
// into the exponent field and the fractional part is corrected by a second
// table. Neither function iterates or evaluates a series.
//
// # Accuracy Characteristics
//
//	Size        Log2 abs. error (log2 units)   Exp2 rel. error
//	Uncorrected < 1                            < 100%
//	Size32      < log2(1+1/32)  ~ 0.0444       < 2^(1/32)-1  ~ 2.2%
//	Size128     < log2(1+1/128) ~ 0.0112       < 2^(1/128)-1 ~ 0.54%
//	Size256     < log2(1+1/256) ~ 0.0056       < 2^(1/256)-1 ~ 0.27%
//
// Both tables sample the left edge of each interval, so Log2 never
// overestimates and Exp2 never overestimates. Results are exact at
// x = 2^k * (1 + i/N) and at y = k + i/N.
//
// # Preconditions
//
// Log2 expects a positive, finite, normal argument. Nothing is checked;
// other inputs produce unspecified values, never a panic. Exp2 saturates:
// y at or above the exponent range of the target width (1024 for float64,
// 128 for float32) gives +Inf, and y below the normal range gives 0.
//
// The tables are package-level array literals. They are fully initialized
// before any caller runs and are never written afterwards, so every function
// here is safe for concurrent use.
package bitmath

//go:generate go run github.com/cwbudde/algo-gamma/cmd/gentables -o tables.go
