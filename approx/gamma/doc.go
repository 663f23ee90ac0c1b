// Package gamma provides fast approximations of the gamma function and its
// natural logarithm for float32 and float64 arguments.
//
// Two evaluators are offered for Γ(x):
//
//   - Stirling and Stirling32 apply Stirling's formula
//     sqrt(2π(x-1)) * ((x-1)/e)^(x-1) with the platform power and square
//     root.
//   - Gamma and Gamma32 evaluate the same formula without a power call: the
//     logarithm of the power term comes from a bit-level log2 estimate and
//     the power term is rebuilt with a bit-level 2^y (see package bitmath).
//
// LogGamma and LogGamma32 estimate ln Γ(x) as x*(ln(x) - 1) from a single
// bit-level logarithm of x, which is much cheaper than taking the log of Γ.
//
// None of these functions check their argument. x must be finite and
// positive (greater than 1 for the gamma evaluators, and well above 1 for
// useful accuracy). Other inputs give unspecified results, never a panic.
// Once the power term leaves the exponent range of the result width, Gamma
// and Gamma32 return +Inf; for float32 this happens between 35 and 36 with a
// correction table.
//
// # Configuration
//
// The package-level functions use the table selected at build time:
//
//	(no tag)          bitmath.Size128
//	gamma_table32     bitmath.Size32
//	gamma_table256    bitmath.Size256
//	gamma_notable     bitmath.Uncorrected (overrides the size tags)
//	fastmath          square root via algo-approx FastSqrt
//
// DefaultSize reports the selection. Every configuration is also available at
// run time through New, which is how different tables are compared side by
// side.
//
// # Accuracy Characteristics
//
// Maximum relative error of Gamma against math.Gamma (float64):
//
//	Size      [2,5]   (5,10]  (10,20]  (20,35]  (35,100]
//	Size32    13%     19%     32%      52%      94%
//	Size128   9%      7%      10%      17%      50%
//	Size256   9%      4%      6%       9%       30%
//
// Near 2 the error is dominated by Stirling's formula itself, whose relative
// error stays below 1/(12(x-1)) and shrinks as x grows. Further out the
// table granularity dominates: the log2 error is multiplied by x-1 before it
// is exponentiated, so for a fixed table the error grows with x. Both tables
// sample the left edge of each interval, so Gamma underestimates.
//
// LogGamma with a correction table stays within 0.7 of math.Lgamma on
// [2,10], 0.9 on [2,35] and 1.4 on [10,100]. Without the table the error
// grows to about 0.4x.
//
// The uncorrected configuration is a speed/accuracy trade-off for LogGamma.
// For Gamma it is only accurate to within a factor of two per unit of x-1.
package gamma
