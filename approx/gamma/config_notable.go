//go:build gamma_notable

package gamma

import "github.com/cwbudde/algo-gamma/approx/bitmath"

// DefaultSize is the correction table used by the package-level functions.
// The gamma_notable tag disables correction entirely.
const DefaultSize = bitmath.Uncorrected
