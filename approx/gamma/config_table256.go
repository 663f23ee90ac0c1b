//go:build gamma_table256 && !gamma_table32 && !gamma_notable

package gamma

import "github.com/cwbudde/algo-gamma/approx/bitmath"

// DefaultSize is the correction table used by the package-level functions.
const DefaultSize = bitmath.Size256
