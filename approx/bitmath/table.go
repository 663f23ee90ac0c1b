package bitmath

import (
	"fmt"
	"math"
)

// Size selects the correction table used by the approximations.
type Size int

const (
	// Uncorrected uses the raw exponent only (error up to one binade).
	Uncorrected Size = iota
	// Size32 uses 32-entry tables.
	Size32
	// Size128 uses 128-entry tables.
	Size128
	// Size256 uses 256-entry tables.
	Size256
)

const (
	mantissaBits64 = 52
	mantissaBits32 = 23

	exponentBias64 = 1023
	exponentBias32 = 127

	one64 = 0x3ff0000000000000 // math.Float64bits(1)
	one32 = 0x3f800000         // math.Float32bits(1)
)

// String returns a short name for the size.
func (s Size) String() string {
	switch s {
	case Uncorrected:
		return "uncorrected"
	case Size32:
		return "table32"
	case Size128:
		return "table128"
	case Size256:
		return "table256"
	default:
		return fmt.Sprintf("Size(%d)", int(s))
	}
}

// Sizes lists every configuration from coarsest to finest.
func Sizes() []Size {
	return []Size{Uncorrected, Size32, Size128, Size256}
}

// ParseSize maps "uncorrected", "none", "32", "128", "256" or a String()
// value back to a Size.
func ParseSize(name string) (Size, error) {
	switch name {
	case "uncorrected", "none", "0", "1":
		return Uncorrected, nil
	case "table32", "32":
		return Size32, nil
	case "table128", "128":
		return Size128, nil
	case "table256", "256":
		return Size256, nil
	}

	return Uncorrected, fmt.Errorf("%w: %q", ErrUnknownSize, name)
}

// Table is one read-only correction configuration: the log2 and 2^f tables
// for both widths, the index shifts that pair with them and the offset used
// by log-gamma. Obtain one with For.
type Table struct {
	size   Size
	bits   uint // log2 of the entry count
	shift  uint // index shift for float64 bit patterns
	shiftf uint // index shift for float32 bit patterns
	mask   uint64

	log2  []float64
	log2f []float32
	exp2  []float64
	exp2f []float32

	lgOffset float64
}

// The uncorrected configuration is a one-entry table: the index mask is zero,
// so the lookup always adds 0 (or multiplies by 1) and no branch is needed.
var (
	log2Table1  = [1]float64{0}
	log2Table1f = [1]float32{0}
	exp2Table1  = [1]float64{1}
	exp2Table1f = [1]float32{1}
)

var tables = [...]Table{
	Uncorrected: {
		size:     Uncorrected,
		bits:     0,
		shift:    mantissaBits64,
		shiftf:   mantissaBits32,
		mask:     0,
		log2:     log2Table1[:],
		log2f:    log2Table1f[:],
		exp2:     exp2Table1[:],
		exp2f:    exp2Table1f[:],
		lgOffset: math.Ln2,
	},
	Size32: {
		size:     Size32,
		bits:     5,
		shift:    mantissaBits64 - 5,
		shiftf:   mantissaBits32 - 5,
		mask:     32 - 1,
		log2:     log2Table32[:],
		log2f:    log2Table32f[:],
		exp2:     exp2Table32[:],
		exp2f:    exp2Table32f[:],
		lgOffset: 1,
	},
	Size128: {
		size:     Size128,
		bits:     7,
		shift:    mantissaBits64 - 7,
		shiftf:   mantissaBits32 - 7,
		mask:     128 - 1,
		log2:     log2Table128[:],
		log2f:    log2Table128f[:],
		exp2:     exp2Table128[:],
		exp2f:    exp2Table128f[:],
		lgOffset: 1,
	},
	Size256: {
		size:     Size256,
		bits:     8,
		shift:    mantissaBits64 - 8,
		shiftf:   mantissaBits32 - 8,
		mask:     256 - 1,
		log2:     log2Table256[:],
		log2f:    log2Table256f[:],
		exp2:     exp2Table256[:],
		exp2f:    exp2Table256f[:],
		lgOffset: 1,
	},
}

// For returns the table for s. It panics on an unknown Size.
func For(s Size) *Table {
	if s < Uncorrected || int(s) >= len(tables) {
		panic(fmt.Sprintf("bitmath: unknown table size %d", int(s)))
	}

	return &tables[s]
}

// Size reports which configuration t is.
func (t *Table) Size() Size { return t.size }

// Len returns the number of entries (1 for Uncorrected).
func (t *Table) Len() int { return len(t.log2) }

// Log2Entry returns log2(1 + i/Len()).
func (t *Table) Log2Entry(i int) float64 { return t.log2[i] }

// Exp2Entry returns 2^(i/Len()).
func (t *Table) Exp2Entry(i int) float64 { return t.exp2[i] }

// LogGammaOffset is the constant subtracted from the natural-log estimate in
// x*(ln(x) - offset). It is 1 for corrected tables. The uncorrected estimate
// is realigned one binade down instead, so its offset is ln(2).
func (t *Table) LogGammaOffset() float64 { return t.lgOffset }
