package errstats

import "math"

// Config controls how Measure compares an approximation with its reference.
type Config struct {
	// Reference computes the exact value. Defaults to math.Gamma.
	Reference func(float64) float64
	// Floor is the smallest denominator used for relative errors. Values
	// whose reference magnitude is below Floor are compared relative to
	// Floor instead, which keeps zeros of the reference (ln Γ at 1 and 2)
	// from dominating the statistics.
	Floor float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig compares against math.Gamma with no floor.
func DefaultConfig() Config {
	return Config{
		Reference: math.Gamma,
	}
}

// WithReference sets the reference function.
func WithReference(ref func(float64) float64) Option {
	return func(cfg *Config) {
		if ref != nil {
			cfg.Reference = ref
		}
	}
}

// WithFloor sets the relative-error denominator floor.
func WithFloor(floor float64) Option {
	return func(cfg *Config) {
		if floor >= 0 {
			cfg.Floor = floor
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// LogGammaReference returns ln|Γ(x)|, for use with WithReference.
func LogGammaReference(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
