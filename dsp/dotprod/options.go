package dotprod

// DefaultUnrollThreshold is the coefficient count at which Execute switches
// from the single-accumulator kernel to the 4-way unrolled kernel. Below it
// the unrolled kernel's setup overhead outweighs its throughput gain. The
// value is a measured crossover, not a hard truth; recalibrate on different
// hardware with WithUnrollThreshold.
const DefaultUnrollThreshold = 128

type config struct {
	unrollThreshold int
	forceGeneric    bool
}

func defaultConfig() config {
	return config{unrollThreshold: DefaultUnrollThreshold}
}

// Option mutates the construction-time configuration of a DotProduct.
type Option func(*config)

// WithUnrollThreshold sets the coefficient count at which Execute switches
// to the 4-way unrolled kernel. Values < 1 are ignored.
func WithUnrollThreshold(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.unrollThreshold = n
		}
	}
}

// WithForceGeneric pins the object to the scalar reference kernels,
// bypassing any SIMD implementation. Intended for testing and debugging.
func WithForceGeneric() Option {
	return func(cfg *config) {
		cfg.forceGeneric = true
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
