// Package networks provides internal configuration types and functional
// options for network generators. The key type is Option, a function that
// mutates a genConfig; the only setting every generator needs is the RNG
// source for stochastic topology choices (nil means deterministic).
//
// Use gatherConfig to obtain a genConfig with sensible defaults, then apply
// any number of Option in order. Later options override earlier ones.
//
// Complexity: gatherConfig applies N options in O(N) time, O(1) extra space.
package networks

import (
	"math/rand"
)

// Option customizes a stochastic generator (RandomRegular, RandomSparse) by
// mutating a genConfig before topology construction begins.
type Option func(cfg *genConfig)

// genConfig holds the configurable parameters for stochastic generators:
// rng, the source of randomness (nil means none supplied — the generator
// itself decides whether that's an error or a deterministic degenerate
// case, per its own contract).
type genConfig struct {
	rng *rand.Rand
}

// gatherConfig returns a genConfig initialized with defaults (nil RNG),
// then applies each provided Option in order.
func gatherConfig(opts ...Option) *genConfig {
	cfg := &genConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRand sets an explicit *rand.Rand source for randomness. If rng is
// nil, this option is a no-op and leaves the original RNG.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *genConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the RNG source. Use this for reproducible randomness in
// tests and golden fixtures.
func WithSeed(seed int64) Option {
	return func(cfg *genConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
