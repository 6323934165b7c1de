// SPDX-License-Identifier: MIT
// Package source: functional options.
//
// Contract:
//   • Options mutate a sourceConfig before New allocates anything.
//   • Option constructors panic on nil arguments; New itself never panics.
//   • Determinism is explicit: seed with WithSeed or pass WithRand.

package source

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Option customizes New.
type Option func(*sourceConfig)

// WithRand supplies the RNG used for the initial probability partition.
// The source keeps no reference to r after New returns.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("source: WithRand(nil)")
	}
	return func(c *sourceConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG for the initial probability partition.
// Seed 0 maps to the package default seed.
func WithSeed(seed int64) Option {
	return func(c *sourceConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("source: WithLogger(nil)")
	}
	return func(c *sourceConfig) {
		c.log = l
	}
}

// WithRendering selects the codeword rendering used for decoder keys and
// canonical labels. Unknown values fall back to DigitRendering.
func WithRendering(r Rendering) Option {
	return func(c *sourceConfig) {
		c.rendering = r
	}
}

// sourceConfig is the resolved option set consumed by New.
type sourceConfig struct {
	rng       *rand.Rand
	log       logrus.FieldLogger
	rendering Rendering
}

// newSourceConfig applies opts over the defaults:
// deterministic RNG (defaultRNGSeed), logrus standard logger, DigitRendering.
func newSourceConfig(opts ...Option) sourceConfig {
	cfg := sourceConfig{rendering: DigitRendering}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	if cfg.log == nil {
		cfg.log = logrus.StandardLogger()
	}
	if cfg.rendering != DigitRendering && cfg.rendering != HexRendering {
		cfg.rendering = DigitRendering
	}
	return cfg
}
