// SPDX-License-Identifier: MIT

package ringcache

import "github.com/katalvlaran/hexlath/hex"

// Option customizes a Cache before its rings are computed.
// Options are applied in order; later ones override earlier ones.
type Option func(*config)

// config collects the construction knobs. Defaults: origin center, identity
// transform.
type config struct {
	center    hex.Hex
	transform func(hex.Hex) hex.Hex
}

func newConfig(opts ...Option) config {
	cfg := config{center: hex.Zero}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCenter sets the center of every ring. Default: hex.Zero.
func WithCenter(c hex.Hex) Option {
	return func(cfg *config) {
		cfg.center = c
	}
}

// WithTransform applies fn to every cached cell at construction, after the
// ring walk. Use it for rotated, reflected or otherwise mapped rings; the
// center is passed through fn as well. Panics on nil.
func WithTransform(fn func(hex.Hex) hex.Hex) Option {
	if fn == nil {
		panic("ringcache: WithTransform(nil)")
	}
	return func(cfg *config) {
		cfg.transform = fn
	}
}
