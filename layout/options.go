// SPDX-License-Identifier: MIT

package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/hexlath/hex"
)

// Option customizes a Layout built by New.
type Option func(*Layout)

// WithOrientation sets pointy or flat hexagons. Default: hex.Pointy.
func WithOrientation(o hex.Orientation) Option {
	return func(l *Layout) {
		l.Orientation = o
	}
}

// WithOrigin sets the world position of hex.Zero. Default: (0, 0).
func WithOrigin(origin r2.Vec) Option {
	return func(l *Layout) {
		l.Origin = origin
	}
}

// WithSize sets the world size of a hexagon (center to corner, per axis).
// Default: (1, 1). Panics unless both components are finite and positive.
func WithSize(size r2.Vec) Option {
	if !validSize(size) {
		panic("layout: WithSize(non-positive or non-finite)")
	}
	return func(l *Layout) {
		l.Size = size
	}
}

// WithInvertX mirrors the hex x axis.
func WithInvertX(invert bool) Option {
	return func(l *Layout) {
		l.InvertX = invert
	}
}

// WithInvertY mirrors the hex y axis.
func WithInvertY(invert bool) Option {
	return func(l *Layout) {
		l.InvertY = invert
	}
}

func validSize(s r2.Vec) bool {
	return s.X > 0 && s.Y > 0 && !math.IsInf(s.X, 1) && !math.IsInf(s.Y, 1)
}
