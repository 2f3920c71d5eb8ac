// SPDX-License-Identifier: MIT

package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/hexlath/hex"
)

// Layout is the bridge between hex coordinates and world space. It is a
// plain value. The zero Layout has a zero Size and cannot map world
// positions back to cells; build one with New or Config.Layout.
type Layout struct {
	Orientation hex.Orientation
	// Origin is the world position of hex.Zero.
	Origin r2.Vec
	// Size is the world size of a hexagon. It may differ per axis.
	Size    r2.Vec
	InvertX bool
	InvertY bool
}

// New returns a pointy Layout with unit size at the world origin, modified
// by opts in order.
func New(opts ...Option) Layout {
	l := Layout{
		Orientation: hex.Pointy,
		Size:        r2.Vec{X: 1, Y: 1},
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// axisScale returns the per-axis sign applied between hex and world space.
func (l Layout) axisScale() r2.Vec {
	s := r2.Vec{X: 1, Y: -1}
	if l.InvertX {
		s.X = -1
	}
	if l.InvertY {
		s.Y = 1
	}
	return s
}

// HexToWorld returns the world position of the center of h.
func (l Layout) HexToWorld(h hex.Hex) r2.Vec {
	m := matricesOf(l.Orientation).forward
	x, y := float64(h.X()), float64(h.Y())
	p := r2.Vec{
		X: m[0]*x + m[1]*y,
		Y: m[2]*x + m[3]*y,
	}
	return r2.Add(hadamard(hadamard(p, l.Size), l.axisScale()), l.Origin)
}

// Fractional returns the fractional hex coordinate of a world position,
// before rounding.
func (l Layout) Fractional(pos r2.Vec) hex.FractionalHex {
	m := matricesOf(l.Orientation).inverse
	s := l.axisScale()
	p := r2.Sub(pos, l.Origin)
	px := p.X * s.X / l.Size.X
	py := p.Y * s.Y / l.Size.Y
	return hex.FractionalHex{
		X: m[0]*px + m[1]*py,
		Y: m[2]*px + m[3]*py,
	}
}

// WorldToHex returns the cell containing pos. Positions on a shared edge
// resolve with the tie order of hex.FractionalHex.Round.
func (l Layout) WorldToHex(pos r2.Vec) hex.Hex {
	return l.Fractional(pos).Round()
}

// Corners returns the six vertices of h in world space, one per direction in
// hex.Directions() order. The first corner of a flat hexagon is at angle 0,
// of a pointy one at 30 degrees. Corners follow Size but not the axis
// inversion.
func (l Layout) Corners(h hex.Hex) [6]r2.Vec {
	c := l.HexToWorld(h)
	off := matricesOf(l.Orientation).cornerOffset
	var res [6]r2.Vec
	for i, d := range hex.Directions() {
		sin, cos := math.Sincos(d.AnglePointy() + off)
		res[i] = r2.Vec{X: c.X + l.Size.X*cos, Y: c.Y + l.Size.Y*sin}
	}
	return res
}

// RectSize returns the width and height of the bounding box of one hexagon.
func (l Layout) RectSize() r2.Vec {
	r := matricesOf(l.Orientation).rect
	return r2.Vec{X: l.Size.X * r[0], Y: l.Size.Y * r[1]}
}

func hadamard(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: a.X * b.X, Y: a.Y * b.Y}
}
