// SPDX-License-Identifier: MIT

package shapes

import (
	"math"

	"github.com/katalvlaran/hexlath/hex"
)

// Bounds is the hexagonal region of every cell within Radius of Center.
type Bounds struct {
	Center hex.Hex
	Radius uint32
}

// NewBounds returns the bounds of radius around center.
func NewBounds(center hex.Hex, radius uint32) Bounds {
	return Bounds{Center: center, Radius: radius}
}

// Contains reports whether h lies within the bounds.
func (b Bounds) Contains(h hex.Hex) bool {
	return b.Center.UnsignedDistanceTo(h) <= uint64(b.Radius)
}

// Len returns the number of cells in the bounds.
func (b Bounds) Len() int {
	return hex.RangeCount(b.Radius)
}

// AllCoords returns every cell of the bounds in spiral order.
func (b Bounds) AllCoords() []hex.Hex {
	return b.Center.Spiral(b.Radius)
}

// Intersects reports whether b and o share at least one cell.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Center.UnsignedDistanceTo(o.Center) <= uint64(b.Radius)+uint64(o.Radius)
}

// Mirrors returns the centers of the six copies of b that tile the plane
// around it, starting with Center + (2r+1, -r) and turning counter-clockwise.
// Radii above 1<<30 wrap like hex arithmetic.
func (b Bounds) Mirrors() [6]hex.Hex {
	r := int32(b.Radius)
	m := hex.New(2*r+1, -r)
	var res [6]hex.Hex
	for i := range res {
		res[i] = b.Center.Add(m)
		m = m.Left()
	}
	return res
}

// Representable reports whether every cell of b fits the int32 components
// of a hex.Hex, i.e. Center ± Radius stays within int32 on both axes.
func (b Bounds) Representable() bool {
	r := int64(b.Radius)
	x, y := int64(b.Center.X()), int64(b.Center.Y())
	return x-r >= math.MinInt32 && x+r <= math.MaxInt32 &&
		y-r >= math.MinInt32 && y+r <= math.MaxInt32
}

// Wrap returns the cell inside b that h maps to when b tiles the plane.
// Cells inside b are returned unchanged. For every mirror m,
// b.Wrap(h.Add(m.Sub(b.Center))) == b.Wrap(h).
//
// The result is inside b only when b is Representable; for bounds that
// cross the int32 limits the wrapped cell itself wraps around int32.
//
// The lattice coefficients are estimated in float64 and then settled by an
// exact integer search over the neighboring lattice cells.
func (b Bounds) Wrap(h hex.Hex) hex.Hex {
	if b.Contains(h) {
		return h
	}
	r := int64(b.Radius)
	// Lattice basis: the first mirror and its left rotation.
	m0x, m0y := 2*r+1, -r
	m1x, m1y := r+1, -(2*r + 1)
	det := float64(m0x*m1y - m1x*m0y)

	dx := int64(h.X()) - int64(b.Center.X())
	dy := int64(h.Y()) - int64(b.Center.Y())
	fa := (float64(dx)*float64(m1y) - float64(m1x)*float64(dy)) / det
	fb := (float64(m0x)*float64(dy) - float64(dx)*float64(m0y)) / det
	ia, ib := int64(math.Floor(fa)), int64(math.Floor(fb))

	for a := ia - 1; a <= ia+2; a++ {
		for c := ib - 1; c <= ib+2; c++ {
			x := dx - a*m0x - c*m1x
			y := dy - a*m0y - c*m1y
			if max(abs64(x), abs64(y), abs64(x+y)) <= r {
				return b.Center.Add(hex.New(int32(x), int32(y)))
			}
		}
	}
	// The search window covers every lattice cell adjacent to (fa, fb).
	return b.Center
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
