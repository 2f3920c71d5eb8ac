// SPDX-License-Identifier: MIT

package hex

// RingStart is the direction of the first cell of every ring: a ring of
// radius r starts at center + RingStart.Offset()*r.
const RingStart = Bottom

// Ring returns the 6*radius coordinates at exact distance radius from h, or
// [h] when radius is 0.
//
// The walk starts at h + Bottom*radius and, for each direction in enumerant
// order (TopRight first), appends the current cell then steps radius times.
// The cell at index k*radius is the "arm" cell h + RingStart.RotateLeft(k)*radius,
// so the arms are visited in cyclic enumerant order starting at Bottom.
// The walk is done in axial space for every caller, so offset parity never
// changes the result.
// Complexity: O(radius) time and memory.
func (h Hex) Ring(radius uint32) []Hex {
	if radius == 0 {
		return []Hex{h}
	}
	res := make([]Hex, 0, 6*int(radius))
	cur := h.Add(RingStart.Offset().Mul(int32(radius)))
	for _, d := range Directions() {
		off := d.Offset()
		for range radius {
			res = append(res, cur)
			cur = cur.Add(off)
		}
	}

	return res
}

// Rings returns one ring per radius in [from, to], in increasing order.
// It returns nil when from > to.
func (h Hex) Rings(from, to uint32) [][]Hex {
	if from > to {
		return nil
	}
	res := make([][]Hex, 0, int(to-from)+1)
	for r := from; ; r++ {
		res = append(res, h.Ring(r))
		if r == to {
			break
		}
	}

	return res
}

// Spiral returns the rings of radius 0 through radius concatenated: h first,
// then ring 1, ring 2 and so on. Its length is RangeCount(radius).
// Complexity: O(radius²) time and memory.
func (h Hex) Spiral(radius uint32) []Hex {
	return h.SpiralRange(0, radius)
}

// SpiralRange concatenates the rings of radius from through to.
// It returns nil when from > to.
func (h Hex) SpiralRange(from, to uint32) []Hex {
	if from > to {
		return nil
	}
	n := RangeCount(to)
	if from > 0 {
		n -= RangeCount(from - 1)
	}
	res := make([]Hex, 0, n)
	for r := from; ; r++ {
		res = append(res, h.Ring(r)...)
		if r == to {
			break
		}
	}

	return res
}

// Range returns every coordinate within distance radius of h, row by row
// (x ascending, then y ascending). It contains the same cells as Spiral in a
// different order.
// Complexity: O(radius²) time and memory.
func (h Hex) Range(radius uint32) []Hex {
	r := int64(radius)
	res := make([]Hex, 0, RangeCount(radius))
	for x := -r; x <= r; x++ {
		for y := max(-r, -x-r); y <= min(r, -x+r); y++ {
			res = append(res, h.Add(Hex{x: int32(x), y: int32(y)}))
		}
	}

	return res
}

// RangeCount returns the number of coordinates within distance radius of a
// center: 1 + 3*radius*(radius+1). The result overflows a 64-bit int for
// radii above about 1.75e9.
func RangeCount(radius uint32) int {
	r := int(radius)
	return 1 + 3*r*(r+1)
}
