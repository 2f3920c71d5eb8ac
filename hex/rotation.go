// SPDX-License-Identifier: MIT

package hex

// Neighbor returns the adjacent coordinate in direction d.
func (h Hex) Neighbor(d Direction) Hex {
	return h.Add(d.Offset())
}

// AllNeighbors returns the six adjacent coordinates in Direction order.
func (h Hex) AllNeighbors() [6]Hex {
	var res [6]Hex
	for i, off := range neighborOffsets {
		res[i] = h.Add(off)
	}
	return res
}

// DiagonalNeighbor returns the diagonal coordinate in direction d.
func (h Hex) DiagonalNeighbor(d DiagonalDirection) Hex {
	return h.Add(d.Offset())
}

// AllDiagonals returns the six diagonal coordinates in DiagonalDirection order.
func (h Hex) AllDiagonals() [6]Hex {
	var res [6]Hex
	for i, off := range diagonalOffsets {
		res[i] = h.Add(off)
	}
	return res
}

// NeighborDirection returns the direction from h to o when o is adjacent.
func (h Hex) NeighborDirection(o Hex) (Direction, bool) {
	delta := o.Sub(h)
	for i, off := range neighborOffsets {
		if delta == off {
			return Direction(i), true
		}
	}
	return 0, false
}

// Left rotates h 60° counter-clockwise about the origin:
// cube (x, y, z) becomes (-z, -x, -y).
func (h Hex) Left() Hex {
	return Hex{x: h.x + h.y, y: -h.x}
}

// Right rotates h 60° clockwise about the origin:
// cube (x, y, z) becomes (-y, -z, -x).
func (h Hex) Right() Hex {
	return Hex{x: -h.y, y: h.x + h.y}
}

// RotateLeft rotates h counter-clockwise about the origin by n sixty-degree
// steps. n is normalized modulo 6; negative n rotates clockwise.
func (h Hex) RotateLeft(n int) Hex {
	for range mod6(n) {
		h = h.Left()
	}
	return h
}

// RotateRight rotates h clockwise about the origin by n sixty-degree steps.
// n is normalized modulo 6; negative n rotates counter-clockwise.
func (h Hex) RotateRight(n int) Hex {
	for range mod6(n) {
		h = h.Right()
	}
	return h
}

// RotateLeftAround rotates h counter-clockwise about center by n steps.
func (h Hex) RotateLeftAround(center Hex, n int) Hex {
	return h.Sub(center).RotateLeft(n).Add(center)
}

// RotateRightAround rotates h clockwise about center by n steps.
func (h Hex) RotateRightAround(center Hex, n int) Hex {
	return h.Sub(center).RotateRight(n).Add(center)
}

// ReflectX reflects h across the x axis: cube (x, y, z) becomes (x, z, y).
func (h Hex) ReflectX() Hex {
	return Hex{x: h.x, y: -h.x - h.y}
}

// ReflectY reflects h across the y axis: cube (x, y, z) becomes (z, y, x).
func (h Hex) ReflectY() Hex {
	return Hex{x: -h.x - h.y, y: h.y}
}

// ReflectZ reflects h across the z axis: cube (x, y, z) becomes (y, x, z).
func (h Hex) ReflectZ() Hex {
	return Hex{x: h.y, y: h.x}
}
