// SPDX-License-Identifier: MIT

package hex

// DistanceTo returns the number of steps between h and o:
// max(|dx|, |dy|, |dz|). The differences are taken in int64, so the result is
// exact even for coordinates at opposite int32 limits.
// Complexity: O(1).
func (h Hex) DistanceTo(o Hex) int64 {
	dx := int64(h.x) - int64(o.x)
	dy := int64(h.y) - int64(o.y)
	dz := -dx - dy

	return max(abs64(dx), abs64(dy), abs64(dz))
}

// UnsignedDistanceTo is DistanceTo as an unsigned magnitude.
func (h Hex) UnsignedDistanceTo(o Hex) uint64 {
	return uint64(h.DistanceTo(o))
}

// Length returns the distance from the origin.
func (h Hex) Length() int64 {
	return h.DistanceTo(Zero)
}

// UnsignedLength is Length as an unsigned magnitude.
func (h Hex) UnsignedLength() uint64 {
	return uint64(h.Length())
}
