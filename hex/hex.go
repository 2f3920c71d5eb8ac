// SPDX-License-Identifier: MIT

package hex

import (
	"cmp"
	"fmt"
)

// Hex is an axial hexagonal coordinate. The third cube component is derived
// (z = -x - y) and never stored, so every Hex satisfies x + y + z == 0.
//
// Hex is a small comparable value: copy it freely, compare it with == and use
// it as a map key. Every operation returns a new value.
type Hex struct {
	x, y int32
}

// Zero is the origin (0, 0).
var Zero = Hex{}

// New returns the coordinate (x, y).
func New(x, y int32) Hex {
	return Hex{x: x, y: y}
}

// X returns the x (q) component.
func (h Hex) X() int32 { return h.x }

// Y returns the y (r) component.
func (h Hex) Y() int32 { return h.y }

// Z returns the derived z (s) component. It is int64 because -x-y does not
// fit int32 when both components are near the int32 limits.
func (h Hex) Z() int64 { return -int64(h.x) - int64(h.y) }

// IsZero reports whether h is the origin.
func (h Hex) IsZero() bool { return h == Zero }

// String formats h as "(x, y)".
func (h Hex) String() string {
	return fmt.Sprintf("(%d, %d)", h.x, h.y)
}

// Compare orders coordinates component-wise: by x, then by y.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(a, b Hex) int {
	if c := cmp.Compare(a.x, b.x); c != 0 {
		return c
	}
	return cmp.Compare(a.y, b.y)
}
