// SPDX-License-Identifier: MIT

package hex

// lineNudge shifts both endpoints off cell edges so that no sample rounds on
// an exact tie. Its cube components (1e-6, 2e-6, -3e-6) sum to zero.
var lineNudge = FractionalHex{X: 1e-6, Y: 2e-6}

// LineTo returns the straight line of cells from h to o, both included.
//
// It samples DistanceTo(o)+1 evenly spaced points with Lerp and rounds each
// one, so consecutive cells are always neighbors.
// Complexity: O(d) time and memory, d = h.DistanceTo(o).
func (h Hex) LineTo(o Hex) []Hex {
	n := h.DistanceTo(o)
	if n == 0 {
		return []Hex{h}
	}
	a := h.Fractional().Add(lineNudge)
	b := o.Fractional().Add(lineNudge)
	step := 1 / float64(n)

	res := make([]Hex, n+1)
	res[0], res[n] = h, o
	for i := int64(1); i < n; i++ {
		res[i] = a.Lerp(b, float64(i)*step).Round()
	}

	return res
}

// Line is a.LineTo(b).
func Line(a, b Hex) []Hex {
	return a.LineTo(b)
}
