// SPDX-License-Identifier: MIT

package hex

// RangeFOV returns the cells within radius of center that center can see:
// a cell is visible when no cell of center.LineTo(cell), the cell itself
// included, is blocking. Blocking cells are never visible, so a blocking
// center sees nothing. A nil blocking function blocks nothing.
//
// Cells are returned in Spiral order.
// Complexity: O(r³) time for radius r, O(r²) memory; blocking is called
// once per distinct cell.
func RangeFOV(center Hex, radius uint32, blocking func(Hex) bool) []Hex {
	if blocking == nil {
		return center.Spiral(radius)
	}
	blocked := make(map[Hex]bool, RangeCount(radius))
	isBlocked := func(h Hex) bool {
		b, ok := blocked[h]
		if !ok {
			b = blocking(h)
			blocked[h] = b
		}
		return b
	}

	var res []Hex
	for _, target := range center.Spiral(radius) {
		visible := true
		for _, h := range center.LineTo(target) {
			if isBlocked(h) {
				visible = false
				break
			}
		}
		if visible {
			res = append(res, target)
		}
	}

	return res
}
