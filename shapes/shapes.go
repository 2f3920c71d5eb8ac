// SPDX-License-Identifier: MIT

package shapes

import "github.com/katalvlaran/hexlath/hex"

// Hexagon returns every cell within radius of center, row by row.
// It is the same set as NewBounds(center, radius).AllCoords().
func Hexagon(center hex.Hex, radius uint32) []hex.Hex {
	return center.Range(radius)
}

// Parallelogram returns every cell whose x lies in [lo.X(), hi.X()] and y in
// [lo.Y(), hi.Y()], x-major. It returns nil when lo exceeds hi on either
// axis.
func Parallelogram(lo, hi hex.Hex) []hex.Hex {
	if lo.X() > hi.X() || lo.Y() > hi.Y() {
		return nil
	}
	w := int64(hi.X()) - int64(lo.X()) + 1
	ht := int64(hi.Y()) - int64(lo.Y()) + 1
	res := make([]hex.Hex, 0, w*ht)
	for x := int64(lo.X()); x <= int64(hi.X()); x++ {
		for y := int64(lo.Y()); y <= int64(hi.Y()); y++ {
			res = append(res, hex.New(int32(x), int32(y)))
		}
	}
	return res
}

// Triangle returns the (size+1)(size+2)/2 cells with x >= 0, y >= 0 and
// x + y <= size.
func Triangle(size uint32) []hex.Hex {
	s := int64(size)
	res := make([]hex.Hex, 0, (s+1)*(s+2)/2)
	for x := int64(0); x <= s; x++ {
		for y := int64(0); y <= s-x; y++ {
			res = append(res, hex.New(int32(x), int32(y)))
		}
	}
	return res
}

// Rectangle returns the cells of an offset-coordinate rectangle, row by row:
// every Offset with Col in [lo.Col, hi.Col] and Row in [lo.Row, hi.Row],
// converted with mode. It returns nil when lo exceeds hi on either axis.
func Rectangle(lo, hi hex.Offset, mode hex.OffsetMode) []hex.Hex {
	if lo.Col > hi.Col || lo.Row > hi.Row {
		return nil
	}
	cols := int64(hi.Col) - int64(lo.Col) + 1
	rows := int64(hi.Row) - int64(lo.Row) + 1
	res := make([]hex.Hex, 0, cols*rows)
	for row := int64(lo.Row); row <= int64(hi.Row); row++ {
		for col := int64(lo.Col); col <= int64(hi.Col); col++ {
			res = append(res, hex.FromOffset(hex.Offset{Col: int32(col), Row: int32(row)}, mode))
		}
	}
	return res
}
