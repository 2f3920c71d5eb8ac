// SPDX-License-Identifier: MIT

package hex

// OffsetMode selects which lines of an offset grid are shifted by half a cell.
// Rows go with pointy hexagons, columns with flat hexagons.
type OffsetMode uint8

const (
	// EvenColumns shifts even columns down (flat hexagons).
	EvenColumns OffsetMode = iota
	// OddColumns shifts odd columns down (flat hexagons).
	OddColumns
	// EvenRows shifts even rows right (pointy hexagons).
	EvenRows
	// OddRows shifts odd rows right (pointy hexagons).
	OddRows
)

var offsetModeNames = [4]string{"even_columns", "odd_columns", "even_rows", "odd_rows"}

// Offset is a column/row coordinate in an offset grid.
type Offset struct {
	Col, Row int32
}

// ToOffset converts h to offset coordinates. The half-cell shift is
// computed in int64 and only the final values are narrowed to int32. A
// shifted component beyond int32 wraps; since the shift depends only on the
// unshifted component, FromOffset still inverts it exactly.
// Complexity: O(1).
func (h Hex) ToOffset(mode OffsetMode) Offset {
	x, y := int64(h.x), int64(h.y)
	switch mode % 4 {
	case EvenColumns:
		return Offset{Col: h.x, Row: int32(y + (x+(x&1))/2)}
	case OddColumns:
		return Offset{Col: h.x, Row: int32(y + (x-(x&1))/2)}
	case EvenRows:
		return Offset{Col: int32(x + (y+(y&1))/2), Row: h.y}
	default:
		return Offset{Col: int32(x + (y-(y&1))/2), Row: h.y}
	}
}

// FromOffset converts offset coordinates back to a Hex. It is the exact
// inverse of ToOffset for the same mode.
func FromOffset(o Offset, mode OffsetMode) Hex {
	col, row := int64(o.Col), int64(o.Row)
	switch mode % 4 {
	case EvenColumns:
		return Hex{x: o.Col, y: int32(row - (col+(col&1))/2)}
	case OddColumns:
		return Hex{x: o.Col, y: int32(row - (col-(col&1))/2)}
	case EvenRows:
		return Hex{x: int32(col - (row+(row&1))/2), y: o.Row}
	default:
		return Hex{x: int32(col - (row-(row&1))/2), y: o.Row}
	}
}

// String returns the snake_case name of m.
func (m OffsetMode) String() string { return offsetModeNames[m%4] }

// MarshalText implements encoding.TextMarshaler.
func (m OffsetMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *OffsetMode) UnmarshalText(text []byte) error {
	i, err := lookupName(offsetModeNames[:], text)
	if err != nil {
		return err
	}
	*m = OffsetMode(i)
	return nil
}

// DoubledMode selects which axis of a doubled grid is scaled by 2.
type DoubledMode uint8

const (
	// DoubledWidth doubles the column step (pointy hexagons).
	DoubledWidth DoubledMode = iota
	// DoubledHeight doubles the row step (flat hexagons).
	DoubledHeight
)

var doubledModeNames = [2]string{"doubled_width", "doubled_height"}

// Doubled is a column/row coordinate in a doubled grid. Valid doubled
// coordinates always have an even Col+Row. The components are int64 because
// the doubled axis spans twice the int32 range of a Hex.
type Doubled struct {
	Col, Row int64
}

// ToDoubled converts h to doubled coordinates. It is exact for every Hex.
func (h Hex) ToDoubled(mode DoubledMode) Doubled {
	x, y := int64(h.x), int64(h.y)
	if mode%2 == DoubledHeight {
		return Doubled{Col: x, Row: 2*y + x}
	}
	return Doubled{Col: 2*x + y, Row: y}
}

// FromDoubled converts doubled coordinates back to a Hex. It is the exact
// inverse of ToDoubled. Coordinates that ToDoubled cannot produce (an odd
// Col+Row, or an axial component outside int32) wrap like Hex arithmetic.
func FromDoubled(d Doubled, mode DoubledMode) Hex {
	if mode%2 == DoubledHeight {
		return Hex{x: int32(d.Col), y: int32((d.Row - d.Col) / 2)}
	}
	return Hex{x: int32((d.Col - d.Row) / 2), y: int32(d.Row)}
}

// String returns the snake_case name of m.
func (m DoubledMode) String() string { return doubledModeNames[m%2] }

// MarshalText implements encoding.TextMarshaler.
func (m DoubledMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *DoubledMode) UnmarshalText(text []byte) error {
	i, err := lookupName(doubledModeNames[:], text)
	if err != nil {
		return err
	}
	*m = DoubledMode(i)
	return nil
}
