// SPDX-License-Identifier: MIT

package hex

// DiagonalDirection is one of the six diagonal directions. Diagonal i lies
// between Direction i-1 (clockwise side) and Direction i (counter-clockwise
// side), 30° before Direction i.
type DiagonalDirection uint8

const (
	// DiagonalRight points to (2, -1).
	DiagonalRight DiagonalDirection = iota
	// DiagonalTopRight points to (1, -2).
	DiagonalTopRight
	// DiagonalTopLeft points to (-1, -1).
	DiagonalTopLeft
	// DiagonalLeft points to (-2, 1).
	DiagonalLeft
	// DiagonalBottomLeft points to (-1, 2).
	DiagonalBottomLeft
	// DiagonalBottomRight points to (1, 1).
	DiagonalBottomRight
)

var diagonalOffsets = [6]Hex{
	{x: 2, y: -1},
	{x: 1, y: -2},
	{x: -1, y: -1},
	{x: -2, y: 1},
	{x: -1, y: 2},
	{x: 1, y: 1},
}

var diagonalNames = [6]string{"right", "top_right", "top_left", "left", "bottom_left", "bottom_right"}

// Diagonals returns all six diagonal directions in enumerant order.
func Diagonals() [6]DiagonalDirection {
	return [6]DiagonalDirection{DiagonalRight, DiagonalTopRight, DiagonalTopLeft, DiagonalLeft, DiagonalBottomLeft, DiagonalBottomRight}
}

func (d DiagonalDirection) index() int { return int(d % 6) }

// Offset returns the coordinate offset of d (length 2).
func (d DiagonalDirection) Offset() Hex { return diagonalOffsets[d.index()] }

// RotateLeft rotates d counter-clockwise by n sixty-degree steps.
func (d DiagonalDirection) RotateLeft(n int) DiagonalDirection {
	return DiagonalDirection(mod6(d.index() + mod6(n)))
}

// RotateRight rotates d clockwise by n sixty-degree steps.
func (d DiagonalDirection) RotateRight(n int) DiagonalDirection {
	return DiagonalDirection(mod6(d.index() - mod6(n)))
}

// DirectionCCW returns the neighbor direction 30° counter-clockwise of d.
func (d DiagonalDirection) DirectionCCW() Direction { return Direction(d.index()) }

// DirectionCW returns the neighbor direction 30° clockwise of d.
func (d DiagonalDirection) DirectionCW() Direction { return Direction(mod6(d.index() - 1)) }

// DiagonalCCW returns the diagonal 30° counter-clockwise of d.
func (d Direction) DiagonalCCW() DiagonalDirection { return DiagonalDirection(mod6(d.index() + 1)) }

// DiagonalCW returns the diagonal 30° clockwise of d.
func (d Direction) DiagonalCW() DiagonalDirection { return DiagonalDirection(d.index()) }

// AnglePointy returns the angle of d in radians for pointy hexagons, in [0, 2π).
func (d DiagonalDirection) AnglePointy() float64 {
	return float64(mod6(d.index()-1))*DirectionAngle + DirectionAngleOffset
}

// AngleFlat returns the angle of d in radians for flat hexagons.
func (d DiagonalDirection) AngleFlat() float64 {
	return float64(d.index()) * DirectionAngle
}

// AnglePointyDegrees returns the angle of d in degrees for pointy hexagons, in [0, 360).
func (d DiagonalDirection) AnglePointyDegrees() float64 {
	return float64(mod6(d.index()-1))*DirectionAngleDegrees + DirectionAngleOffsetDegrees
}

// AngleFlatDegrees returns the angle of d in degrees for flat hexagons.
func (d DiagonalDirection) AngleFlatDegrees() float64 {
	return float64(d.index()) * DirectionAngleDegrees
}

// Angle returns the angle of d in radians for orientation o.
func (d DiagonalDirection) Angle(o Orientation) float64 {
	if o == Flat {
		return d.AngleFlat()
	}
	return d.AnglePointy()
}

// String returns the snake_case name of d.
func (d DiagonalDirection) String() string { return diagonalNames[d.index()] }

// MarshalText implements encoding.TextMarshaler.
func (d DiagonalDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DiagonalDirection) UnmarshalText(text []byte) error {
	i, err := lookupName(diagonalNames[:], text)
	if err != nil {
		return err
	}
	*d = DiagonalDirection(i)
	return nil
}
