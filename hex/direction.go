// SPDX-License-Identifier: MIT

package hex

import "math"

// Angles between directions and between orientations.
const (
	// DirectionAngle is the angle in radians between two adjacent directions (π/3).
	DirectionAngle = math.Pi / 3
	// DirectionAngleDegrees is DirectionAngle in degrees.
	DirectionAngleDegrees = 60.0
	// DirectionAngleOffset is the angle in radians between the flat and the
	// pointy orientation (π/6).
	DirectionAngleOffset = math.Pi / 6
	// DirectionAngleOffsetDegrees is DirectionAngleOffset in degrees.
	DirectionAngleOffsetDegrees = 30.0
)

// Direction is one of the six neighbor directions. Enumerants are ordered by
// increasing angle starting from TopRight; index arithmetic is modulo 6, so
// out-of-range values behave like their remainder.
type Direction uint8

const (
	// TopRight points to (1, -1). Pointy 0°, flat 30°.
	TopRight Direction = iota
	// Top points to (0, -1). Pointy 60°, flat 90°.
	Top
	// TopLeft points to (-1, 0). Pointy 120°, flat 150°.
	TopLeft
	// BottomLeft points to (-1, 1). Pointy 180°, flat 210°.
	BottomLeft
	// Bottom points to (0, 1). Pointy 240°, flat 270°.
	Bottom
	// BottomRight points to (1, 0). Pointy 300°, flat 330°.
	BottomRight
)

// neighborOffsets is indexed by Direction.
var neighborOffsets = [6]Hex{
	{x: 1, y: -1},
	{x: 0, y: -1},
	{x: -1, y: 0},
	{x: -1, y: 1},
	{x: 0, y: 1},
	{x: 1, y: 0},
}

var directionNames = [6]string{"top_right", "top", "top_left", "bottom_left", "bottom", "bottom_right"}

// Directions returns all six directions in enumerant order.
func Directions() [6]Direction {
	return [6]Direction{TopRight, Top, TopLeft, BottomLeft, Bottom, BottomRight}
}

// index returns the normalized table index in [0, 6).
func (d Direction) index() int { return int(d % 6) }

// Offset returns the unit coordinate offset of d.
func (d Direction) Offset() Hex {
	return neighborOffsets[d.index()]
}

// RotateLeft rotates d counter-clockwise by n sixty-degree steps.
// Negative n rotates clockwise.
func (d Direction) RotateLeft(n int) Direction {
	return Direction(mod6(d.index() + mod6(n)))
}

// RotateRight rotates d clockwise by n sixty-degree steps.
// Negative n rotates counter-clockwise.
func (d Direction) RotateRight(n int) Direction {
	return Direction(mod6(d.index() - mod6(n)))
}

// Left is RotateLeft(1).
func (d Direction) Left() Direction { return d.RotateLeft(1) }

// Right is RotateRight(1).
func (d Direction) Right() Direction { return d.RotateRight(1) }

// Opposite is RotateLeft(3).
func (d Direction) Opposite() Direction { return d.RotateLeft(3) }

// AnglePointy returns the angle of d in radians for pointy hexagons.
func (d Direction) AnglePointy() float64 {
	return float64(d.index()) * DirectionAngle
}

// AngleFlat returns the angle of d in radians for flat hexagons.
func (d Direction) AngleFlat() float64 {
	return d.AnglePointy() + DirectionAngleOffset
}

// AnglePointyDegrees returns the angle of d in degrees for pointy hexagons.
func (d Direction) AnglePointyDegrees() float64 {
	return float64(d.index()) * DirectionAngleDegrees
}

// AngleFlatDegrees returns the angle of d in degrees for flat hexagons.
func (d Direction) AngleFlatDegrees() float64 {
	return d.AnglePointyDegrees() + DirectionAngleOffsetDegrees
}

// Angle returns the angle of d in radians for orientation o.
func (d Direction) Angle(o Orientation) float64 {
	if o == Flat {
		return d.AngleFlat()
	}
	return d.AnglePointy()
}

// AngleDegrees returns the angle of d in degrees for orientation o.
func (d Direction) AngleDegrees(o Orientation) float64 {
	if o == Flat {
		return d.AngleFlatDegrees()
	}
	return d.AnglePointyDegrees()
}

// String returns the snake_case name of d, e.g. "top_right".
func (d Direction) String() string { return directionNames[d.index()] }

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	i, err := lookupName(directionNames[:], text)
	if err != nil {
		return err
	}
	*d = Direction(i)
	return nil
}

// mod6 returns v modulo 6 in [0, 6) for any sign of v.
func mod6(v int) int {
	m := v % 6
	if m < 0 {
		m += 6
	}
	return m
}
