// SPDX-License-Identifier: MIT

package hex

import "math"

// FractionalHex is a floating-point axial coordinate with derived
// z = -X - Y. It is an intermediate for interpolation and world-space
// conversion; resolve it to a Hex with Round.
type FractionalHex struct {
	X, Y float64
}

// Fractional returns h as a FractionalHex.
func (h Hex) Fractional() FractionalHex {
	return FractionalHex{X: float64(h.x), Y: float64(h.y)}
}

// Z returns the derived z component.
func (f FractionalHex) Z() float64 { return -f.X - f.Y }

// Add returns f + o.
func (f FractionalHex) Add(o FractionalHex) FractionalHex {
	return FractionalHex{X: f.X + o.X, Y: f.Y + o.Y}
}

// Scale returns f * s.
func (f FractionalHex) Scale(s float64) FractionalHex {
	return FractionalHex{X: f.X * s, Y: f.Y * s}
}

// Lerp interpolates linearly from f (t = 0) to o (t = 1). t is not clamped.
func (f FractionalHex) Lerp(o FractionalHex, t float64) FractionalHex {
	return FractionalHex{
		X: f.X + (o.X-f.X)*t,
		Y: f.Y + (o.Y-f.Y)*t,
	}
}

// DistanceTo returns max(|dx|, |dy|, |dz|) in fractional space.
func (f FractionalHex) DistanceTo(o FractionalHex) float64 {
	dx, dy := f.X-o.X, f.Y-o.Y
	return max(math.Abs(dx), math.Abs(dy), math.Abs(-dx-dy))
}

// Lerp interpolates linearly between a (t = 0) and b (t = 1) in fractional
// space: x(t) = a.x + (b.x - a.x) * t, and likewise for y.
func Lerp(a, b Hex, t float64) FractionalHex {
	return a.Fractional().Lerp(b.Fractional(), t)
}

// Round returns the Hex nearest to f.
//
// Each cube component is rounded independently (half away from zero). The
// component with the largest rounding error is then recomputed from the other
// two, which restores x + y + z == 0 with the smallest correction. On equal
// errors z is recomputed before y, and y before x.
//
// Values outside the int32 range wrap; NaN gives an unspecified coordinate.
// Complexity: O(1).
func (f FractionalHex) Round() Hex {
	x, y, z := f.X, f.Y, f.Z()
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(rx-x), math.Abs(ry-y), math.Abs(rz-z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	}

	return Hex{x: toInt32(rx), y: toInt32(ry)}
}

// toInt32 narrows through int64 so that values just past the int32 limits
// wrap like integer arithmetic.
func toInt32(v float64) int32 {
	return int32(int64(v))
}
