// SPDX-License-Identifier: MIT

package hex

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// CubeEpsilon is the tolerance FromVec3 accepts for |x + y + z|.
const CubeEpsilon = 1e-6

// Array returns the axial components as [x, y].
func (h Hex) Array() [2]int32 { return [2]int32{h.x, h.y} }

// FromArray builds a Hex from [x, y].
func FromArray(a [2]int32) Hex { return Hex{x: a[0], y: a[1]} }

// Cube returns the cube components [x, y, z].
func (h Hex) Cube() [3]int64 { return [3]int64{int64(h.x), int64(h.y), h.Z()} }

// FromCube builds a Hex from cube components, dropping z after checking it.
//
// Errors:
//   - ErrOverflow if x or y do not fit int32.
//   - ErrCubeInvariant if x + y + z != 0.
func FromCube(c [3]int64) (Hex, error) {
	if !fitsInt32(c[0]) || !fitsInt32(c[1]) {
		return Zero, fmt.Errorf("%w: cube %v", ErrOverflow, c)
	}
	if c[2] != -c[0]-c[1] {
		return Zero, fmt.Errorf("%w: cube %v", ErrCubeInvariant, c)
	}
	return Hex{x: int32(c[0]), y: int32(c[1])}, nil
}

// Point returns the axial components as an image.Point{X: x, Y: y}.
func (h Hex) Point() image.Point { return image.Point{X: int(h.x), Y: int(h.y)} }

// FromPoint builds a Hex from an image.Point, returning ErrOverflow when a
// component does not fit int32.
func FromPoint(p image.Point) (Hex, error) {
	if !fitsInt32(int64(p.X)) || !fitsInt32(int64(p.Y)) {
		return Zero, fmt.Errorf("%w: point %v", ErrOverflow, p)
	}
	return Hex{x: int32(p.X), y: int32(p.Y)}, nil
}

// Vec2 returns the axial components as a float64 vector.
func (h Hex) Vec2() r2.Vec { return r2.Vec{X: float64(h.x), Y: float64(h.y)} }

// FromVec2 rounds an axial float64 vector to the nearest Hex.
func FromVec2(v r2.Vec) Hex { return FractionalHex{X: v.X, Y: v.Y}.Round() }

// Vec3 returns the cube components as a float64 vector.
func (h Hex) Vec3() r3.Vec {
	return r3.Vec{X: float64(h.x), Y: float64(h.y), Z: float64(h.Z())}
}

// FromVec3 rounds a cube float64 vector to the nearest Hex. It returns
// ErrCubeInvariant when |x + y + z| exceeds CubeEpsilon or is NaN.
func FromVec3(v r3.Vec) (Hex, error) {
	if !(math.Abs(v.X+v.Y+v.Z) <= CubeEpsilon) {
		return Zero, fmt.Errorf("%w: vector %v", ErrCubeInvariant, v)
	}
	return FractionalHex{X: v.X, Y: v.Y}.Round(), nil
}

// Vec2f32 returns the axial components as a float32 vector.
func (h Hex) Vec2f32() f32.Vec2 { return f32.Vec2{float32(h.x), float32(h.y)} }

// Vec3f32 returns the cube components as a float32 vector.
func (h Hex) Vec3f32() f32.Vec3 {
	return f32.Vec3{float32(h.x), float32(h.y), float32(h.Z())}
}

// FromVec2f32 rounds an axial float32 vector to the nearest Hex.
func FromVec2f32(v f32.Vec2) Hex {
	return FractionalHex{X: float64(v[0]), Y: float64(v[1])}.Round()
}

func fitsInt32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
