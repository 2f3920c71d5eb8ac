// SPDX-License-Identifier: MIT

// Package hex implements the hexagonal coordinate value type and every
// algorithm that operates on it.
//
// What:
//
//   - Hex is an immutable axial coordinate (x, y) with derived z = -x - y,
//     so the cube invariant x + y + z == 0 holds by construction.
//   - Arithmetic: Add, Sub, Neg, Mul, Abs and length-respecting Div/Rem.
//   - Distance: DistanceTo, UnsignedDistanceTo, Length, computed in int64.
//   - Directions: six neighbor directions and six diagonals, rotation,
//     angles for flat and pointy orientations.
//   - Conversions: offset (even/odd rows/columns), doubled, int and float
//     vectors (image.Point, gonum r2/r3, x/image f32).
//   - Enumeration: Ring, Spiral, Rings, Range and LineTo; RangeFOV for line of sight.
//   - Interpolation: Lerp into FractionalHex and cube rounding back to Hex.
//   - Aggregates: Mean, Average, Center over slices or iter.Seq.
//
// Axes (pointy orientation, y pointing down):
//
//	            x Axis
//	            ___
//	           /   \
//	       +--+  1  +--+
//	      / 2  \___/  0 \
//	      \    /   \    /
//	       +--+     +--+
//	      /    \___/    \
//	      \ 3  /   \  5 /
//	       +--+  4  +--+   y Axis
//	           \___/
//
// Overflow:
//
//	Components are int32. Add, Sub, Mul and rotations wrap like Go integer
//	arithmetic. Distances, lengths, Z and conversions widen to int64 so that
//	they are exact for every representable Hex.
//
// Complexity:
//
//   - Arithmetic, rotation, conversions: O(1).
//   - Ring: O(r). Spiral, Range: O(r²). LineTo: O(d), d = distance. RangeFOV: O(r³).
//   - Mean/Average: O(n).
//
// Errors:
//
//   - ErrDivideByZero:  Div/Rem by 0, DivHex/RemHex by the zero hex.
//   - ErrOverflow:      divisor length or vector component outside int32.
//   - ErrEmptySequence: Mean/Average over no coordinates.
//   - ErrCubeInvariant: FromCube/FromVec3 with x + y + z != 0.
//   - ErrUnknownName:   UnmarshalText of an unknown enum name.
package hex
