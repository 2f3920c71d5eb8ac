// SPDX-License-Identifier: MIT

// Package hexlath is an exact, overflow-safe hexagonal grid coordinate
// library for simulations and games that want hex arithmetic without a
// rendering framework.
//
// What is inside?
//
//	hex/        the Hex value type, directions, conversions, rotation,
//	            rings, spirals, lines, rounding and averaging
//	ringcache/  rings precomputed once for a center and radius
//	layout/     flat/pointy orientation matrices, hex <-> world vectors,
//	            YAML layout configs
//	shapes/     bounded maps with wraparound, shape generators and
//	            connected regions
//
// Why hexlath?
//
//   - Immutable values: every operation returns a new Hex
//   - The cube invariant x + y + z == 0 cannot be broken: z is derived
//   - Distances are computed in widened arithmetic, so coordinates near
//     the int32 limits never overflow
//   - Failures (division by zero, empty aggregates, out-of-range values)
//     are sentinel errors matched with errors.Is; nothing panics on input
//
// Quick ASCII example (pointy orientation, ring of radius 1):
//
//	      Top   TopRight
//	TopLeft  (0,0)  BottomRight
//	  BottomLeft  Bottom
//
// Logging is silent by default; see SetLogger.
//
//	go get github.com/katalvlaran/hexlath
package hexlath
