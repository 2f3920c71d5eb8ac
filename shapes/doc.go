// SPDX-License-Identifier: MIT

// Package shapes builds common regions of hex cells and bounds maps that
// wrap around.
//
// What:
//   - Bounds: a hexagonal region (center, radius) with Contains, Len,
//     AllCoords, Intersects and Wrap.
//   - Hexagon, Parallelogram, Triangle, Rectangle: cell lists for map
//     generation, each cell listed once.
//
// Wrapping:
//
// A hexagonal map of radius r tiles the plane when copies of it are
// centered on the "mirror" cells: (2r+1, -r) relative to the center and its
// five rotations. Bounds.Wrap moves any coordinate to the copy of it that
// lies inside the bounds, so a unit leaving the map on one side re-enters on
// the opposite side.
//
//	         _____
//	   _____/  m1 \_____
//	  /  m2 \_____/  m0 \
//	  \_____/ map \_____/
//	  /  m3 \_____/  m5 \
//	  \_____/  m4 \_____/
//	        \_____/
//
// Complexity:
//   - Contains, Len, Intersects, Wrap: O(1).
//   - Generators and AllCoords: O(n) for n returned cells.
package shapes
