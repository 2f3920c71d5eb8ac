// SPDX-License-Identifier: MIT

// Package layout maps hexagonal coordinates to world (pixel) space and back.
//
// What:
//   - Layout.HexToWorld: center of a cell in world space.
//   - Layout.WorldToHex: the cell containing a world position.
//   - Layout.Corners: the six vertices of a cell, counter-clockwise.
//   - Layout.RectSize: the bounding box of a single cell.
//   - Config: a YAML-friendly description of a Layout (ParseConfig, LoadConfig).
//
// Axes:
//
// By default the hex x axis points right and the hex y axis points down the
// screen, which is towards negative world y. InvertX and InvertY flip each
// axis independently for displays with a different convention.
//
// World positions are gonum r2.Vec values; the hex package converts them
// further to float32 vectors when a renderer needs them.
//
// Complexity:
//   - Every method is O(1).
//
// Errors:
//   - ErrInvalidSize from Config.Layout for zero, negative or non-finite sizes.
//   - WithSize panics on the same inputs (programmer error).
package layout
