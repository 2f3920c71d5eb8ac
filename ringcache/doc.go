// SPDX-License-Identifier: MIT

// Package ringcache precomputes the rings around a center once and serves
// them read-only afterwards.
//
// What:
//
//	c := ringcache.New(8, ringcache.WithCenter(hex.New(3, -1)))
//	ring5, _ := c.Ring(5)  // 30 cells, same order as hex.Hex.Ring
//	all := c.Spiral()      // rings 0..8 concatenated
//
// A Cache owns one contiguous arena of cells in spiral order plus the start
// index of every ring, so a lookup is a slice copy with no recomputation.
// WithTransform builds "custom" rings: the function is applied to every
// cell once, at construction.
//
// Why:
//   - Field-of-view sweeps, area effects and procedural placement ask for the
//     same rings repeatedly; walking them again each time is wasted work.
//
// Concurrency:
//   - A Cache has no internal locking and never changes after New returns.
//     Publish it to other goroutines with any happens-before edge
//     (sync.Once, a channel send) and read it concurrently.
//   - Accessors return copies, so callers may modify the results.
//
// Complexity:
//   - New: O(r²) time and memory for radius r.
//   - Ring(k): O(k); Spiral: O(r²); Center, Radius, Len: O(1).
//
// Errors:
//   - ErrRadiusOutOfRange from Ring when k exceeds the cached radius.
package ringcache
