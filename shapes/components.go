// SPDX-License-Identifier: MIT

package shapes

import "github.com/katalvlaran/hexlath/hex"

// Components splits cells into connected regions: two cells belong to the
// same region when a chain of neighboring cells of the set joins them.
//
// Regions are returned in the order of their first cell in the input; each
// region lists its cells in breadth-first order from that cell, expanding
// neighbors in hex.Directions() order. Duplicate input cells are ignored.
//
// Time:   O(n·6) for n cells.
// Memory: O(n) for the membership set and output.
func Components(cells []hex.Hex) [][]hex.Hex {
	land := make(map[hex.Hex]bool, len(cells))
	for _, h := range cells {
		land[h] = false
	}

	var comps [][]hex.Hex
	for _, start := range cells {
		if land[start] {
			continue
		}
		// BFS to collect the region
		land[start] = true
		queue := []hex.Hex{start}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range queue[qi].AllNeighbors() {
				seen, ok := land[n]
				if !ok || seen {
					continue
				}
				land[n] = true
				queue = append(queue, n)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
