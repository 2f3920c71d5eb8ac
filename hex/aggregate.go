// SPDX-License-Identifier: MIT

package hex

import (
	"iter"
	"slices"
)

// Mean returns the arithmetic mean of hexes in fractional space.
// Components are summed in int64, so the result does not depend on input
// order. It returns ErrEmptySequence for an empty slice.
// Complexity: O(n).
func Mean(hexes []Hex) (FractionalHex, error) {
	return MeanSeq(slices.Values(hexes))
}

// MeanSeq is Mean over an iterator. The sequence must be finite.
func MeanSeq(seq iter.Seq[Hex]) (FractionalHex, error) {
	var sx, sy, n int64
	for h := range seq {
		sx += int64(h.x)
		sy += int64(h.y)
		n++
	}
	if n == 0 {
		return FractionalHex{}, ErrEmptySequence
	}

	return FractionalHex{X: float64(sx) / float64(n), Y: float64(sy) / float64(n)}, nil
}

// Average returns the cell nearest to the mean of hexes: the cube components
// are summed, divided by the count and rounded with FractionalHex.Round.
// It returns ErrEmptySequence for an empty slice.
func Average(hexes []Hex) (Hex, error) {
	return AverageSeq(slices.Values(hexes))
}

// AverageSeq is Average over an iterator. The sequence must be finite.
func AverageSeq(seq iter.Seq[Hex]) (Hex, error) {
	m, err := MeanSeq(seq)
	if err != nil {
		return Zero, err
	}

	return m.Round(), nil
}

// Center returns the centroid cell of hexes. It is Average under the name
// used for regions (a ring's Center is its center coordinate).
func Center(hexes []Hex) (Hex, error) {
	return Average(hexes)
}
