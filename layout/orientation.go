// SPDX-License-Identifier: MIT

package layout

import (
	"math"

	"github.com/katalvlaran/hexlath/hex"
)

const sqrt3 = 1.7320508075688772

// matrices holds the 2x2 row-major transforms of one orientation:
// forward maps axial to unit world space, inverse maps it back.
type matrices struct {
	forward [4]float64
	inverse [4]float64
	// cornerOffset is added to a direction's pointy angle to get the angle of
	// the matching corner.
	cornerOffset float64
	// rect is the bounding box of a unit-size hexagon.
	rect [2]float64
}

var (
	pointyMatrices = matrices{
		forward:      [4]float64{sqrt3, sqrt3 / 2, 0, 3.0 / 2.0},
		inverse:      [4]float64{sqrt3 / 3, -1.0 / 3.0, 0, 2.0 / 3.0},
		cornerOffset: math.Pi / 6,
		rect:         [2]float64{sqrt3, 2},
	}
	flatMatrices = matrices{
		forward:      [4]float64{3.0 / 2.0, 0, sqrt3 / 2, sqrt3},
		inverse:      [4]float64{2.0 / 3.0, 0, -1.0 / 3.0, sqrt3 / 3},
		cornerOffset: 0,
		rect:         [2]float64{2, sqrt3},
	}
)

func matricesOf(o hex.Orientation) *matrices {
	if o == hex.Flat {
		return &flatMatrices
	}
	return &pointyMatrices
}
