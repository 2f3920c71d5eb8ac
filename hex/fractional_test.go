package hex_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexlath/hex"
)

func TestRound_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		f    hex.FractionalHex
		want hex.Hex
	}{
		{"Integer", hex.FractionalHex{X: 2, Y: -3}, hex.New(2, -3)},
		{"NearOrigin", hex.FractionalHex{X: 0.2, Y: 0.1}, hex.Zero},
		{"XError", hex.FractionalHex{X: 0.45, Y: 0.3}, hex.New(1, 0)},
		{"YError", hex.FractionalHex{X: 0.3, Y: 0.45}, hex.New(0, 1)},
		{"YErrorTiesX", hex.FractionalHex{X: 0.6, Y: 0.6}, hex.New(1, 0)},
		{"ZErrorTies", hex.FractionalHex{X: 0.4, Y: 0.4}, hex.New(0, 1)},
		{"Negative", hex.FractionalHex{X: -1.4, Y: 2.3}, hex.New(-1, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.f.Round())
		})
	}
}

// TestRound_NearestCell checks that the rounded cell is never farther from
// the fractional point than any of its neighbors.
func TestRound_NearestCell(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for range 2000 {
		f := hex.FractionalHex{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100}
		h := f.Round()
		requireCube(t, h)
		d := f.DistanceTo(h.Fractional())
		require.LessOrEqual(t, d, 2.0/3.0+1e-9, "f=%v h=%v", f, h)
		for _, n := range h.AllNeighbors() {
			require.LessOrEqual(t, cubeEuclid(f, h.Fractional()), cubeEuclid(f, n.Fractional())+1e-9)
		}
	}
}

func TestLerp(t *testing.T) {
	a, b := hex.New(-3, 5), hex.New(7, -1)
	require.Equal(t, a.Fractional(), hex.Lerp(a, b, 0))
	require.Equal(t, b.Fractional(), hex.Lerp(a, b, 1))
	require.Equal(t, hex.FractionalHex{X: 2, Y: 2}, hex.Lerp(a, b, 0.5))
	require.Equal(t, hex.FractionalHex{X: -8, Y: 8}, hex.Lerp(a, b, -0.5))
	require.InDelta(t, -4.0, hex.Lerp(a, b, 0.5).Z(), 1e-12)
}

func TestRoundLerp_Endpoints(t *testing.T) {
	hs := append(randomHexes(41, 300, 1_000_000), extremeHexes()...)
	for i, a := range hs {
		b := hs[(i+3)%len(hs)]
		require.Equal(t, a, hex.Lerp(a, b, 0).Round())
		require.Equal(t, b, hex.Lerp(a, b, 1).Round())
		requireCube(t, hex.Lerp(a, b, 0.3).Round())
	}
}

func TestFractional_Arithmetic(t *testing.T) {
	f := hex.FractionalHex{X: 1.5, Y: -0.5}
	require.Equal(t, hex.FractionalHex{X: 3, Y: -1}, f.Scale(2))
	require.Equal(t, hex.FractionalHex{X: 2.5, Y: 0.5}, f.Add(hex.FractionalHex{X: 1, Y: 1}))
	require.InDelta(t, 1.0, f.DistanceTo(hex.FractionalHex{X: 0.5, Y: 0.5}), 1e-12)
}

// cubeEuclid is the Euclidean distance between two points in cube space,
// which orders cells the same way as the hexagonal Voronoi regions.
func cubeEuclid(a, b hex.FractionalHex) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z()-b.Z()
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
