package hex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexlath/hex"
)

func TestLine_Straight(t *testing.T) {
	require.Equal(t,
		[]hex.Hex{hex.Zero, hex.New(1, 0), hex.New(2, 0), hex.New(3, 0)},
		hex.Line(hex.Zero, hex.New(3, 0)))
	require.Equal(t,
		[]hex.Hex{hex.New(2, 2), hex.New(2, 1), hex.New(2, 0)},
		hex.New(2, 2).LineTo(hex.New(2, 0)))
	require.Equal(t, []hex.Hex{hex.New(5, -5)}, hex.Line(hex.New(5, -5), hex.New(5, -5)))
}

func TestLine_Diagonal(t *testing.T) {
	// A diagonal line passes exactly along a cell edge; the nudge picks one side.
	got := hex.Line(hex.Zero, hex.New(2, -4))
	require.Len(t, got, 5)
	require.Equal(t, hex.New(1, -2), got[2])
}

// TestLine_ConnectedExhaustive draws every line between two cells of a
// radius-4 disk.
func TestLine_ConnectedExhaustive(t *testing.T) {
	disk := hex.Zero.Spiral(4)
	for _, a := range disk {
		for _, b := range disk {
			line := a.LineTo(b)
			require.Len(t, line, int(a.DistanceTo(b))+1)
			require.Equal(t, a, line[0])
			require.Equal(t, b, line[len(line)-1])
			for i := 1; i < len(line); i++ {
				require.Equal(t, int64(1), line[i-1].DistanceTo(line[i]), "a=%v b=%v i=%d", a, b, i)
				require.Equal(t, int64(i), a.DistanceTo(line[i]))
			}
		}
	}
}

func TestLine_FarEndpoints(t *testing.T) {
	for i, a := range randomHexes(51, 20, 1_000_000) {
		b := a.Add(hex.New(int32(i*7-60), int32(40-i*3)))
		line := hex.Line(a, b)
		require.Len(t, line, int(a.DistanceTo(b))+1)
		for j := 1; j < len(line); j++ {
			require.Equal(t, int64(1), line[j-1].DistanceTo(line[j]))
		}
	}
}
