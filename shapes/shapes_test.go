package shapes_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexlath/hex"
	"github.com/katalvlaran/hexlath/shapes"
)

func requireDistinct(t *testing.T, hs []hex.Hex) {
	t.Helper()
	seen := make(map[hex.Hex]struct{}, len(hs))
	for _, h := range hs {
		_, dup := seen[h]
		require.False(t, dup, "duplicate %v", h)
		seen[h] = struct{}{}
	}
}

func TestHexagon(t *testing.T) {
	c := hex.New(2, -7)
	got := shapes.Hexagon(c, 4)
	require.Len(t, got, hex.RangeCount(4))
	requireDistinct(t, got)

	want := shapes.NewBounds(c, 4).AllCoords()
	slices.SortFunc(want, hex.Compare)
	require.Equal(t, want, slices.SortedFunc(slices.Values(got), hex.Compare))
}

func TestParallelogram(t *testing.T) {
	got := shapes.Parallelogram(hex.New(-1, 0), hex.New(1, 3))
	require.Len(t, got, 12)
	requireDistinct(t, got)
	require.Equal(t, hex.New(-1, 0), got[0])
	require.Equal(t, hex.New(1, 3), got[len(got)-1])
	for _, h := range got {
		require.True(t, h.X() >= -1 && h.X() <= 1 && h.Y() >= 0 && h.Y() <= 3)
	}

	require.Equal(t, []hex.Hex{hex.New(4, 4)}, shapes.Parallelogram(hex.New(4, 4), hex.New(4, 4)))
	require.Nil(t, shapes.Parallelogram(hex.New(1, 0), hex.New(0, 5)))
	require.Nil(t, shapes.Parallelogram(hex.New(0, 1), hex.New(5, 0)))
}

func TestTriangle(t *testing.T) {
	require.Equal(t, []hex.Hex{hex.Zero}, shapes.Triangle(0))
	for size := uint32(1); size <= 8; size++ {
		got := shapes.Triangle(size)
		require.Len(t, got, int((size+1)*(size+2)/2))
		requireDistinct(t, got)
		for _, h := range got {
			require.True(t, h.X() >= 0 && h.Y() >= 0)
			require.LessOrEqual(t, h.Length(), int64(size))
		}
	}
}

func TestRectangle(t *testing.T) {
	lo, hi := hex.Offset{Col: -2, Row: -1}, hex.Offset{Col: 3, Row: 2}
	for _, mode := range []hex.OffsetMode{hex.EvenColumns, hex.OddColumns, hex.EvenRows, hex.OddRows} {
		t.Run(mode.String(), func(t *testing.T) {
			got := shapes.Rectangle(lo, hi, mode)
			require.Len(t, got, 6*4)
			requireDistinct(t, got)
			for i, h := range got {
				o := h.ToOffset(mode)
				require.Equal(t, lo.Col+int32(i%6), o.Col)
				require.Equal(t, lo.Row+int32(i/6), o.Row)
			}
		})
	}
	require.Nil(t, shapes.Rectangle(hi, lo, hex.OddRows))
}
