package hex_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexlath/hex"
)

// randomHexes returns n deterministic coordinates with components in
// [-limit, limit].
func randomHexes(seed int64, n int, limit int32) []hex.Hex {
	rng := rand.New(rand.NewSource(seed))
	res := make([]hex.Hex, n)
	for i := range res {
		span := 2*int64(limit) + 1
		x := rng.Int63n(span) - int64(limit)
		y := rng.Int63n(span) - int64(limit)
		res[i] = hex.New(int32(x), int32(y))
	}
	return res
}

// extremeHexes lists coordinates at or near the int32 limits.
func extremeHexes() []hex.Hex {
	return []hex.Hex{
		hex.New(math.MaxInt32, math.MaxInt32),
		hex.New(math.MinInt32, math.MinInt32),
		hex.New(math.MaxInt32, math.MinInt32),
		hex.New(math.MinInt32, math.MaxInt32),
		hex.New(math.MaxInt32, 0),
		hex.New(0, math.MinInt32),
		hex.New(math.MinInt32+1, math.MaxInt32-1),
	}
}

// requireCube asserts the cube invariant on the widened components.
func requireCube(t *testing.T, h hex.Hex) {
	t.Helper()
	c := h.Cube()
	require.Zero(t, c[0]+c[1]+c[2], "cube invariant broken for %v", h)
}
