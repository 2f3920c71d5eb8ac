package hex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexlath/hex"
)

func TestAddSubNegMul(t *testing.T) {
	a, b := hex.New(2, -3), hex.New(-5, 7)
	require.Equal(t, hex.New(-3, 4), a.Add(b))
	require.Equal(t, hex.New(7, -10), a.Sub(b))
	require.Equal(t, hex.New(-2, 3), a.Neg())
	require.Equal(t, hex.New(6, -9), a.Mul(3))
	require.Equal(t, hex.Zero, a.Mul(0))
	require.Equal(t, a, a.Add(b).Sub(b))
	require.Equal(t, hex.Zero, a.Add(a.Neg()))
}

func TestAdd_WrapsOnOverflow(t *testing.T) {
	h := hex.New(math.MaxInt32, 0).Add(hex.New(1, 0))
	require.Equal(t, int32(math.MinInt32), h.X())
}

func TestAbs(t *testing.T) {
	require.Equal(t, hex.New(2, 3), hex.New(-2, 3).Abs())
	require.Equal(t, hex.New(4, 1), hex.New(4, -1).Abs())
	require.Equal(t, int32(math.MinInt32), hex.New(math.MinInt32, 0).Abs().X())
}

func TestSum(t *testing.T) {
	require.Equal(t, hex.Zero, hex.Sum())
	require.Equal(t, hex.New(3, -1), hex.Sum(hex.New(1, 0), hex.New(2, -2), hex.New(0, 1)))
	require.Equal(t, hex.Zero, hex.Sum(hex.New(4, -2).Ring(3)...).Sub(hex.New(4, -2).Mul(18)))
}

func TestDiv_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		h    hex.Hex
		k    int32
		q, r hex.Hex
	}{
		{"Exact", hex.New(4, 0), 2, hex.New(2, 0), hex.Zero},
		{"Remainder", hex.New(5, 0), 2, hex.New(2, 0), hex.New(1, 0)},
		{"OffAxis", hex.New(-6, 3), 3, hex.New(-2, 1), hex.Zero},
		{"NegativeDivisor", hex.New(4, -2), -2, hex.New(-2, 1), hex.Zero},
		{"ShorterThanDivisor", hex.New(1, 1), 3, hex.Zero, hex.New(1, 1)},
		{"ByOne", hex.New(7, -11), 1, hex.New(7, -11), hex.Zero},
		{"ByMinusOne", hex.New(7, -11), -1, hex.New(-7, 11), hex.Zero},
		{"ZeroDividend", hex.Zero, 5, hex.Zero, hex.Zero},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := tc.h.Div(tc.k)
			require.NoError(t, err)
			require.Equal(t, tc.q, q)

			r, err := tc.h.Rem(tc.k)
			require.NoError(t, err)
			require.Equal(t, tc.r, r)
		})
	}
}

func TestDiv_ByZero(t *testing.T) {
	h := hex.New(3, -1)
	_, err := h.Div(0)
	require.ErrorIs(t, err, hex.ErrDivideByZero)
	_, err = h.Rem(0)
	require.ErrorIs(t, err, hex.ErrDivideByZero)
	_, err = h.DivHex(hex.Zero)
	require.ErrorIs(t, err, hex.ErrDivideByZero)
	_, err = h.RemHex(hex.Zero)
	require.ErrorIs(t, err, hex.ErrDivideByZero)
}

func TestDivHex_DivisorTooLong(t *testing.T) {
	_, err := hex.New(1, 0).DivHex(hex.New(math.MinInt32, math.MinInt32))
	require.ErrorIs(t, err, hex.ErrOverflow)
}

// TestDiv_LawExhaustive checks h == (h/k)*k + h%k and that the quotient has
// length Length()/|k| (truncated) for every cell of a radius-15 disk and
// every divisor in [-7, 7] except 0.
func TestDiv_LawExhaustive(t *testing.T) {
	for _, h := range hex.Zero.Spiral(15) {
		for k := int32(-7); k <= 7; k++ {
			if k == 0 {
				continue
			}
			q, err := h.Div(k)
			require.NoError(t, err)
			r, err := h.Rem(k)
			require.NoError(t, err)

			require.Equal(t, h, q.Mul(k).Add(r), "h=%v k=%d", h, k)
			require.Equal(t, h.Length()/int64(abs(k)), q.Length(), "h=%v k=%d q=%v", h, k, q)
		}
	}
}

func TestDivHex_UsesDivisorLength(t *testing.T) {
	for _, h := range randomHexes(7, 200, 500) {
		for _, d := range []hex.Hex{hex.New(1, 0), hex.New(0, -2), hex.New(2, 1), hex.New(-3, 3)} {
			k := int32(d.Length())
			want, err := h.Div(k)
			require.NoError(t, err)
			got, err := h.DivHex(d)
			require.NoError(t, err)
			require.Equal(t, want, got)

			r, err := h.RemHex(d)
			require.NoError(t, err)
			require.Equal(t, h, got.Mul(k).Add(r))
		}
	}
}

func TestRem_LawOnLargeCoordinates(t *testing.T) {
	for _, h := range randomHexes(11, 500, math.MaxInt32/4) {
		for _, k := range []int32{2, -3, 7, 1000} {
			q, err := h.Div(k)
			require.NoError(t, err)
			r, err := h.Rem(k)
			require.NoError(t, err)
			require.Equal(t, h, q.Mul(k).Add(r))
		}
	}
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
