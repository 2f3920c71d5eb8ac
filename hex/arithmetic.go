// SPDX-License-Identifier: MIT

package hex

import "math"

// Add returns h + o. Components wrap on int32 overflow.
func (h Hex) Add(o Hex) Hex {
	return Hex{x: h.x + o.x, y: h.y + o.y}
}

// Sub returns h - o. Components wrap on int32 overflow.
func (h Hex) Sub(o Hex) Hex {
	return Hex{x: h.x - o.x, y: h.y - o.y}
}

// Neg returns -h, the reflection of h through the origin.
func (h Hex) Neg() Hex {
	return Hex{x: -h.x, y: -h.y}
}

// Mul scales h by k. Components wrap on int32 overflow.
func (h Hex) Mul(k int32) Hex {
	return Hex{x: h.x * k, y: h.y * k}
}

// Abs returns the component-wise absolute value of (x, y).
// math.MinInt32 has no positive counterpart and is returned unchanged.
func (h Hex) Abs() Hex {
	return Hex{x: abs32(h.x), y: abs32(h.y)}
}

// Div divides h by k along the hex length metric: the result points in the
// direction of h (or the opposite one for negative k) and has length
// Length()/|k|, the quotient truncated toward zero. Components are rounded
// with FractionalHex.Round, so the cube invariant is kept.
//
// Div returns ErrDivideByZero when k == 0.
// Complexity: O(1).
func (h Hex) Div(k int32) (Hex, error) {
	if k == 0 {
		return Zero, ErrDivideByZero
	}
	length := h.Length()
	newLength := length / int64(k)
	if newLength == 0 {
		return Zero, nil
	}
	scaled := FractionalHex{
		X: float64(h.x) * float64(newLength) / float64(length),
		Y: float64(h.y) * float64(newLength) / float64(length),
	}

	return scaled.Round(), nil
}

// Rem returns the remainder paired with Div so that
// h == q.Mul(k).Add(r) where q, _ = h.Div(k) and r, _ = h.Rem(k).
//
// Rem returns ErrDivideByZero when k == 0.
func (h Hex) Rem(k int32) (Hex, error) {
	q, err := h.Div(k)
	if err != nil {
		return Zero, err
	}

	return h.Sub(q.Mul(k)), nil
}

// DivHex divides h by the length of d, see Div.
//
// Errors:
//   - ErrDivideByZero if d is the zero hex.
//   - ErrOverflow if d.Length() exceeds math.MaxInt32.
func (h Hex) DivHex(d Hex) (Hex, error) {
	k, err := d.divisor()
	if err != nil {
		return Zero, err
	}

	return h.Div(k)
}

// RemHex returns the remainder paired with DivHex:
// h == q.Mul(int32(d.Length())).Add(r).
func (h Hex) RemHex(d Hex) (Hex, error) {
	k, err := d.divisor()
	if err != nil {
		return Zero, err
	}

	return h.Rem(k)
}

// divisor returns the length of d as an int32 scalar divisor.
func (h Hex) divisor() (int32, error) {
	l := h.Length()
	switch {
	case l == 0:
		return 0, ErrDivideByZero
	case l > math.MaxInt32:
		return 0, ErrOverflow
	}

	return int32(l), nil
}

// Sum returns the sum of all coordinates, Zero for none.
// Components wrap on int32 overflow; use Mean for a widened accumulation.
func Sum(hexes ...Hex) Hex {
	var s Hex
	for _, h := range hexes {
		s = s.Add(h)
	}

	return s
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
