// SPDX-License-Identifier: MIT

package hex

import (
	"bytes"
	"fmt"
)

// Orientation selects the hexagon layout style. It only affects angles and
// world-space conversions, never coordinate arithmetic.
type Orientation uint8

const (
	// Pointy hexagons have a vertex at the top. This is the zero value.
	Pointy Orientation = iota
	// Flat hexagons have an edge at the top.
	Flat
)

var orientationNames = [2]string{"pointy", "flat"}

// AngleOffset returns the rotation in radians of o relative to the pointy
// reference angle: 0 for Pointy, π/6 for Flat.
func (o Orientation) AngleOffset() float64 {
	if o == Flat {
		return DirectionAngleOffset
	}
	return 0
}

// String returns "pointy" or "flat".
func (o Orientation) String() string {
	if o == Flat {
		return orientationNames[1]
	}
	return orientationNames[0]
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	i, err := lookupName(orientationNames[:], text)
	if err != nil {
		return err
	}
	*o = Orientation(i)
	return nil
}

// lookupName returns the index of text in names, ignoring ASCII case.
func lookupName(names []string, text []byte) (int, error) {
	for i, name := range names {
		if bytes.EqualFold([]byte(name), text) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, text)
}
