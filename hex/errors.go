// SPDX-License-Identifier: MIT

package hex

import "errors"

// Every message is prefixed with "hex: ". Sentinels are returned directly or
// wrapped with fmt.Errorf("...: %w", ErrX); match them with errors.Is.
var (
	// ErrDivideByZero is returned by Div/Rem with k == 0 and by
	// DivHex/RemHex with the zero hex as divisor.
	ErrDivideByZero = errors.New("hex: division by zero")

	// ErrOverflow indicates a value that does not fit the int32 components
	// of a Hex (vector conversion, or a divisor whose length exceeds int32).
	ErrOverflow = errors.New("hex: value out of int32 range")

	// ErrEmptySequence is returned by aggregates over zero coordinates.
	ErrEmptySequence = errors.New("hex: empty coordinate sequence")

	// ErrCubeInvariant is returned when three cube components do not sum to zero.
	ErrCubeInvariant = errors.New("hex: cube components must sum to zero")

	// ErrUnknownName is returned by UnmarshalText for unknown enum names.
	ErrUnknownName = errors.New("hex: unknown name")
)
