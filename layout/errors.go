// SPDX-License-Identifier: MIT

package layout

import "errors"

// ErrInvalidSize indicates a hexagon size component that is zero, negative,
// NaN or infinite. Such a layout cannot be inverted.
var ErrInvalidSize = errors.New("layout: invalid hexagon size")
