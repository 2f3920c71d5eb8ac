// SPDX-License-Identifier: MIT

package ringcache

import "errors"

// ErrRadiusOutOfRange indicates a ring lookup beyond the radius the cache
// was built for. Build a larger cache instead of widening the lookup.
var ErrRadiusOutOfRange = errors.New("ringcache: radius out of range")
