// SPDX-License-Identifier: MIT

package ringcache

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/hexlath"
	"github.com/katalvlaran/hexlath/hex"
)

// Cache holds the rings 0..Radius() around a center. The zero value is not
// usable; build one with New.
type Cache struct {
	center hex.Hex
	radius uint32
	// cells holds every ring back to back in spiral order.
	cells []hex.Hex
	// starts[k] is the index of ring k in cells; starts[radius+1] == len(cells).
	starts []int
}

// New computes the rings of radius 0 through radius around the configured
// center. Ring k of the result equals center.Ring(k), mapped through the
// transform when WithTransform is given.
// Complexity: O(radius²) time and memory.
func New(radius uint32, opts ...Option) *Cache {
	cfg := newConfig(opts...)

	c := &Cache{
		center: cfg.center,
		radius: radius,
		cells:  make([]hex.Hex, 0, hex.RangeCount(radius)),
		starts: make([]int, 0, int(radius)+2),
	}
	for r := uint32(0); ; r++ {
		c.starts = append(c.starts, len(c.cells))
		c.cells = append(c.cells, cfg.center.Ring(r)...)
		if r == radius {
			break
		}
	}
	c.starts = append(c.starts, len(c.cells))

	if cfg.transform != nil {
		for i, h := range c.cells {
			c.cells[i] = cfg.transform(h)
		}
	}

	hexlath.Logger().Debug("ringcache: built",
		"center", cfg.center.String(),
		"radius", radius,
		"cells", len(c.cells),
		"custom", cfg.transform != nil,
	)

	return c
}

// Center returns the center the rings were walked around (before any
// transform).
func (c *Cache) Center() hex.Hex { return c.center }

// Radius returns the largest cached ring radius.
func (c *Cache) Radius() uint32 { return c.radius }

// Len returns the total number of cached cells, hex.RangeCount(Radius()).
func (c *Cache) Len() int { return len(c.cells) }

// Ring returns a copy of the ring at radius k.
// Returns ErrRadiusOutOfRange if k > Radius().
func (c *Cache) Ring(k uint32) ([]hex.Hex, error) {
	if k > c.radius {
		return nil, fmt.Errorf("%w: %d > %d", ErrRadiusOutOfRange, k, c.radius)
	}
	return slices.Clone(c.cells[c.starts[k]:c.starts[k+1]]), nil
}

// Rings returns a copy of every cached ring, indexed by radius.
func (c *Cache) Rings() [][]hex.Hex {
	res := make([][]hex.Hex, len(c.starts)-1)
	for k := range res {
		res[k] = slices.Clone(c.cells[c.starts[k]:c.starts[k+1]])
	}
	return res
}

// Spiral returns a copy of all cached cells in spiral order.
func (c *Cache) Spiral() []hex.Hex {
	return slices.Clone(c.cells)
}
