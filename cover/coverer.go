package cover

import (
	"cmp"
	"math"
	"slices"

	"github.com/eak1mov/go-utiles/mercator"
	"github.com/eak1mov/go-utiles/tile"
	"github.com/paulmach/orb"
)

type gridPoint struct {
	x, y int64
}

type coverer struct {
	zoom  uint32
	size  int64
	tiles tile.Set
}

func newCoverer(zoom uint32) *coverer {
	return &coverer{zoom: zoom, size: int64(1) << zoom, tiles: make(tile.Set)}
}

// add wraps the column around the antimeridian and clamps the row into the grid.
func (c *coverer) add(x, y int64) {
	y = max(0, min(y, c.size-1))
	x = ((x % c.size) + c.size) % c.size
	c.tiles.Add(tile.ID{X: uint32(x), Y: uint32(y), Z: c.zoom})
}

func (c *coverer) geometry(g orb.Geometry) error {
	switch g := g.(type) {
	case orb.Point:
		c.point(g)
	case orb.MultiPoint:
		for _, p := range g {
			c.point(p)
		}
	case orb.LineString:
		c.line(g, nil)
	case orb.MultiLineString:
		for _, ls := range g {
			c.line(ls, nil)
		}
	case orb.Ring:
		c.polygon(orb.Polygon{g})
	case orb.Polygon:
		c.polygon(g)
	case orb.MultiPolygon:
		for _, p := range g {
			c.polygon(p)
		}
	case orb.Collection:
		for _, member := range g {
			if err := c.geometry(member); err != nil {
				return err
			}
		}
	case orb.Bound:
		return c.bound(g)
	}
	return nil
}

// fraction keeps y inside [0, 2^zoom] where the projection of MaxLat rounds slightly outside.
func (c *coverer) fraction(p orb.Point) (float64, float64) {
	x, y := mercator.Fraction(p[0], p[1], c.zoom)
	return x, math.Max(0, math.Min(y, float64(c.size)))
}

func (c *coverer) point(p orb.Point) {
	x, y := c.fraction(p)
	c.add(int64(math.Floor(x)), int64(math.Floor(y)))
}

func (c *coverer) bound(b orb.Bound) error {
	ranges, err := mercator.TileRanges(mercator.BBoxFromBound(b), c.zoom)
	if err != nil {
		return err
	}
	for t := range ranges.All() {
		c.tiles.Add(t)
	}
	return nil
}

// line walks every tile crossed by the segments of coords. When ring is not nil it also
// records the tile where the walk enters each new row, closing the ring at the end.
func (c *coverer) line(coords []orb.Point, ring *[]gridPoint) {
	var x, y, prevX, prevY int64
	started := false
	visit := func() {
		c.add(x, y)
		if ring != nil && (!started || y != prevY) {
			*ring = append(*ring, gridPoint{x, y})
		}
		prevX, prevY, started = x, y, true
	}
	for i := 0; i+1 < len(coords); i++ {
		x0, y0 := c.fraction(coords[i])
		x1, y1 := c.fraction(coords[i+1])
		dx, dy := x1-x0, y1-y0
		if dx == 0 && dy == 0 {
			continue
		}

		sx, sy := int64(1), int64(1)
		if dx < 0 {
			sx = -1
		}
		if dy < 0 {
			sy = -1
		}
		x, y = int64(math.Floor(x0)), int64(math.Floor(y0))

		tMaxX, tMaxY := math.Inf(1), math.Inf(1)
		if dx != 0 {
			tMaxX = math.Abs((step(dx) + float64(x) - x0) / dx)
		}
		if dy != 0 {
			tMaxY = math.Abs((step(dy) + float64(y) - y0) / dy)
		}
		tdx, tdy := math.Abs(float64(sx)/dx), math.Abs(float64(sy)/dy)

		if !started || x != prevX || y != prevY {
			visit()
		}
		for tMaxX < 1 || tMaxY < 1 {
			if tMaxX < tMaxY {
				tMaxX += tdx
				x += sx
			} else {
				tMaxY += tdy
				y += sy
			}
			visit()
		}
	}
	if ring != nil && len(*ring) > 0 && y == (*ring)[0].y {
		*ring = (*ring)[:len(*ring)-1]
	}
}

func step(d float64) float64 {
	if d > 0 {
		return 1
	}
	return 0
}

// polygon traces all rings, then fills each row between consecutive pairs of crossings.
// Local extrema and horizontal runs of a ring are not crossings.
func (c *coverer) polygon(p orb.Polygon) {
	var crossings []gridPoint
	for _, r := range p {
		var ring []gridPoint
		c.line(r, &ring)
		n := len(ring)
		for j, k := 0, n-1; j < n; k, j = j, j+1 {
			m := (j + 1) % n
			y := ring[j].y
			if (y > ring[k].y || y > ring[m].y) &&
				(y < ring[k].y || y < ring[m].y) &&
				y != ring[m].y {
				crossings = append(crossings, ring[j])
			}
		}
	}

	slices.SortFunc(crossings, func(a, b gridPoint) int {
		return cmp.Or(cmp.Compare(a.y, b.y), cmp.Compare(a.x, b.x))
	})
	for i := 0; i+1 < len(crossings); i += 2 {
		y := crossings[i].y
		for x := crossings[i].x + 1; x < crossings[i+1].x; x++ {
			c.add(x, y)
		}
	}
}
