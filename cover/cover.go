// Package cover computes the set of tiles a geometry touches or encloses at a given zoom.
//
// Lines are traced with a grid walk over fractional tile coordinates. Polygon rings are
// traced the same way and the rows between their scanline crossings are filled, so holes
// are subtracted by the even-odd rule. Longitudes are projected without wrapping and tile
// columns are taken modulo 2^zoom, which covers geometries written across the antimeridian
// (e.g. from 170 to 190 degrees) as if they had been split there.
package cover

import (
	"errors"
	"fmt"
	"math"

	"github.com/eak1mov/go-utiles/pyramid"
	"github.com/eak1mov/go-utiles/tile"
	"github.com/paulmach/orb"
)

var ErrParse = errors.New("utiles: invalid geometry")

type Option func(*config)

type config struct {
	minZoom    uint32
	hasMinZoom bool
}

// WithMinZoom sets the coarsest zoom a caller is interested in.
// It must not exceed the target zoom and does not change the result.
func WithMinZoom(z uint32) Option {
	return func(c *config) {
		c.minZoom = z
		c.hasMinZoom = true
	}
}

// Geometry returns the tiles of the given zoom covered by the geometry.
// A nil geometry or an empty collection yields an empty set.
func Geometry(g orb.Geometry, zoom uint32, opts ...Option) (tile.Set, error) {
	if err := checkZoom(zoom, opts); err != nil {
		return nil, err
	}
	if err := validate(g); err != nil {
		return nil, err
	}
	c := newCoverer(zoom)
	if err := c.geometry(g); err != nil {
		return nil, err
	}
	return c.tiles, nil
}

// Simplified returns the coverage of the geometry reduced by pyramid.Simplify, with no
// tile coarser than minZoom.
func Simplified(g orb.Geometry, zoom, minZoom uint32) (tile.Set, error) {
	tiles, err := Geometry(g, zoom, WithMinZoom(minZoom))
	if err != nil {
		return nil, err
	}
	return pyramid.Simplify(tiles, pyramid.WithMinZoom(minZoom)), nil
}

func checkZoom(zoom uint32, opts []Option) error {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if zoom > tile.MaxZoom {
		return fmt.Errorf("%w: %d > %d", tile.ErrInvalidZoom, zoom, tile.MaxZoom)
	}
	if cfg.hasMinZoom && cfg.minZoom > zoom {
		return fmt.Errorf("%w: minzoom %d > zoom %d", tile.ErrInvalidZoom, cfg.minZoom, zoom)
	}
	return nil
}

func validate(g orb.Geometry) error {
	switch g := g.(type) {
	case nil:
		return nil
	case orb.Point:
		return validatePoints(g)
	case orb.MultiPoint:
		return validatePoints(g...)
	case orb.LineString:
		return validatePoints(g...)
	case orb.Ring:
		return validatePoints(g...)
	case orb.MultiLineString:
		for _, ls := range g {
			if err := validatePoints(ls...); err != nil {
				return err
			}
		}
	case orb.Polygon:
		for _, r := range g {
			if err := validatePoints(r...); err != nil {
				return err
			}
		}
	case orb.MultiPolygon:
		for _, p := range g {
			if err := validate(p); err != nil {
				return err
			}
		}
	case orb.Collection:
		for _, member := range g {
			if err := validate(member); err != nil {
				return err
			}
		}
	case orb.Bound:
		if g.Min.Y() > g.Max.Y() {
			return fmt.Errorf("%w: bound %v has min above max", ErrParse, g)
		}
		return validatePoints(g.Min, g.Max)
	default:
		return fmt.Errorf("%w: unsupported geometry type %T", ErrParse, g)
	}
	return nil
}

func validatePoints(points ...orb.Point) error {
	for _, p := range points {
		if math.IsNaN(p[0]) || math.IsInf(p[0], 0) || math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
			return fmt.Errorf("%w: non-finite coordinate %v", ErrParse, p)
		}
	}
	return nil
}
