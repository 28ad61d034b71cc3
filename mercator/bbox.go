package mercator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

var ErrInvalidBBox = errors.New("utiles: invalid bbox")

// BBox is a geographic bounding box. West > East marks a box crossing the antimeridian.
type BBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

// ParseBBox parses "west,south,east,north", a whitespace separated list or a JSON array.
// Two numbers describe a point.
func ParseBBox(s string) (BBox, error) {
	s = strings.TrimSpace(s)
	var values []float64
	if strings.HasPrefix(s, "[") {
		if err := json.Unmarshal([]byte(s), &values); err != nil {
			return BBox{}, fmt.Errorf("%w: %q: %w", ErrInvalidBBox, s, err)
		}
	} else {
		for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return BBox{}, fmt.Errorf("%w: %q: %w", ErrInvalidBBox, s, err)
			}
			values = append(values, v)
		}
	}
	var b BBox
	switch len(values) {
	case 2:
		b = BBox{West: values[0], South: values[1], East: values[0], North: values[1]}
	case 4:
		b = BBox{West: values[0], South: values[1], East: values[2], North: values[3]}
	default:
		return BBox{}, fmt.Errorf("%w: %q: want 2 or 4 numbers, got %d", ErrInvalidBBox, s, len(values))
	}
	if err := b.Check(); err != nil {
		return BBox{}, err
	}
	return b, nil
}

// Check returns ErrInvalidBBox when south is above north or a bound is not a number.
func (b BBox) Check() error {
	for _, v := range []float64{b.West, b.South, b.East, b.North} {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: %v", ErrInvalidBBox, b)
		}
	}
	if b.South > b.North {
		return fmt.Errorf("%w: south %v > north %v", ErrInvalidBBox, b.South, b.North)
	}
	return nil
}

func (b BBox) CrossesAntimeridian() bool {
	return b.West > b.East
}

// Split returns the box itself, or its west and east halves when it crosses the antimeridian.
func (b BBox) Split() []BBox {
	if !b.CrossesAntimeridian() {
		return []BBox{b}
	}
	return []BBox{
		{West: b.West, South: b.South, East: 180, North: b.North},
		{West: -180, South: b.South, East: b.East, North: b.North},
	}
}

// ClampWeb clamps the box to the extent of the Web Mercator square.
func (b BBox) ClampWeb() BBox {
	return BBox{
		West:  math.Max(-180, b.West),
		South: math.Max(-MaxLat, b.South),
		East:  math.Min(180, b.East),
		North: math.Min(MaxLat, b.North),
	}
}

func (b BBox) Contains(ll LngLat) bool {
	if ll.Lat < b.South || ll.Lat > b.North {
		return false
	}
	if b.CrossesAntimeridian() {
		return ll.Lng >= b.West || ll.Lng <= b.East
	}
	return ll.Lng >= b.West && ll.Lng <= b.East
}

func (b BBox) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b.West, b.South}, Max: orb.Point{b.East, b.North}}
}

func BBoxFromBound(bound orb.Bound) BBox {
	return BBox{West: bound.Min.X(), South: bound.Min.Y(), East: bound.Max.X(), North: bound.Max.Y()}
}

// Polygon returns the closed ring of the box corners, counter-clockwise from the south-west.
func (b BBox) Polygon() orb.Polygon {
	return orb.Polygon{orb.Ring{
		{b.West, b.South},
		{b.East, b.South},
		{b.East, b.North},
		{b.West, b.North},
		{b.West, b.South},
	}}
}
