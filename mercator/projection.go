// Package mercator converts between geographic coordinates, Web Mercator metres and the XYZ tile grid.
package mercator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/eak1mov/go-utiles/tile"
)

const (
	EarthRadius        = 6378137.0
	EarthCircumference = 2 * math.Pi * EarthRadius

	// MaxLat is the latitude of the top edge of the Web Mercator square.
	MaxLat = 85.051128779806604

	epsilon   = 1e-14
	llEpsilon = 1e-11
)

var (
	ErrProjection        = errors.New("utiles: point cannot be projected")
	ErrInvalidProjection = errors.New("utiles: invalid projection")
)

// Tile returns the tile of the given zoom containing the point.
// Points outside the grid are clamped to its border tiles.
func Tile(lng, lat float64, zoom uint32) (tile.ID, error) {
	if zoom > tile.MaxZoom {
		return tile.ID{}, fmt.Errorf("%w: %d > %d", tile.ErrInvalidZoom, zoom, tile.MaxZoom)
	}
	x, y, err := gridXY(lng, lat, zoom)
	if err != nil {
		return tile.ID{}, err
	}
	return tile.ID{X: uint32(x), Y: uint32(y), Z: zoom}, nil
}

// gridXY works up to zoom 32, one level deeper than a tile.ID can address.
func gridXY(lng, lat float64, zoom uint32) (uint64, uint64, error) {
	x, y := project(lng, lat)
	if math.IsInf(y, 0) || math.IsNaN(y) || math.IsNaN(x) {
		return 0, 0, fmt.Errorf("%w: (%v, %v)", ErrProjection, lng, lat)
	}
	return toGrid(x, zoom), toGrid(y, zoom), nil
}

func toGrid(v float64, zoom uint32) uint64 {
	last := uint64(1)<<zoom - 1
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return last
	}
	return min(uint64(math.Floor((v+epsilon)*float64(uint64(1)<<zoom))), last)
}

// project maps a point onto the unit square, origin at the north-west corner.
func project(lng, lat float64) (float64, float64) {
	sinLat := math.Sin(lat * math.Pi / 180)
	return lng/360 + 0.5, 0.5 - 0.25*math.Log((1+sinLat)/(1-sinLat))/math.Pi
}

// Fraction returns the fractional tile coordinates of the point at the given zoom.
// Latitude is clamped to MaxLat, longitude is not wrapped.
func Fraction(lng, lat float64, zoom uint32) (float64, float64) {
	x, y := project(lng, math.Max(-MaxLat, math.Min(MaxLat, lat)))
	z2 := float64(uint64(1) << zoom)
	return x * z2, y * z2
}

func cornerAt(x, y uint64, z uint32) LngLat {
	z2 := float64(uint64(1) << z)
	latRad := math.Atan(math.Sinh(math.Pi * (1 - 2*float64(y)/z2)))
	return LngLat{
		Lng: float64(x)/z2*360 - 180,
		Lat: latRad * 180 / math.Pi,
	}
}

// UL returns the upper-left (north-west) corner of the tile.
func UL(t tile.ID) LngLat {
	return cornerAt(uint64(t.X), uint64(t.Y), t.Z)
}

func UR(t tile.ID) LngLat {
	return cornerAt(uint64(t.X)+1, uint64(t.Y), t.Z)
}

// LR returns the lower-right (south-east) corner of the tile.
func LR(t tile.ID) LngLat {
	return cornerAt(uint64(t.X)+1, uint64(t.Y)+1, t.Z)
}

func LL(t tile.ID) LngLat {
	return cornerAt(uint64(t.X), uint64(t.Y)+1, t.Z)
}

// Bounds returns the geographic bounding box of the tile.
func Bounds(t tile.ID) BBox {
	ul, lr := UL(t), LR(t)
	return BBox{West: ul.Lng, South: lr.Lat, East: lr.Lng, North: ul.Lat}
}

// Center returns the midpoint of the upper-left and lower-right corners.
func Center(t tile.ID) LngLat {
	ul, lr := UL(t), LR(t)
	return LngLat{Lng: (ul.Lng + lr.Lng) / 2, Lat: (ul.Lat + lr.Lat) / 2}
}

// XY converts a point to Web Mercator metres. The poles map to infinite y.
func XY(lng, lat float64) (float64, float64) {
	x := EarthRadius * lng * math.Pi / 180
	switch {
	case lat <= -90:
		return x, math.Inf(-1)
	case lat >= 90:
		return x, math.Inf(1)
	}
	return x, EarthRadius * math.Log(math.Tan(math.Pi/4+lat*math.Pi/360))
}

// LngLatFromXY converts Web Mercator metres back to degrees.
func LngLatFromXY(x, y float64) LngLat {
	return LngLat{
		Lng: x / EarthRadius * 180 / math.Pi,
		Lat: (math.Pi/2 - 2*math.Atan(math.Exp(-y/EarthRadius))) * 180 / math.Pi,
	}
}

// XYBounds returns the tile bounds in Web Mercator metres.
func XYBounds(t tile.ID) BBox {
	size := EarthCircumference / float64(uint64(1)<<t.Z)
	left := float64(t.X)*size - EarthCircumference/2
	top := EarthCircumference/2 - float64(t.Y)*size
	return BBox{West: left, South: top - size, East: left + size, North: top}
}

// Projection selects the coordinate system of emitted geometries.
type Projection int

const (
	Geographic Projection = iota
	WebMercator
)

func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(s) {
	case "geographic", "epsg:4326", "4326":
		return Geographic, nil
	case "mercator", "epsg:3857", "3857":
		return WebMercator, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidProjection, s)
}

func (p Projection) String() string {
	if p == WebMercator {
		return "mercator"
	}
	return "geographic"
}

// Project converts a geographic point into the projection.
func (p Projection) Project(ll LngLat) LngLat {
	if p == WebMercator {
		x, y := XY(ll.Lng, ll.Lat)
		return LngLat{Lng: x, Lat: y}
	}
	return ll
}
