package mercator

import (
	"math"

	"github.com/paulmach/orb"
)

// LngLat is a geographic point in degrees. Longitude may exceed ±180 to describe a span.
type LngLat struct {
	Lng float64
	Lat float64
}

// Truncate clamps longitude to [-180, 180] and latitude to [-90, 90].
func (ll LngLat) Truncate() LngLat {
	return LngLat{
		Lng: math.Max(-180, math.Min(180, ll.Lng)),
		Lat: math.Max(-90, math.Min(90, ll.Lat)),
	}
}

// Wrap moves longitude into [-180, 180).
func (ll LngLat) Wrap() LngLat {
	lng := math.Mod(ll.Lng+180, 360)
	if lng < 0 {
		lng += 360
	}
	return LngLat{Lng: lng - 180, Lat: ll.Lat}
}

func (ll LngLat) Point() orb.Point {
	return orb.Point{ll.Lng, ll.Lat}
}
