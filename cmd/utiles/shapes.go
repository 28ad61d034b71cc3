package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/eak1mov/go-utiles/mercator"
	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/subcommands"
	"github.com/paulmach/orb/geojson"
)

type shapesCmd struct {
	ioFlags
	projection string
	collect    bool
}

func (c *shapesCmd) Name() string     { return "shapes" }
func (c *shapesCmd) Synopsis() string { return "print tile outlines as GeoJSON features" }
func (c *shapesCmd) Usage() string {
	return "utiles shapes [-projection geographic|mercator] [-collect] [-seq] [tile ...]\n"
}
func (c *shapesCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
	f.StringVar(&c.projection, "projection", "geographic", "Output coordinates: geographic or mercator")
	f.BoolVar(&c.collect, "collect", false, "Write a single FeatureCollection")
}

func tileFeature(t tile.ID, projection mercator.Projection) *geojson.Feature {
	polygon := mercator.Bounds(t).Polygon()
	for i, p := range polygon[0] {
		polygon[0][i] = projection.Project(mercator.LngLat{Lng: p.X(), Lat: p.Y()}).Point()
	}
	feature := geojson.NewFeature(polygon)
	feature.ID = t.JSONArray()
	feature.BBox = geojson.NewBBox(polygon.Bound())
	feature.Properties["title"] = fmt.Sprintf("XYZ tile (%d, %d, %d)", t.X, t.Y, t.Z)
	feature.Properties["x"] = t.X
	feature.Properties["y"] = t.Y
	feature.Properties["z"] = t.Z
	return feature
}

func (c *shapesCmd) run(args []string) error {
	projection, err := mercator.ParseProjection(c.projection)
	if err != nil {
		return err
	}
	tiles, err := readTiles(c.inputRecords(args))
	if err != nil {
		return err
	}

	w := c.newWriter()
	if c.collect {
		fc := geojson.NewFeatureCollection()
		for _, t := range tiles {
			fc.Append(tileFeature(t, projection))
		}
		data, err := fc.MarshalJSON()
		if err != nil {
			return err
		}
		if err := w.line(string(data)); err != nil {
			return err
		}
		return w.Flush()
	}
	for _, t := range tiles {
		data, err := tileFeature(t, projection).MarshalJSON()
		if err != nil {
			return err
		}
		if err := w.line(string(data)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (c *shapesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run(f.Args()))
}
