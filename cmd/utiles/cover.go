package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/eak1mov/go-utiles/cover"
	"github.com/eak1mov/go-utiles/pyramid"
	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/subcommands"
	"github.com/paulmach/orb"
)

type coverCmd struct {
	ioFlags
	zoom    uint
	minZoom int
}

func (c *coverCmd) Name() string     { return "cover" }
func (c *coverCmd) Synopsis() string { return "list tiles covering GeoJSON geometries" }
func (c *coverCmd) Usage() string {
	return "utiles cover -z <zoom> [-minzoom <zoom>] [-seq] [-obj] < input.geojson\n" +
		"The input is one GeoJSON document, or several separated by RS (0x1e).\n"
}
func (c *coverCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
	f.UintVar(&c.zoom, "z", 0, "Target zoom")
	f.IntVar(&c.minZoom, "minzoom", -1, "Simplify the coverage down to this zoom")
}

// documents splits the input on record separators only, GeoJSON may span many lines.
func documents(data []byte) [][]byte {
	var docs [][]byte
	for doc := range bytes.SplitSeq(data, []byte{recordSeparator}) {
		if doc = bytes.TrimSpace(doc); len(doc) > 0 {
			docs = append(docs, doc)
		}
	}
	return docs
}

func (c *coverCmd) run() error {
	if c.zoom > tile.MaxZoom {
		return fmt.Errorf("%w: %d", tile.ErrInvalidZoom, c.zoom)
	}
	data, err := io.ReadAll(c.input())
	if err != nil {
		return err
	}
	var geometries orb.Collection
	for _, doc := range documents(data) {
		g, err := cover.ParseGeoJSON(doc)
		if err != nil {
			return err
		}
		geometries = append(geometries, g)
	}

	var tiles tile.Set
	if c.minZoom >= 0 {
		tiles, err = cover.Simplified(geometries, uint32(c.zoom), uint32(c.minZoom))
	} else {
		tiles, err = cover.Geometry(geometries, uint32(c.zoom))
	}
	if err != nil {
		return err
	}

	w := c.newWriter()
	for _, t := range tiles.Sorted() {
		if err := w.tile(t); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (c *coverCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run())
}

type simplifyCmd struct {
	ioFlags
	minZoom uint
}

func (c *simplifyCmd) Name() string     { return "simplify" }
func (c *simplifyCmd) Synopsis() string { return "merge complete sibling groups into their parents" }
func (c *simplifyCmd) Usage() string {
	return "utiles simplify [-minzoom <zoom>] [-seq] [-obj] < tiles\n"
}
func (c *simplifyCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
	f.UintVar(&c.minZoom, "minzoom", 0, "Keep tiles at or below this zoom as they are")
}

func (c *simplifyCmd) run(args []string) error {
	tiles, err := readTiles(c.inputRecords(args))
	if err != nil {
		return err
	}
	w := c.newWriter()
	for _, t := range pyramid.Simplify(tile.NewSet(tiles...), pyramid.WithMinZoom(uint32(c.minZoom))).Sorted() {
		if err := w.tile(t); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (c *simplifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run(f.Args()))
}

type edgesCmd struct {
	ioFlags
	wrapX bool
}

func (c *edgesCmd) Name() string     { return "edges" }
func (c *edgesCmd) Synopsis() string { return "list the tiles on the border of a same-zoom tile set" }
func (c *edgesCmd) Usage() string {
	return "utiles edges [-wrapx] [-seq] [-obj] < tiles\n"
}
func (c *edgesCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
	f.BoolVar(&c.wrapX, "wrapx", false, "Treat the antimeridian as connected")
}

func (c *edgesCmd) run(args []string) error {
	tiles, err := readTiles(c.inputRecords(args))
	if err != nil {
		return err
	}
	edges, err := pyramid.FindEdges(tiles, c.wrapX)
	if err != nil {
		return err
	}
	w := c.newWriter()
	for _, t := range edges {
		if err := w.tile(t); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (c *edgesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run(f.Args()))
}
