package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/eak1mov/go-utiles/mercator"
	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type tilesCmd struct {
	ioFlags
	zooms    string
	progress bool
}

func (c *tilesCmd) Name() string     { return "tiles" }
func (c *tilesCmd) Synopsis() string { return "list tiles intersecting bounding boxes" }
func (c *tilesCmd) Usage() string {
	return "utiles tiles -z <zooms> [-seq] [-obj] [-progress] [bbox ...]\n" +
		"Bounding boxes are read from stdin when not given as arguments.\n"
}
func (c *tilesCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
	f.StringVar(&c.zooms, "z", "", "Zoom levels, e.g. 0-3,7")
	f.BoolVar(&c.progress, "progress", false, "Show progress on stderr")
}

func (c *tilesCmd) run(args []string) error {
	zooms, err := tile.ParseZooms(c.zooms)
	if err != nil {
		return err
	}
	w := c.newWriter()
	for record, err := range c.inputRecords(args) {
		if err != nil {
			return err
		}
		bbox, err := mercator.ParseBBox(record)
		if err != nil {
			return err
		}
		ranges, err := mercator.TileRanges(bbox, zooms...)
		if err != nil {
			return err
		}

		var bar *progressbar.ProgressBar
		if c.progress {
			bar = progressbar.NewOptions64(int64(ranges.Len()),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowIts(),
				progressbar.OptionShowCount(),
			)
		}
		for t := range ranges.All() {
			if err := w.tile(t); err != nil {
				return err
			}
			if bar != nil {
				bar.Add(1)
			}
		}
		if bar != nil {
			bar.Finish()
			fmt.Fprintln(os.Stderr)
		}
	}
	return w.Flush()
}

func (c *tilesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run(f.Args()))
}

type boundingTileCmd struct {
	ioFlags
}

func (c *boundingTileCmd) Name() string     { return "bounding-tile" }
func (c *boundingTileCmd) Synopsis() string { return "print the smallest tile containing each bounding box" }
func (c *boundingTileCmd) Usage() string {
	return "utiles bounding-tile [-seq] [-obj] [bbox ...]\n"
}
func (c *boundingTileCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
}

func (c *boundingTileCmd) run(args []string) error {
	w := c.newWriter()
	for record, err := range c.inputRecords(args) {
		if err != nil {
			return err
		}
		bbox, err := mercator.ParseBBox(record)
		if err != nil {
			return err
		}
		t, err := mercator.BoundingTile(bbox)
		if err != nil {
			return err
		}
		if err := w.tile(t); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (c *boundingTileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run(f.Args()))
}
