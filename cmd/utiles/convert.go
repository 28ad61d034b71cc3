package main

import (
	"context"
	"flag"
	"strconv"
	"strings"

	"github.com/eak1mov/go-utiles/pm"
	"github.com/eak1mov/go-utiles/tile"
	"github.com/eak1mov/go-utiles/tilefmt"
	"github.com/google/subcommands"
)

type quadkeyCmd struct {
	ioFlags
}

func (c *quadkeyCmd) Name() string     { return "quadkey" }
func (c *quadkeyCmd) Synopsis() string { return "convert between tiles and quadkeys" }
func (c *quadkeyCmd) Usage() string {
	return "utiles quadkey [-seq] [-obj] [tile|quadkey ...]\n" +
		"JSON tiles are converted to quadkeys, anything else is decoded as a quadkey.\n"
}
func (c *quadkeyCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
}

func isTileJSON(record string) bool {
	return strings.HasPrefix(record, "[") || strings.HasPrefix(record, "{")
}

func (c *quadkeyCmd) run(args []string) error {
	w := c.newWriter()
	for record, err := range c.inputRecords(args) {
		if err != nil {
			return err
		}
		if err := c.convert(w, record); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (c *quadkeyCmd) convert(w *recordWriter, record string) error {
	if isTileJSON(record) {
		t, err := tile.ParseJSON(record)
		if err != nil {
			return err
		}
		return w.line(t.Quadkey())
	}
	t, err := tile.FromQuadkey(record)
	if err != nil {
		return err
	}
	return w.tile(t)
}

func (c *quadkeyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run(f.Args()))
}

type pmtileidCmd struct {
	ioFlags
}

func (c *pmtileidCmd) Name() string     { return "pmtileid" }
func (c *pmtileidCmd) Synopsis() string { return "convert between tiles and PMTiles tile ids" }
func (c *pmtileidCmd) Usage() string {
	return "utiles pmtileid [-seq] [-obj] [tile|id ...]\n"
}
func (c *pmtileidCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
}

func (c *pmtileidCmd) run(args []string) error {
	w := c.newWriter()
	for record, err := range c.inputRecords(args) {
		if err != nil {
			return err
		}
		if err := c.convert(w, record); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (c *pmtileidCmd) convert(w *recordWriter, record string) error {
	if isTileJSON(record) {
		t, err := tile.ParseJSON(record)
		if err != nil {
			return err
		}
		id, err := pm.EncodeTileID(t)
		if err != nil {
			return err
		}
		return w.line(strconv.FormatUint(id, 10))
	}
	id, err := strconv.ParseUint(record, 10, 64)
	if err != nil {
		return err
	}
	t, err := pm.DecodeTileID(id)
	if err != nil {
		return err
	}
	return w.tile(t)
}

func (c *pmtileidCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run(f.Args()))
}

type fmtCmd struct {
	ioFlags
	pattern string
}

func (c *fmtCmd) Name() string     { return "fmt" }
func (c *fmtCmd) Synopsis() string { return "format tiles with a template" }
func (c *fmtCmd) Usage() string {
	return "utiles fmt -f <pattern> [tile ...]\n" +
		"Placeholders: {x} {y} {z} {-y} {zxy} {quadkey} {pmtileid} {rmid} {json} {json_obj}\n"
}
func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
	f.StringVar(&c.pattern, "f", "{json}", "Format pattern")
}

func (c *fmtCmd) run(args []string) error {
	formatter, err := tilefmt.New(c.pattern)
	if err != nil {
		return err
	}
	w := c.newWriter()
	for record, err := range c.inputRecords(args) {
		if err != nil {
			return err
		}
		t, err := tile.ParseJSON(record)
		if err != nil {
			return err
		}
		s, err := formatter.Format(t)
		if err != nil {
			return err
		}
		if err := w.line(s); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run(f.Args()))
}
