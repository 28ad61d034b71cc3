package main

import (
	"context"
	"flag"

	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/subcommands"
)

// eachTile parses every input record as a tile and calls fn with it.
func eachTile(o *ioFlags, args []string, fn func(w *recordWriter, t tile.ID) error) error {
	w := o.newWriter()
	for record, err := range o.inputRecords(args) {
		if err != nil {
			return err
		}
		t, err := tile.ParseJSON(record)
		if err != nil {
			return err
		}
		if err := fn(w, t); err != nil {
			return err
		}
	}
	return w.Flush()
}

type parentCmd struct {
	ioFlags
	depth uint
}

func (c *parentCmd) Name() string     { return "parent" }
func (c *parentCmd) Synopsis() string { return "print the ancestor of each tile" }
func (c *parentCmd) Usage() string {
	return "utiles parent [-depth <n>] [-seq] [-obj] [tile ...]\n"
}
func (c *parentCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
	f.UintVar(&c.depth, "depth", 1, "Number of levels to go up")
}

func (c *parentCmd) run(args []string) error {
	return eachTile(&c.ioFlags, args, func(w *recordWriter, t tile.ID) error {
		parent, err := t.Parent(uint32(min(c.depth, tile.MaxZoom+1)))
		if err != nil {
			return err
		}
		return w.tile(parent)
	})
}

func (c *parentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run(f.Args()))
}

type childrenCmd struct {
	ioFlags
	depth uint
}

func (c *childrenCmd) Name() string     { return "children" }
func (c *childrenCmd) Synopsis() string { return "print the descendants of each tile" }
func (c *childrenCmd) Usage() string {
	return "utiles children [-depth <n>] [-seq] [-obj] [tile ...]\n"
}
func (c *childrenCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
	f.UintVar(&c.depth, "depth", 1, "Number of levels to go down")
}

func (c *childrenCmd) run(args []string) error {
	return eachTile(&c.ioFlags, args, func(w *recordWriter, t tile.ID) error {
		children, err := t.Children(uint32(min(c.depth, tile.MaxZoom+1)))
		if err != nil {
			return err
		}
		for child := range children.All() {
			if err := w.tile(child); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *childrenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run(f.Args()))
}

type neighborsCmd struct {
	ioFlags
	wrapX bool
}

func (c *neighborsCmd) Name() string     { return "neighbors" }
func (c *neighborsCmd) Synopsis() string { return "print the adjacent tiles of each tile" }
func (c *neighborsCmd) Usage() string {
	return "utiles neighbors [-wrapx] [-seq] [-obj] [tile ...]\n"
}
func (c *neighborsCmd) SetFlags(f *flag.FlagSet) {
	c.setIOFlags(f)
	f.BoolVar(&c.wrapX, "wrapx", false, "Wrap columns around the antimeridian")
}

func (c *neighborsCmd) run(args []string) error {
	return eachTile(&c.ioFlags, args, func(w *recordWriter, t tile.ID) error {
		for _, n := range t.Neighbors(c.wrapX) {
			if err := w.tile(n); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *neighborsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.run(f.Args()))
}
