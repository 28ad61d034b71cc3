package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&tilesCmd{}, "")
	subcommands.Register(&boundingTileCmd{}, "")
	subcommands.Register(&coverCmd{}, "")
	subcommands.Register(&quadkeyCmd{}, "")
	subcommands.Register(&pmtileidCmd{}, "")
	subcommands.Register(&fmtCmd{}, "")
	subcommands.Register(&parentCmd{}, "")
	subcommands.Register(&childrenCmd{}, "")
	subcommands.Register(&neighborsCmd{}, "")
	subcommands.Register(&shapesCmd{}, "")
	subcommands.Register(&simplifyCmd{}, "")
	subcommands.Register(&edgesCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
