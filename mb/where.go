// Package mb builds SQL predicates selecting tile ranges from the tiles table of an MBTiles file.
//
// MBTiles stores rows in the TMS convention, the flip is applied here and nowhere else.
package mb

import (
	"fmt"
	"strings"

	"github.com/eak1mov/go-utiles/tile"
)

// TileRow returns the tile_row value stored for the tile.
func TileRow(t tile.ID) uint32 {
	return tile.FlipY(t.Y, t.Z)
}

// Where returns a predicate over zoom_level, tile_column and tile_row matching the tiles of b.
// The prefix qualifies the column names, e.g. "tiles.".
func Where(b tile.ZBox, prefix string) string {
	tms := b.FlipY()
	return fmt.Sprintf(
		"(%[1]szoom_level = %[2]d AND %[1]stile_column >= %[3]d AND %[1]stile_column <= %[4]d AND %[1]stile_row >= %[5]d AND %[1]stile_row <= %[6]d)",
		prefix, tms.Zoom, tms.MinX, tms.MaxX, tms.MinY, tms.MaxY,
	)
}

// WhereRanges joins the predicates of all ranges with OR. No ranges match no rows.
func WhereRanges(bs tile.ZBoxes, prefix string) string {
	if len(bs) == 0 {
		return "0"
	}
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = Where(b, prefix)
	}
	return strings.Join(parts, " OR ")
}
