package pyramid

import (
	"fmt"

	"github.com/eak1mov/go-utiles/tile"
)

// CheckSameZoom returns ErrNoTiles for an empty slice and ErrMixedZoom when the tiles differ in zoom.
func CheckSameZoom(tiles []tile.ID) error {
	if len(tiles) == 0 {
		return tile.ErrNoTiles
	}
	for _, t := range tiles[1:] {
		if t.Z != tiles[0].Z {
			return fmt.Errorf("%w: %v and %v", tile.ErrMixedZoom, tiles[0], t)
		}
	}
	return nil
}

// FindEdges returns, in input order, the tiles having at least one neighbour outside the set.
// Without wrapX a tile on the border of the grid is an edge: its off-grid neighbours are missing.
// With wrapX columns wrap around the antimeridian and only rows beyond the poles are ignored.
// All tiles must share one zoom.
func FindEdges(tiles []tile.ID, wrapX bool) ([]tile.ID, error) {
	if err := CheckSameZoom(tiles); err != nil {
		return nil, err
	}
	set := tile.NewSet(tiles...)
	seen := make(tile.Set, len(set))
	var edges []tile.ID
	for _, t := range tiles {
		if seen.Has(t) {
			continue
		}
		seen.Add(t)
		if !wrapX && onGridBorder(t) {
			edges = append(edges, t)
			continue
		}
		for _, n := range t.Neighbors(wrapX) {
			if !set.Has(n) {
				edges = append(edges, t)
				break
			}
		}
	}
	return edges, nil
}

func onGridBorder(t tile.ID) bool {
	_, maxXY := tile.MinMax(t.Z)
	return t.X == 0 || t.Y == 0 || t.X == maxXY || t.Y == maxXY
}
