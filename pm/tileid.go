// Package pm implements the Hilbert-ordered tile ids of the PMTiles format.
package pm

import (
	"errors"
	"fmt"

	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/hilbert"
)

var ErrInvalidTileID = errors.New("utiles: invalid pmtile id")

// MaxTileID is the id of the last tile at tile.MaxZoom.
var MaxTileID = tile.ZoomBase(tile.MaxZoom) + 1<<(2*tile.MaxZoom) - 1

// EncodeTileID returns base(z) + hilbert(x, y), where base(z) counts the tiles of all shallower zooms.
func EncodeTileID(tileID tile.ID) (uint64, error) {
	if err := tileID.Check(); err != nil {
		return 0, err
	}
	h, err := hilbert.NewHilbert(1 << tileID.Z)
	if err != nil {
		return 0, fmt.Errorf("%w: %v: %w", tile.ErrInvalidTile, tileID, err)
	}
	tileCode, err := h.MapInverse(int(tileID.X), int(tileID.Y))
	if err != nil {
		return 0, fmt.Errorf("%w: %v: %w", tile.ErrInvalidTile, tileID, err)
	}
	return tile.ZoomBase(tileID.Z) + uint64(tileCode), nil
}

// DecodeTileID is the inverse of EncodeTileID.
func DecodeTileID(tileCode uint64) (tile.ID, error) {
	if tileCode > MaxTileID {
		return tile.ID{}, fmt.Errorf("%w: %d > %d", ErrInvalidTileID, tileCode, MaxTileID)
	}
	offset, z := tile.ZoomOffset(tileCode)
	h, err := hilbert.NewHilbert(1 << z)
	if err != nil {
		return tile.ID{}, fmt.Errorf("%w: %d: %w", ErrInvalidTileID, tileCode, err)
	}
	x, y, err := h.Map(int(offset))
	if err != nil {
		return tile.ID{}, fmt.Errorf("%w: %d: %w", ErrInvalidTileID, tileCode, err)
	}
	return tile.ID{X: uint32(x), Y: uint32(y), Z: z}, nil
}

// ParentID returns the id of the parent of the tile with the given id, without decoding it.
// Four consecutive hilbert indices of a level share one parent. The root is its own parent.
func ParentID(tileCode uint64) uint64 {
	offset, z := tile.ZoomOffset(tileCode)
	if z == 0 {
		return 0
	}
	return tile.ZoomBase(z-1) + offset/4
}
