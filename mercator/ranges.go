package mercator

import (
	"fmt"
	"iter"

	"github.com/eak1mov/go-utiles/tile"
)

// TileRanges returns the tile ranges intersecting the box, one per zoom for each half of an
// antimeridian split. The box is clamped to the Web Mercator extent, its east and south
// edges are exclusive.
func TileRanges(b BBox, zooms ...uint32) (tile.ZBoxes, error) {
	if err := b.Check(); err != nil {
		return nil, err
	}
	for _, z := range zooms {
		if z > tile.MaxZoom {
			return nil, fmt.Errorf("%w: %d > %d", tile.ErrInvalidZoom, z, tile.MaxZoom)
		}
	}
	var ranges tile.ZBoxes
	for _, part := range b.Split() {
		part = part.ClampWeb()
		for _, z := range zooms {
			ul, err := Tile(part.West, part.North, z)
			if err != nil {
				return nil, err
			}
			lr, err := Tile(part.East-llEpsilon, part.South+llEpsilon, z)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, tile.ZBox{MinX: ul.X, MaxX: lr.X, MinY: ul.Y, MaxY: lr.Y, Zoom: z})
		}
	}
	return ranges, nil
}

// Tiles returns a lazy sequence of the tiles intersecting the box at the given zooms.
func Tiles(b BBox, zooms ...uint32) (iter.Seq[tile.ID], error) {
	ranges, err := TileRanges(b, zooms...)
	if err != nil {
		return nil, err
	}
	return ranges.All(), nil
}

// TilesCount returns the number of tiles Tiles would yield without enumerating them.
func TilesCount(b BBox, zooms ...uint32) (uint64, error) {
	ranges, err := TileRanges(b, zooms...)
	if err != nil {
		return 0, err
	}
	return ranges.Len(), nil
}

// BoundingTile returns the smallest tile containing the box, down to zoom 28.
// Boxes crossing the antimeridian are only contained by the root tile.
func BoundingTile(b BBox) (tile.ID, error) {
	if err := b.Check(); err != nil {
		return tile.ID{}, err
	}
	if b.CrossesAntimeridian() {
		return tile.ID{}, nil
	}
	b = b.ClampWeb()
	const gridZoom = 32
	minX, minY, err := gridXY(b.West, b.North, gridZoom)
	if err != nil {
		return tile.ID{}, err
	}
	maxX, maxY, err := gridXY(b.East-llEpsilon, b.South+llEpsilon, gridZoom)
	if err != nil {
		return tile.ID{}, err
	}
	z := uint32(28)
	for level := range uint32(28) {
		mask := uint64(1) << (gridZoom - (level + 1))
		if minX&mask != maxX&mask || minY&mask != maxY&mask {
			z = level
			break
		}
	}
	shift := gridZoom - z
	return tile.ID{X: uint32(minX >> shift), Y: uint32(minY >> shift), Z: z}, nil
}
