package tile

// ZoomBase returns the number of tiles in all zoom levels above z, (4^z-1)/3.
func ZoomBase(z uint32) uint64 {
	return ((uint64(1) << (2 * z)) - 1) / 3
}

// ZoomOffset splits a cumulative pyramid index into its zoom level and the offset inside that level.
// The level is found by accumulating 4^level until the running total passes id.
func ZoomOffset(id uint64) (offset uint64, z uint32) {
	var acc uint64
	for z = 0; z < MaxZoom; z++ {
		numTiles := uint64(1) << (2 * z)
		if acc+numTiles > id {
			return id - acc, z
		}
		acc += numTiles
	}
	return id - acc, MaxZoom
}

// RowMajorID returns the zoom-local raster index of the tile, y*2^z + x.
func RowMajorID(t ID) uint64 {
	return uint64(t.Y)<<t.Z | uint64(t.X)
}

// FromRowMajorID is the inverse of RowMajorID for tiles of zoom z.
func FromRowMajorID(id uint64, z uint32) ID {
	mask := (uint64(1) << z) - 1
	return ID{X: uint32(id & mask), Y: uint32(id >> z), Z: z}
}

// PyramidRowMajorID returns the raster index of the tile offset by the number of tiles
// in all shallower zoom levels, so ids of different zooms never collide.
func PyramidRowMajorID(t ID) uint64 {
	return ZoomBase(t.Z) + RowMajorID(t)
}

// FromPyramidRowMajorID is the inverse of PyramidRowMajorID.
func FromPyramidRowMajorID(id uint64) ID {
	offset, z := ZoomOffset(id)
	return FromRowMajorID(offset, z)
}
