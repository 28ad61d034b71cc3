// Package tile provides the XYZ tile value type and arithmetic on the tile pyramid.
package tile

import "fmt"

// MaxZoom is the deepest zoom level a tile may have.
const MaxZoom = 31

// ID represents tile coordinates in the XYZ scheme (Tiled web map).
// Origin is the north-west corner, y grows southwards.
type ID struct {
	X uint32
	Y uint32
	Z uint32
}

func New(x, y, z uint32) ID {
	return ID{X: x, Y: y, Z: z}
}

// Valid reports whether x and y are inside the 2^z x 2^z grid of the tile's zoom.
func (t ID) Valid() bool {
	return t.Z <= MaxZoom && t.X < (1<<t.Z) && t.Y < (1<<t.Z)
}

// Check returns ErrInvalidZoom or ErrInvalidTile for tiles that are not Valid.
func (t ID) Check() error {
	if t.Z > MaxZoom {
		return fmt.Errorf("%w: %d > %d", ErrInvalidZoom, t.Z, MaxZoom)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %v (x and y must be < 2^z)", ErrInvalidTile, t)
	}
	return nil
}

func (t ID) String() string {
	return fmt.Sprintf("x%dy%dz%d", t.X, t.Y, t.Z)
}

// Compare orders tiles by zoom, then x, then y.
func (t ID) Compare(o ID) int {
	switch {
	case t.Z != o.Z:
		return cmpUint32(t.Z, o.Z)
	case t.X != o.X:
		return cmpUint32(t.X, o.X)
	default:
		return cmpUint32(t.Y, o.Y)
	}
}

func cmpUint32(a, b uint32) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// FlipY converts a row between the XYZ and TMS conventions (the operation is its own inverse).
func FlipY(y, z uint32) uint32 {
	return (1 << z) - 1 - y
}

// FlipY returns the tile with its row converted between XYZ and TMS.
func (t ID) FlipY() ID {
	return ID{X: t.X, Y: FlipY(t.Y, t.Z), Z: t.Z}
}

// MinMax returns the smallest and largest valid x (or y) at zoom z.
func MinMax(z uint32) (uint32, uint32) {
	return 0, (1 << z) - 1
}
