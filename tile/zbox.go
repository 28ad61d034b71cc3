package tile

import "iter"

// ZBox is a rectangular range of tiles at a single zoom, bounds inclusive.
type ZBox struct {
	MinX uint32
	MaxX uint32
	MinY uint32
	MaxY uint32
	Zoom uint32
}

// FullZBox returns the range covering every tile of zoom z.
func FullZBox(z uint32) ZBox {
	_, maxXY := MinMax(z)
	return ZBox{MaxX: maxXY, MaxY: maxXY, Zoom: z}
}

// All returns an iterator over the tiles of the range in row-major order.
// The iterator is restartable: each range statement walks the box again.
func (b ZBox) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for y := uint64(b.MinY); y <= uint64(b.MaxY); y++ {
			for x := uint64(b.MinX); x <= uint64(b.MaxX); x++ {
				if !yield(ID{X: uint32(x), Y: uint32(y), Z: b.Zoom}) {
					return
				}
			}
		}
	}
}

// Dimensions returns the width and height of the range in tiles.
func (b ZBox) Dimensions() (width, height uint64) {
	if b.MaxX < b.MinX || b.MaxY < b.MinY {
		return 0, 0
	}
	return uint64(b.MaxX-b.MinX) + 1, uint64(b.MaxY-b.MinY) + 1
}

func (b ZBox) Len() uint64 {
	w, h := b.Dimensions()
	return w * h
}

func (b ZBox) Contains(t ID) bool {
	return t.Z == b.Zoom && t.X >= b.MinX && t.X <= b.MaxX && t.Y >= b.MinY && t.Y <= b.MaxY
}

// FlipY returns the same range with rows in the TMS convention.
func (b ZBox) FlipY() ZBox {
	return ZBox{
		MinX: b.MinX,
		MaxX: b.MaxX,
		MinY: FlipY(b.MaxY, b.Zoom),
		MaxY: FlipY(b.MinY, b.Zoom),
		Zoom: b.Zoom,
	}
}

// ZoomIn returns the range covering the same area depth levels deeper.
func (b ZBox) ZoomIn(depth uint32) ZBox {
	last := uint32(1)<<depth - 1
	return ZBox{
		MinX: b.MinX << depth,
		MaxX: b.MaxX<<depth | last,
		MinY: b.MinY << depth,
		MaxY: b.MaxY<<depth | last,
		Zoom: b.Zoom + depth,
	}
}

// ZBoxes is an ordered collection of ranges, e.g. one per zoom or both halves of an antimeridian split.
type ZBoxes []ZBox

// All chains the iterators of the ranges in order.
func (bs ZBoxes) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for _, b := range bs {
			for t := range b.All() {
				if !yield(t) {
					return
				}
			}
		}
	}
}

func (bs ZBoxes) Len() uint64 {
	var n uint64
	for _, b := range bs {
		n += b.Len()
	}
	return n
}

func (bs ZBoxes) FlipY() ZBoxes {
	flipped := make(ZBoxes, len(bs))
	for i, b := range bs {
		flipped[i] = b.FlipY()
	}
	return flipped
}
