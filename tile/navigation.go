package tile

import (
	"fmt"
	"iter"
)

// Parent returns the ancestor depth levels above the tile.
func (t ID) Parent(depth uint32) (ID, error) {
	if depth > t.Z {
		return ID{}, fmt.Errorf("%w: depth %d exceeds zoom of %v", ErrInvalidDepth, depth, t)
	}
	return ID{X: t.X >> depth, Y: t.Y >> depth, Z: t.Z - depth}, nil
}

// Parents returns an iterator over the ancestors of the tile, nearest first, ending with the root.
func (t ID) Parents() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for p := t; p.Z > 0; {
			p = ID{X: p.X >> 1, Y: p.Y >> 1, Z: p.Z - 1}
			if !yield(p) {
				return
			}
		}
	}
}

// Children returns the 4^depth descendants depth levels below the tile as a lazy range.
func (t ID) Children(depth uint32) (ZBox, error) {
	if depth > MaxZoom || t.Z+depth > MaxZoom {
		return ZBox{}, fmt.Errorf("%w: %d > %d", ErrInvalidZoom, t.Z+depth, MaxZoom)
	}
	return ZBox{MinX: t.X, MaxX: t.X, MinY: t.Y, MaxY: t.Y, Zoom: t.Z}.ZoomIn(depth), nil
}

// Children1 returns the four direct children in z-order: upper-left, upper-right, lower-left, lower-right.
func (t ID) Children1() [4]ID {
	x, y, z := t.X<<1, t.Y<<1, t.Z+1
	return [4]ID{
		{X: x, Y: y, Z: z},
		{X: x + 1, Y: y, Z: z},
		{X: x, Y: y + 1, Z: z},
		{X: x + 1, Y: y + 1, Z: z},
	}
}

// Contains reports whether o is the tile itself or one of its descendants.
func (t ID) Contains(o ID) bool {
	if o.Z < t.Z {
		return false
	}
	d := o.Z - t.Z
	return o.X>>d == t.X && o.Y>>d == t.Y
}

// Siblings returns the other three children of the tile's parent. The root has no siblings.
func (t ID) Siblings() []ID {
	if t.Z == 0 {
		return nil
	}
	parent := ID{X: t.X >> 1, Y: t.Y >> 1, Z: t.Z - 1}
	siblings := make([]ID, 0, 3)
	for _, c := range parent.Children1() {
		if c != t {
			siblings = append(siblings, c)
		}
	}
	return siblings
}

// Neighbors returns the up to 8 tiles sharing an edge or a corner with t, in row-major order.
// Rows outside the grid are skipped. Columns wrap around the antimeridian only when wrapX is set.
func (t ID) Neighbors(wrapX bool) []ID {
	if t.Z == 0 {
		return nil
	}
	n := int64(1) << t.Z
	neighbors := make([]ID, 0, 8)
	for dy := int64(-1); dy <= 1; dy++ {
		y := int64(t.Y) + dy
		if y < 0 || y >= n {
			continue
		}
		for dx := int64(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x := int64(t.X) + dx
			if wrapX {
				x = ((x % n) + n) % n
			} else if x < 0 || x >= n {
				continue
			}
			nb := ID{X: uint32(x), Y: uint32(y), Z: t.Z}
			if nb == t || containsID(neighbors, nb) {
				continue
			}
			neighbors = append(neighbors, nb)
		}
	}
	return neighbors
}

func containsID(ids []ID, t ID) bool {
	for _, id := range ids {
		if id == t {
			return true
		}
	}
	return false
}

// SiblingRelationship is the quadrant a tile occupies inside its parent.
type SiblingRelationship int

const (
	UpperLeft SiblingRelationship = iota
	UpperRight
	LowerLeft
	LowerRight
)

func (r SiblingRelationship) String() string {
	switch r {
	case UpperLeft:
		return "UpperLeft"
	case UpperRight:
		return "UpperRight"
	case LowerLeft:
		return "LowerLeft"
	case LowerRight:
		return "LowerRight"
	}
	return fmt.Sprintf("SiblingRelationship(%d)", int(r))
}

// Relationship classifies the tile by the parity of its coordinates.
func (t ID) Relationship() SiblingRelationship {
	return SiblingRelationship(t.X&1 | (t.Y&1)<<1)
}
