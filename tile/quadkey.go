package tile

import (
	"fmt"
	"strings"
)

// Quadkey returns the base-4 path of the tile from the root, one digit per zoom level.
func (t ID) Quadkey() string {
	var b strings.Builder
	b.Grow(int(t.Z))
	for i := t.Z; i > 0; i-- {
		mask := uint32(1) << (i - 1)
		digit := byte('0')
		if t.X&mask != 0 {
			digit++
		}
		if t.Y&mask != 0 {
			digit += 2
		}
		b.WriteByte(digit)
	}
	return b.String()
}

// FromQuadkey decodes a quadkey. The empty quadkey is the root tile.
func FromQuadkey(quadkey string) (ID, error) {
	if len(quadkey) > MaxZoom {
		return ID{}, fmt.Errorf("%w: quadkey %q is longer than %d", ErrInvalidZoom, quadkey, MaxZoom)
	}
	var t ID
	for i := 0; i < len(quadkey); i++ {
		t.X <<= 1
		t.Y <<= 1
		t.Z++
		switch quadkey[i] {
		case '0':
		case '1':
			t.X |= 1
		case '2':
			t.Y |= 1
		case '3':
			t.X |= 1
			t.Y |= 1
		default:
			return ID{}, fmt.Errorf("%w: digit %q in %q", ErrInvalidQuadkey, quadkey[i], quadkey)
		}
	}
	return t, nil
}
