package tile_test

import (
	"errors"
	"testing"

	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	for _, tileID := range []tile.ID{{0, 0, 0}, {1, 1, 1}, {1023, 0, 10}, {1<<31 - 1, 1<<31 - 1, 31}} {
		if !tileID.Valid() {
			t.Errorf("%v.Valid() = false, want true", tileID)
		}
		require.NoError(t, tileID.Check())
	}
	for _, tileID := range []tile.ID{{1, 0, 0}, {1, 234, 1}, {0, 1024, 10}} {
		if tileID.Valid() {
			t.Errorf("%v.Valid() = true, want false", tileID)
		}
		err := tileID.Check()
		require.Truef(t, errors.Is(err, tile.ErrInvalidTile), "%v.Check() = %v", tileID, err)
	}
	err := tile.ID{Z: 32}.Check()
	require.Truef(t, errors.Is(err, tile.ErrInvalidZoom), "Check() = %v", err)
}

func TestFlipY(t *testing.T) {
	for z := range 10 {
		for y := range uint32(1) << z {
			flipped := tile.FlipY(y, uint32(z))
			if flipped != (1<<z)-1-y {
				t.Errorf("FlipY(%d, %d) = %d", y, z, flipped)
			}
			if got := tile.FlipY(flipped, uint32(z)); got != y {
				t.Errorf("FlipY(FlipY(%d, %d)) = %d", y, z, got)
			}
		}
	}
	if diff := cmp.Diff(tile.ID{X: 486, Y: 691, Z: 10}, tile.ID{X: 486, Y: 332, Z: 10}.FlipY()); diff != "" {
		t.Errorf("FlipY() mismatch (-want+got):\n%v", diff)
	}
}

func TestCompare(t *testing.T) {
	tiles := []tile.ID{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {1, 0, 1}, {1, 1, 1}, {0, 0, 2}}
	for i := range tiles {
		for j := range tiles {
			got := tiles[i].Compare(tiles[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("%v.Compare(%v) = %d, want %d", tiles[i], tiles[j], got, want)
			}
		}
	}
}

func TestString(t *testing.T) {
	if got := tile.New(1, 2, 3).String(); got != "x1y2z3" {
		t.Errorf("String() = %q", got)
	}
}
