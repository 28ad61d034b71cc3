package tile_test

import (
	"testing"

	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/go-cmp/cmp"
)

func TestSet(t *testing.T) {
	s := tile.NewSet(tile.ID{X: 1, Y: 1, Z: 1}, tile.ID{}, tile.ID{X: 1, Y: 1, Z: 1})
	s.Add(tile.ID{X: 0, Y: 1, Z: 1})
	if len(s) != 3 {
		t.Errorf("len = %d, want 3", len(s))
	}
	if !s.Has(tile.ID{}) || s.Has(tile.ID{X: 1, Y: 0, Z: 1}) {
		t.Errorf("Has() mismatch")
	}
	want := []tile.ID{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}}
	if diff := cmp.Diff(want, s.Sorted()); diff != "" {
		t.Errorf("Sorted() mismatch (-want+got):\n%v", diff)
	}
	if diff := cmp.Diff(s, tile.Collect(s.All())); diff != "" {
		t.Errorf("Collect(All()) mismatch (-want+got):\n%v", diff)
	}
}
