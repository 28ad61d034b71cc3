package tile_test

import (
	"slices"
	"testing"

	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/go-cmp/cmp"
)

func TestZBoxAll(t *testing.T) {
	b := tile.ZBox{MinX: 1, MaxX: 2, MinY: 3, MaxY: 4, Zoom: 3}
	want := []tile.ID{{X: 1, Y: 3, Z: 3}, {X: 2, Y: 3, Z: 3}, {X: 1, Y: 4, Z: 3}, {X: 2, Y: 4, Z: 3}}
	got := slices.Collect(b.All())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All() mismatch (-want+got):\n%v", diff)
	}
	if diff := cmp.Diff(want, slices.Collect(b.All())); diff != "" {
		t.Errorf("All() second pass mismatch (-want+got):\n%v", diff)
	}
	for _, tileID := range got {
		if !b.Contains(tileID) {
			t.Errorf("Contains(%v) = false", tileID)
		}
	}
	if b.Contains(tile.ID{X: 0, Y: 3, Z: 3}) || b.Contains(tile.ID{X: 1, Y: 3, Z: 4}) {
		t.Errorf("Contains() = true for a tile outside the box")
	}
	if w, h := b.Dimensions(); w != 2 || h != 2 || b.Len() != 4 {
		t.Errorf("Dimensions() = (%d, %d), Len() = %d", w, h, b.Len())
	}
}

func TestZBoxEarlyStop(t *testing.T) {
	var n int
	for range tile.FullZBox(tile.MaxZoom).All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("visited %d tiles, want 3", n)
	}
	if got := tile.FullZBox(tile.MaxZoom).Len(); got != 1<<62 {
		t.Errorf("FullZBox(MaxZoom).Len() = %d", got)
	}
}

func TestZBoxFlipY(t *testing.T) {
	b := tile.ZBox{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1, Zoom: 2}
	want := tile.ZBox{MinX: 0, MaxX: 1, MinY: 2, MaxY: 3, Zoom: 2}
	if diff := cmp.Diff(want, b.FlipY()); diff != "" {
		t.Errorf("FlipY() mismatch (-want+got):\n%v", diff)
	}
	if diff := cmp.Diff(b, b.FlipY().FlipY()); diff != "" {
		t.Errorf("FlipY().FlipY() mismatch (-want+got):\n%v", diff)
	}
}

func TestZBoxZoomIn(t *testing.T) {
	b := tile.ZBox{MinX: 1, MaxX: 2, MinY: 0, MaxY: 0, Zoom: 2}
	want := tile.ZBox{MinX: 4, MaxX: 11, MinY: 0, MaxY: 3, Zoom: 4}
	if diff := cmp.Diff(want, b.ZoomIn(2)); diff != "" {
		t.Errorf("ZoomIn(2) mismatch (-want+got):\n%v", diff)
	}
}

func TestZBoxes(t *testing.T) {
	bs := tile.ZBoxes{
		{MinX: 3, MaxX: 3, MinY: 1, MaxY: 1, Zoom: 2},
		{MinX: 0, MaxX: 0, MinY: 1, MaxY: 1, Zoom: 2},
	}
	want := []tile.ID{{X: 3, Y: 1, Z: 2}, {X: 0, Y: 1, Z: 2}}
	if diff := cmp.Diff(want, slices.Collect(bs.All())); diff != "" {
		t.Errorf("All() mismatch (-want+got):\n%v", diff)
	}
	if bs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bs.Len())
	}
	wantFlipped := tile.ZBoxes{
		{MinX: 3, MaxX: 3, MinY: 2, MaxY: 2, Zoom: 2},
		{MinX: 0, MaxX: 0, MinY: 2, MaxY: 2, Zoom: 2},
	}
	if diff := cmp.Diff(wantFlipped, bs.FlipY()); diff != "" {
		t.Errorf("FlipY() mismatch (-want+got):\n%v", diff)
	}
}
