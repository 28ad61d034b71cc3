package pyramid_test

import (
	"testing"

	"github.com/eak1mov/go-utiles/pyramid"
	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/go-cmp/cmp"
)

func children(t *testing.T, parent tile.ID, depth uint32) []tile.ID {
	t.Helper()
	b, err := parent.Children(depth)
	if err != nil {
		t.Fatalf("Children(%d) error: %v", depth, err)
	}
	var tiles []tile.ID
	for c := range b.All() {
		tiles = append(tiles, c)
	}
	return tiles
}

func TestSimplify(t *testing.T) {
	testCases := []struct {
		name  string
		input []tile.ID
		want  []tile.ID
	}{
		{
			name:  "covered descendant",
			input: []tile.ID{{X: 1298, Y: 3129, Z: 13}, {X: 649, Y: 1564, Z: 12}, {X: 650, Y: 1564, Z: 12}},
			want:  []tile.ID{{X: 649, Y: 1564, Z: 12}, {X: 650, Y: 1564, Z: 12}},
		},
		{
			name:  "three siblings",
			input: []tile.ID{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}},
			want:  []tile.ID{{X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 0, Z: 1}},
		},
		{
			name:  "four siblings",
			input: children(t, tile.ID{X: 3, Y: 5, Z: 4}, 1),
			want:  []tile.ID{{X: 3, Y: 5, Z: 4}},
		},
		{
			name:  "recursive",
			input: children(t, tile.ID{X: 1, Y: 1, Z: 2}, 3),
			want:  []tile.ID{{X: 1, Y: 1, Z: 2}},
		},
		{
			name: "mixed zooms",
			input: append(children(t, tile.ID{X: 2, Y: 2, Z: 3}, 1),
				tile.ID{X: 3, Y: 2, Z: 3}, tile.ID{X: 2, Y: 3, Z: 3},
				tile.ID{X: 6, Y: 6, Z: 4}, tile.ID{X: 7, Y: 6, Z: 4}, tile.ID{X: 6, Y: 7, Z: 4}, tile.ID{X: 7, Y: 7, Z: 4},
				tile.ID{X: 12, Y: 12, Z: 5}),
			want: []tile.ID{{X: 1, Y: 1, Z: 2}},
		},
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := pyramid.Simplify(tile.NewSet(tc.input...)).Sorted()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Simplify() mismatch (-want+got):\n%v", diff)
			}
			again := pyramid.Simplify(tile.NewSet(got...)).Sorted()
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("Simplify() is not idempotent (-want+got):\n%v", diff)
			}
		})
	}
}

func TestSimplifyMinZoom(t *testing.T) {
	input := tile.NewSet(children(t, tile.ID{X: 1, Y: 1, Z: 2}, 2)...)
	got := pyramid.Simplify(input, pyramid.WithMinZoom(3)).Sorted()
	want := tile.NewSet(children(t, tile.ID{X: 1, Y: 1, Z: 2}, 1)...).Sorted()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Simplify(WithMinZoom(3)) mismatch (-want+got):\n%v", diff)
	}

	got = pyramid.Simplify(input, pyramid.WithMinZoom(4)).Sorted()
	if diff := cmp.Diff(input.Sorted(), got); diff != "" {
		t.Errorf("Simplify(WithMinZoom(4)) mismatch (-want+got):\n%v", diff)
	}
}

func TestMerge(t *testing.T) {
	input := tile.NewSet(children(t, tile.ID{X: 1, Y: 1, Z: 2}, 2)...)
	merged, changed := pyramid.Merge(input, 0)
	if !changed {
		t.Errorf("Merge() changed = false")
	}
	want := tile.NewSet(children(t, tile.ID{X: 1, Y: 1, Z: 2}, 1)...).Sorted()
	if diff := cmp.Diff(want, merged.Sorted()); diff != "" {
		t.Errorf("Merge() mismatch (-want+got):\n%v", diff)
	}

	single := tile.NewSet(tile.ID{X: 1, Y: 1, Z: 2})
	merged, changed = pyramid.Merge(single, 0)
	if changed {
		t.Errorf("Merge() changed = true")
	}
	if diff := cmp.Diff(single, merged); diff != "" {
		t.Errorf("Merge() mismatch (-want+got):\n%v", diff)
	}
}
