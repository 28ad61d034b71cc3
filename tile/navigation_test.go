package tile_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParent(t *testing.T) {
	tileID := tile.ID{X: 486, Y: 332, Z: 10}
	parent, err := tileID.Parent(1)
	require.NoError(t, err)
	if diff := cmp.Diff(tile.ID{X: 243, Y: 166, Z: 9}, parent); diff != "" {
		t.Errorf("Parent(1) mismatch (-want+got):\n%v", diff)
	}
	parent, err = tileID.Parent(10)
	require.NoError(t, err)
	if diff := cmp.Diff(tile.ID{}, parent); diff != "" {
		t.Errorf("Parent(10) mismatch (-want+got):\n%v", diff)
	}
	_, err = tileID.Parent(11)
	require.Truef(t, errors.Is(err, tile.ErrInvalidDepth), "Parent(11) = %v", err)
}

func TestParents(t *testing.T) {
	want := []tile.ID{{X: 2, Y: 1, Z: 2}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 0}}
	got := slices.Collect(tile.ID{X: 5, Y: 3, Z: 3}.Parents())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parents() mismatch (-want+got):\n%v", diff)
	}
	if got := slices.Collect(tile.ID{}.Parents()); len(got) != 0 {
		t.Errorf("root Parents() = %v, want none", got)
	}
}

func TestChildren(t *testing.T) {
	tileID := tile.ID{X: 1, Y: 2, Z: 3}
	want := []tile.ID{{X: 2, Y: 4, Z: 4}, {X: 3, Y: 4, Z: 4}, {X: 2, Y: 5, Z: 4}, {X: 3, Y: 5, Z: 4}}
	children1 := tileID.Children1()
	if diff := cmp.Diff(want, children1[:]); diff != "" {
		t.Errorf("Children1() mismatch (-want+got):\n%v", diff)
	}
	children, err := tileID.Children(1)
	require.NoError(t, err)
	if diff := cmp.Diff(want, slices.Collect(children.All())); diff != "" {
		t.Errorf("Children(1) mismatch (-want+got):\n%v", diff)
	}

	for depth := range uint32(6) {
		children, err := tileID.Children(depth)
		require.NoError(t, err)
		if children.Len() != 1<<(2*depth) {
			t.Errorf("Children(%d).Len() = %d", depth, children.Len())
		}
		for child := range children.All() {
			parent, err := child.Parent(depth)
			require.NoError(t, err)
			if parent != tileID || !tileID.Contains(child) {
				t.Errorf("%v is not a descendant of %v", child, tileID)
			}
		}
	}

	_, err = tile.ID{Z: 30}.Children(2)
	require.Truef(t, errors.Is(err, tile.ErrInvalidZoom), "Children(2) = %v", err)
}

func TestSiblings(t *testing.T) {
	want := []tile.ID{{X: 2, Y: 4, Z: 4}, {X: 2, Y: 5, Z: 4}, {X: 3, Y: 5, Z: 4}}
	if diff := cmp.Diff(want, tile.ID{X: 3, Y: 4, Z: 4}.Siblings()); diff != "" {
		t.Errorf("Siblings() mismatch (-want+got):\n%v", diff)
	}
	if got := (tile.ID{}).Siblings(); got != nil {
		t.Errorf("root Siblings() = %v, want nil", got)
	}
}

func TestRelationship(t *testing.T) {
	parent := tile.ID{X: 7, Y: 9, Z: 5}
	want := []tile.SiblingRelationship{tile.UpperLeft, tile.UpperRight, tile.LowerLeft, tile.LowerRight}
	for i, child := range parent.Children1() {
		if got := child.Relationship(); got != want[i] {
			t.Errorf("%v.Relationship() = %v, want %v", child, got, want[i])
		}
	}
}

func TestNeighbors(t *testing.T) {
	testCases := []struct {
		tileID tile.ID
		wrapX  bool
		want   []tile.ID
	}{
		{
			tileID: tile.ID{X: 1, Y: 1, Z: 2},
			want: []tile.ID{
				{X: 0, Y: 0, Z: 2}, {X: 1, Y: 0, Z: 2}, {X: 2, Y: 0, Z: 2},
				{X: 0, Y: 1, Z: 2}, {X: 2, Y: 1, Z: 2},
				{X: 0, Y: 2, Z: 2}, {X: 1, Y: 2, Z: 2}, {X: 2, Y: 2, Z: 2},
			},
		},
		{
			tileID: tile.ID{X: 0, Y: 0, Z: 2},
			want:   []tile.ID{{X: 1, Y: 0, Z: 2}, {X: 0, Y: 1, Z: 2}, {X: 1, Y: 1, Z: 2}},
		},
		{
			tileID: tile.ID{X: 0, Y: 0, Z: 2},
			wrapX:  true,
			want: []tile.ID{
				{X: 3, Y: 0, Z: 2}, {X: 1, Y: 0, Z: 2},
				{X: 3, Y: 1, Z: 2}, {X: 0, Y: 1, Z: 2}, {X: 1, Y: 1, Z: 2},
			},
		},
		{
			tileID: tile.ID{X: 0, Y: 1, Z: 1},
			wrapX:  true,
			want:   []tile.ID{{X: 1, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}},
		},
		{
			tileID: tile.ID{},
			wrapX:  true,
			want:   nil,
		},
	}
	for _, tc := range testCases {
		got := tc.tileID.Neighbors(tc.wrapX)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%v.Neighbors(%v) mismatch (-want+got):\n%v", tc.tileID, tc.wrapX, diff)
		}
	}
}
