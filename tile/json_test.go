package tile_test

import (
	"errors"
	"testing"

	"github.com/eak1mov/go-utiles/tile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	want := tile.ID{X: 486, Y: 332, Z: 10}
	for _, input := range []string{
		"[486, 332, 10]",
		" [486,332,10]\n",
		`{"x": 486, "y": 332, "z": 10}`,
		`{"z": 10, "x": 486, "y": 332}`,
		want.JSONArray(),
		want.JSONObject(),
	} {
		got, err := tile.ParseJSON(input)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ParseJSON(%q) mismatch (-want+got):\n%v", input, diff)
		}
	}
	if got := want.JSONArray(); got != "[486, 332, 10]" {
		t.Errorf("JSONArray() = %q", got)
	}
	if got := want.JSONObject(); got != `{"x": 486, "y": 332, "z": 10}` {
		t.Errorf("JSONObject() = %q", got)
	}
}

func TestParseJSONErrors(t *testing.T) {
	for _, input := range []string{"", "486 332 10", "[1, 2]", "[1, 2, 3, 4]", "[-1, 0, 0]", `{"x": 1, "y": 1}`, "[1,"} {
		_, err := tile.ParseJSON(input)
		require.Truef(t, errors.Is(err, tile.ErrParse), "ParseJSON(%q) = %v", input, err)
	}
	_, err := tile.ParseJSON("[2, 0, 1]")
	require.Truef(t, errors.Is(err, tile.ErrInvalidTile), "ParseJSON() = %v", err)
}
