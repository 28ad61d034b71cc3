package tile

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSON parses a tile written either as an array [x, y, z] or as an object {"x": x, "y": y, "z": z}.
func ParseJSON(s string) (ID, error) {
	s = strings.TrimSpace(s)
	var t ID
	switch {
	case strings.HasPrefix(s, "["):
		var xyz []uint32
		if err := json.Unmarshal([]byte(s), &xyz); err != nil {
			return ID{}, fmt.Errorf("%w: %q: %w", ErrParse, s, err)
		}
		if len(xyz) != 3 {
			return ID{}, fmt.Errorf("%w: %q: want 3 elements, got %d", ErrParse, s, len(xyz))
		}
		t = ID{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	case strings.HasPrefix(s, "{"):
		var obj struct {
			X *uint32 `json:"x"`
			Y *uint32 `json:"y"`
			Z *uint32 `json:"z"`
		}
		if err := json.Unmarshal([]byte(s), &obj); err != nil {
			return ID{}, fmt.Errorf("%w: %q: %w", ErrParse, s, err)
		}
		if obj.X == nil || obj.Y == nil || obj.Z == nil {
			return ID{}, fmt.Errorf("%w: %q: x, y and z are required", ErrParse, s)
		}
		t = ID{X: *obj.X, Y: *obj.Y, Z: *obj.Z}
	default:
		return ID{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	if err := t.Check(); err != nil {
		return ID{}, err
	}
	return t, nil
}

// JSONArray formats the tile as [x, y, z].
func (t ID) JSONArray() string {
	return fmt.Sprintf("[%d, %d, %d]", t.X, t.Y, t.Z)
}

// JSONObject formats the tile as {"x": x, "y": y, "z": z}.
func (t ID) JSONObject() string {
	return fmt.Sprintf(`{"x": %d, "y": %d, "z": %d}`, t.X, t.Y, t.Z)
}
