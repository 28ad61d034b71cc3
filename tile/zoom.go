package tile

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ParseZooms parses a comma separated list of zooms and inclusive ranges, e.g. "0-3,7".
// The result is sorted and free of duplicates.
func ParseZooms(s string) ([]uint32, error) {
	var zooms []uint32
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		minZoom, err := parseZoom(lo)
		if err != nil {
			return nil, err
		}
		maxZoom := minZoom
		if isRange {
			if maxZoom, err = parseZoom(hi); err != nil {
				return nil, err
			}
		}
		if minZoom > maxZoom {
			return nil, fmt.Errorf("%w: empty range %q", ErrInvalidZoom, part)
		}
		for z := minZoom; z <= maxZoom; z++ {
			zooms = append(zooms, z)
		}
	}
	slices.Sort(zooms)
	return slices.Compact(zooms), nil
}

func parseZoom(s string) (uint32, error) {
	z, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidZoom, s, err)
	}
	if z > MaxZoom {
		return 0, fmt.Errorf("%w: %d > %d", ErrInvalidZoom, z, MaxZoom)
	}
	return uint32(z), nil
}
