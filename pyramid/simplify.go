// Package pyramid reduces multi-zoom tile sets by coalescing complete sibling quadruples into their parents.
package pyramid

import (
	"slices"

	"github.com/eak1mov/go-utiles/tile"
)

type Option func(*config)

type config struct {
	minZoom uint32
}

// WithMinZoom stops coalescing at zoom z: tiles at or below z are kept as they are.
func WithMinZoom(z uint32) Option {
	return func(c *config) {
		c.minZoom = z
	}
}

// Simplify returns an equivalent tile set in which no tile has an ancestor in the set and
// no four siblings are present together. The input is not modified.
func Simplify(tiles tile.Set, opts ...Option) tile.Set {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	sorted := slices.Collect(tiles.All())
	slices.SortFunc(sorted, func(a, b tile.ID) int { return int(a.Z) - int(b.Z) })

	result := make(tile.Set, len(sorted))
	for _, t := range sorted {
		if !coveredByAncestor(result, t, cfg.minZoom) {
			result.Add(t)
		}
	}

	for {
		merged, changed := Merge(result, cfg.minZoom)
		result = merged
		if !changed {
			return result
		}
	}
}

func coveredByAncestor(s tile.Set, t tile.ID, minZoom uint32) bool {
	if t.Z <= minZoom {
		return false
	}
	for p := range t.Parents() {
		if p.Z < minZoom {
			break
		}
		if s.Has(p) {
			return true
		}
	}
	return false
}

// Merge performs a single coalescing pass: every complete group of four siblings above
// minZoom is replaced by its parent. It reports whether any group was replaced.
func Merge(tiles tile.Set, minZoom uint32) (tile.Set, bool) {
	groups := make(map[tile.ID][]tile.ID)
	merged := make(tile.Set, len(tiles))
	for t := range tiles {
		if t.Z <= minZoom {
			merged.Add(t)
			continue
		}
		parent, _ := t.Parent(1)
		groups[parent] = append(groups[parent], t)
	}

	changed := false
	for parent, children := range groups {
		if len(children) == 4 {
			merged.Add(parent)
			changed = true
			continue
		}
		for _, c := range children {
			merged.Add(c)
		}
	}
	return merged, changed
}
