package tile

import (
	"iter"
	"maps"
	"slices"
)

// Set is an unordered collection of distinct tiles.
type Set map[ID]struct{}

func NewSet(tiles ...ID) Set {
	s := make(Set, len(tiles))
	for _, t := range tiles {
		s[t] = struct{}{}
	}
	return s
}

// Collect builds a set from a sequence of tiles.
func Collect(seq iter.Seq[ID]) Set {
	s := make(Set)
	for t := range seq {
		s[t] = struct{}{}
	}
	return s
}

func (s Set) Add(t ID) {
	s[t] = struct{}{}
}

func (s Set) Has(t ID) bool {
	_, ok := s[t]
	return ok
}

func (s Set) All() iter.Seq[ID] {
	return maps.Keys(s)
}

// Sorted returns the tiles ordered by ID.Compare.
func (s Set) Sorted() []ID {
	return slices.SortedFunc(maps.Keys(s), ID.Compare)
}
