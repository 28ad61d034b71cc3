// Package tilefmt renders tiles through string templates such as "{z}/{x}/{y}.png".
package tilefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/eak1mov/go-utiles/pm"
	"github.com/eak1mov/go-utiles/tile"
)

var ErrInvalidPattern = errors.New("utiles: invalid tile format pattern")

type token func(tile.ID) (string, error)

func text(f func(tile.ID) string) token {
	return func(t tile.ID) (string, error) { return f(t), nil }
}

func number(f func(tile.ID) uint64) token {
	return text(func(t tile.ID) string { return strconv.FormatUint(f(t), 10) })
}

func pmTileID(t tile.ID) (string, error) {
	id, err := pm.EncodeTileID(t)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(id, 10), nil
}

var tokens = map[string]token{
	"x":        number(func(t tile.ID) uint64 { return uint64(t.X) }),
	"y":        number(func(t tile.ID) uint64 { return uint64(t.Y) }),
	"z":        number(func(t tile.ID) uint64 { return uint64(t.Z) }),
	"-y":       number(func(t tile.ID) uint64 { return uint64(tile.FlipY(t.Y, t.Z)) }),
	"zxy":      text(func(t tile.ID) string { return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y) }),
	"quadkey":  text(tile.ID.Quadkey),
	"qk":       text(tile.ID.Quadkey),
	"pmtileid": pmTileID,
	"pmid":     pmTileID,
	"rmid":     number(tile.PyramidRowMajorID),
	"json":     text(tile.ID.JSONArray),
	"json_obj": text(tile.ID.JSONObject),
}

type segment struct {
	literal string
	token   token
}

// Formatter is a parsed pattern, safe for concurrent use.
type Formatter struct {
	pattern  string
	segments []segment
}

// New parses the pattern. Placeholders are {x}, {y}, {z}, {-y} (TMS row), {zxy}, {quadkey},
// {pmtileid}, {rmid}, {json} and {json_obj}.
func New(pattern string) (*Formatter, error) {
	f := &Formatter{pattern: pattern}
	rest := pattern
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if closing := strings.IndexByte(rest, '}'); closing >= 0 && (open < 0 || closing < open) {
			return nil, fmt.Errorf("%w: unmatched '}' in %q", ErrInvalidPattern, pattern)
		}
		if open < 0 {
			f.segments = append(f.segments, segment{literal: rest})
			break
		}
		if open > 0 {
			f.segments = append(f.segments, segment{literal: rest[:open]})
		}
		name, after, ok := strings.Cut(rest[open+1:], "}")
		if !ok {
			return nil, fmt.Errorf("%w: unclosed '{' in %q", ErrInvalidPattern, pattern)
		}
		tok, ok := tokens[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown placeholder {%s} in %q", ErrInvalidPattern, name, pattern)
		}
		f.segments = append(f.segments, segment{token: tok})
		rest = after
	}
	return f, nil
}

// Format renders the tile. Invalid tiles are rejected before any placeholder is expanded.
func (f *Formatter) Format(t tile.ID) (string, error) {
	if err := t.Check(); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range f.segments {
		if s.token == nil {
			b.WriteString(s.literal)
			continue
		}
		v, err := s.token(t)
		if err != nil {
			return "", err
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

func (f *Formatter) String() string {
	return f.pattern
}
