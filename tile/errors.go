package tile

import "errors"

var (
	ErrInvalidTile    = errors.New("utiles: invalid tile")
	ErrInvalidZoom    = errors.New("utiles: invalid zoom")
	ErrInvalidDepth   = errors.New("utiles: invalid depth")
	ErrInvalidQuadkey = errors.New("utiles: invalid quadkey")
	ErrParse          = errors.New("utiles: tile parse error")
	ErrMixedZoom      = errors.New("utiles: tiles are not all the same zoom")
	ErrNoTiles        = errors.New("utiles: no tiles provided")
)
