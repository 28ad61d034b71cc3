package cover

import (
	"encoding/json"
	"fmt"

	"github.com/eak1mov/go-utiles/tile"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ParseGeoJSON decodes a GeoJSON geometry, Feature or FeatureCollection.
// Features are gathered into a collection, features without geometry are skipped.
func ParseGeoJSON(data []byte) (orb.Geometry, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		collection := make(orb.Collection, 0, len(fc.Features))
		for _, f := range fc.Features {
			if f.Geometry != nil {
				collection = append(collection, f.Geometry)
			}
		}
		return collection, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if f.Geometry == nil {
			return orb.Collection{}, nil
		}
		return f.Geometry, nil
	case "Point", "MultiPoint", "LineString", "MultiLineString", "Polygon", "MultiPolygon", "GeometryCollection":
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if g.Geometry() == nil {
			return orb.Collection{}, nil
		}
		return g.Geometry(), nil
	}
	return nil, fmt.Errorf("%w: unknown GeoJSON type %q", ErrParse, head.Type)
}

// GeoJSON parses the document and returns its coverage at the given zoom.
// Nothing is computed when the document is malformed.
func GeoJSON(data []byte, zoom uint32, opts ...Option) (tile.Set, error) {
	g, err := ParseGeoJSON(data)
	if err != nil {
		return nil, err
	}
	return Geometry(g, zoom, opts...)
}
