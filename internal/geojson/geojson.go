// Package geojson translates between the core pipeline's plain
// []geomath.Position rings and the wire format spec.md §6 documents: one
// Feature<Polygon> per ward (ward_id, ward_name, city_fips, city_name,
// state properties; a single CCW closed exterior ring, no holes) wrapped in
// a FeatureCollection for combined city output.
package geojson

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/wardrecon/boundary-engine/internal/geomath"
)

// WardProperties are the feature properties spec.md §6 requires on every
// emitted ward polygon.
type WardProperties struct {
	WardID   string `json:"ward_id"`
	WardName string `json:"ward_name"`
	CityFIPS string `json:"city_fips"`
	CityName string `json:"city_name"`
	State    string `json:"state"`
}

// EncodeWardFeature converts one closed ring plus its identifying
// properties into a GeoJSON Feature<Polygon>.
func EncodeWardFeature(ring []geomath.Position, props WardProperties) (*geojson.Feature, error) {
	if len(ring) < 4 {
		return nil, eris.New("ring must have at least 4 points (closed triangle) to encode as a polygon")
	}

	coords := make([]geom.Coord, len(ring))
	for i, p := range ring {
		coords[i] = geom.Coord{p.Lon, p.Lat}
	}

	poly, err := geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{coords})
	if err != nil {
		return nil, eris.Wrap(err, "build polygon geometry")
	}

	return &geojson.Feature{
		Geometry: poly,
		Properties: map[string]interface{}{
			"ward_id":   props.WardID,
			"ward_name": props.WardName,
			"city_fips": props.CityFIPS,
			"city_name": props.CityName,
			"state":     props.State,
		},
	}, nil
}

// EncodeWardFeatureCollection wraps a set of ward rings/properties in a
// single FeatureCollection for combined city output.
func EncodeWardFeatureCollection(rings []([]geomath.Position), props []WardProperties) (*geojson.FeatureCollection, error) {
	if len(rings) != len(props) {
		return nil, eris.New("ring count and property count must match")
	}

	fc := &geojson.FeatureCollection{}
	for i, ring := range rings {
		feature, err := EncodeWardFeature(ring, props[i])
		if err != nil {
			return nil, eris.Wrapf(err, "encode ward %s", props[i].WardID)
		}
		fc.Features = append(fc.Features, feature)
	}
	return fc, nil
}

// DecodeWardFeature extracts the exterior ring and properties back out of a
// Feature<Polygon> produced by EncodeWardFeature (or an equivalent golden
// vector file).
func DecodeWardFeature(feature *geojson.Feature) ([]geomath.Position, WardProperties, error) {
	poly, ok := feature.Geometry.(*geom.Polygon)
	if !ok {
		return nil, WardProperties{}, eris.New("feature geometry is not a Polygon")
	}
	if poly.NumLinearRings() == 0 {
		return nil, WardProperties{}, eris.New("polygon has no rings")
	}

	exterior := poly.LinearRing(0)
	ring := make([]geomath.Position, exterior.NumCoords())
	for i := 0; i < exterior.NumCoords(); i++ {
		c := exterior.Coord(i)
		ring[i] = geomath.Position{Lon: c.X(), Lat: c.Y()}
	}

	props := decodeProperties(feature.Properties)
	return ring, props, nil
}

// DecodeFeatureCollection parses raw GeoJSON bytes into per-ward rings and
// properties, in Feature order.
func DecodeFeatureCollection(data []byte) ([][]geomath.Position, []WardProperties, error) {
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, nil, eris.Wrap(err, "unmarshal FeatureCollection")
	}

	rings := make([][]geomath.Position, 0, len(fc.Features))
	props := make([]WardProperties, 0, len(fc.Features))
	for _, f := range fc.Features {
		ring, p, err := DecodeWardFeature(f)
		if err != nil {
			return nil, nil, eris.Wrap(err, "decode feature")
		}
		rings = append(rings, ring)
		props = append(props, p)
	}
	return rings, props, nil
}

// DecodeFeatureArray parses a bare JSON array of Feature<Polygon> objects
// (not wrapped in a FeatureCollection) — the shape spec.md §6's golden
// vector file uses for expected_polygons.
func DecodeFeatureArray(data []byte) ([][]geomath.Position, []WardProperties, error) {
	var features []*geojson.Feature
	if err := json.Unmarshal(data, &features); err != nil {
		return nil, nil, eris.Wrap(err, "unmarshal Feature array")
	}

	rings := make([][]geomath.Position, 0, len(features))
	props := make([]WardProperties, 0, len(features))
	for _, f := range features {
		ring, p, err := DecodeWardFeature(f)
		if err != nil {
			return nil, nil, eris.Wrap(err, "decode feature")
		}
		rings = append(rings, ring)
		props = append(props, p)
	}
	return rings, props, nil
}

func decodeProperties(raw map[string]interface{}) WardProperties {
	str := func(key string) string {
		v, _ := raw[key].(string)
		return v
	}
	return WardProperties{
		WardID:   str("ward_id"),
		WardName: str("ward_name"),
		CityFIPS: str("city_fips"),
		CityName: str("city_name"),
		State:    str("state"),
	}
}
