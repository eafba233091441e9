package geojson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardrecon/boundary-engine/internal/geomath"
)

func unitRing() []geomath.Position {
	return geomath.CloseRing([]geomath.Position{
		{Lon: -95.0, Lat: 30.0},
		{Lon: -94.99, Lat: 30.0},
		{Lon: -94.99, Lat: 30.01},
		{Lon: -95.0, Lat: 30.01},
	})
}

func TestEncodeDecodeWardFeatureRoundTrips(t *testing.T) {
	ring := unitRing()
	props := WardProperties{WardID: "1", WardName: "Ward One", CityFIPS: "4805000", CityName: "Houston", State: "TX"}

	feature, err := EncodeWardFeature(ring, props)
	require.NoError(t, err)

	decodedRing, decodedProps, err := DecodeWardFeature(feature)
	require.NoError(t, err)
	assert.Equal(t, props, decodedProps)
	require.Len(t, decodedRing, len(ring))
	for i := range ring {
		assert.InDelta(t, ring[i].Lon, decodedRing[i].Lon, 1e-9)
		assert.InDelta(t, ring[i].Lat, decodedRing[i].Lat, 1e-9)
	}
}

func TestEncodeWardFeatureRejectsShortRing(t *testing.T) {
	_, err := EncodeWardFeature([]geomath.Position{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}}, WardProperties{})
	assert.Error(t, err)
}

func TestEncodeDecodeFeatureCollectionRoundTrips(t *testing.T) {
	ring := unitRing()
	fc, err := EncodeWardFeatureCollection(
		[][]geomath.Position{ring},
		[]WardProperties{{WardID: "1", WardName: "Ward One", CityFIPS: "4805000", CityName: "Houston", State: "TX"}},
	)
	require.NoError(t, err)

	data, err := json.Marshal(fc)
	require.NoError(t, err)

	rings, props, err := DecodeFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, rings, 1)
	require.Len(t, props, 1)
	assert.Equal(t, "1", props[0].WardID)
	assert.Len(t, rings[0], len(ring))
}

func TestEncodeWardFeatureCollectionRejectsMismatchedLengths(t *testing.T) {
	_, err := EncodeWardFeatureCollection([][]geomath.Position{unitRing()}, nil)
	assert.Error(t, err)
}

func TestDecodeFeatureArrayParsesBareArray(t *testing.T) {
	ring := unitRing()
	feature, err := EncodeWardFeature(ring, WardProperties{WardID: "1", WardName: "Ward One"})
	require.NoError(t, err)

	data, err := json.Marshal([]interface{}{feature})
	require.NoError(t, err)

	rings, props, err := DecodeFeatureArray(data)
	require.NoError(t, err)
	require.Len(t, rings, 1)
	require.Len(t, props, 1)
	assert.Equal(t, "1", props[0].WardID)
	assert.Len(t, rings[0], len(ring))
}
