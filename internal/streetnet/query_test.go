package streetnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardrecon/boundary-engine/internal/geomath"
)

func fixtureProviders() []ProviderSegment {
	return []ProviderSegment{
		{
			ID:   "main-1",
			Name: "Main Street",
			Geometry: []geomath.Position{
				{Lon: -95.0, Lat: 30.0},
				{Lon: -94.99, Lat: 30.0},
			},
			CityFIPS: "4800000",
		},
		{
			ID:   "oak-1",
			Name: "Oak Ave",
			Geometry: []geomath.Position{
				{Lon: -94.995, Lat: 29.995},
				{Lon: -94.995, Lat: 30.005},
			},
			CityFIPS: "4800000",
		},
		{
			ID:   "elm-1",
			Name: "Elm St",
			Geometry: []geomath.Position{
				{Lon: -95.1, Lat: 30.1},
				{Lon: -95.09, Lat: 30.1},
			},
			CityFIPS: "4800000",
		},
	}
}

func TestFromProviderRejectsEmpty(t *testing.T) {
	_, err := FromProvider(nil)
	assert.Error(t, err)
}

func TestFromProviderSkipsDegenerateGeometry(t *testing.T) {
	providers := append(fixtureProviders(), ProviderSegment{ID: "bad", Name: "Nowhere Rd", Geometry: []geomath.Position{{Lon: 0, Lat: 0}}})
	net, err := FromProvider(providers)
	require.NoError(t, err)
	assert.Equal(t, 3, net.Len())
}

func TestFindByNameExact(t *testing.T) {
	net, err := FromProvider(fixtureProviders())
	require.NoError(t, err)

	hits := net.FindByName("Main Street")
	require.Len(t, hits, 1)
	assert.Equal(t, "main-1", hits[0].ID)
}

func TestFindByNameAbbreviationMatchesExpandedForm(t *testing.T) {
	net, err := FromProvider(fixtureProviders())
	require.NoError(t, err)

	hits := net.FindByName("Oak Avenue")
	require.Len(t, hits, 1)
	assert.Equal(t, "oak-1", hits[0].ID)
}

func TestFindByNameMatchesAltName(t *testing.T) {
	providers := append(fixtureProviders(), ProviderSegment{
		ID:       "mlk-1",
		Name:     "Martin Luther King Boulevard",
		AltNames: []string{"Rural Route 4"},
		Geometry: []geomath.Position{
			{Lon: -95.2, Lat: 30.2},
			{Lon: -95.19, Lat: 30.2},
		},
		CityFIPS: "4800000",
	})
	net, err := FromProvider(providers)
	require.NoError(t, err)

	hits := net.FindByName("Rural Route 4")
	require.Len(t, hits, 1)
	assert.Equal(t, "mlk-1", hits[0].ID)
}

func TestFindByNameNoMatch(t *testing.T) {
	net, err := FromProvider(fixtureProviders())
	require.NoError(t, err)

	hits := net.FindByName("Nonexistent Boulevard")
	assert.Empty(t, hits)
}

func TestFindInBBox(t *testing.T) {
	net, err := FromProvider(fixtureProviders())
	require.NoError(t, err)

	hits := net.FindInBBox(geomath.BBox{MinLon: -95.0, MaxLon: -94.98, MinLat: 29.99, MaxLat: 30.01})
	var ids []string
	for _, h := range hits {
		ids = append(ids, h.ID)
	}
	assert.Contains(t, ids, "main-1")
	assert.Contains(t, ids, "oak-1")
	assert.NotContains(t, ids, "elm-1")
}

func TestFindNearPoint(t *testing.T) {
	net, err := FromProvider(fixtureProviders())
	require.NoError(t, err)

	// On Oak Ave and about 22 m north of Main Street: both are within 50 m,
	// Oak nearer.
	hits := net.FindNearPoint(geomath.Position{Lon: -94.995, Lat: 30.0002}, 50)
	require.NotEmpty(t, hits)
	assert.Equal(t, "oak-1", hits[0].ID)
}

func TestFindNearPointRespectsRadius(t *testing.T) {
	net, err := FromProvider(fixtureProviders())
	require.NoError(t, err)

	hits := net.FindNearPoint(geomath.Position{Lon: -95.1, Lat: 30.1}, 1)
	for _, h := range hits {
		assert.NotEqual(t, "main-1", h.ID)
	}
}

func TestFromProviderWithCellSizeFallsBackOnNonPositive(t *testing.T) {
	net, err := FromProviderWithCellSize(fixtureProviders(), 0)
	require.NoError(t, err)
	hits := net.FindByName("Main Street")
	require.NotEmpty(t, hits)
}

func TestFromProviderWithCellSizeCustomValue(t *testing.T) {
	net, err := FromProviderWithCellSize(fixtureProviders(), 0.001)
	require.NoError(t, err)
	hits := net.FindNearPoint(geomath.Position{Lon: -94.995, Lat: 30.0002}, 50)
	require.NotEmpty(t, hits)
	assert.Equal(t, "oak-1", hits[0].ID)
}
