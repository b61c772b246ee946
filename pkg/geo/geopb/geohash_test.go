package geopb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeoHashRejectsEmpty(t *testing.T) {
	_, err := EmptyEnvelope().GeoHash(GeoHashAutoPrecision)
	require.Error(t, err)
}

func TestGeoHashRejectsOutOfDomain(t *testing.T) {
	_, err := NewEnvelope(-200, 0, -190, 1).GeoHash(GeoHashAutoPrecision)
	require.Error(t, err)
}

func TestGeoHashPoint(t *testing.T) {
	h, err := Point(-122.42, 37.77).GeoHash(5)
	require.NoError(t, err)
	require.Len(t, h, 5)
}

func TestGeoHashAutoPrecisionCoarserForLargerEnvelope(t *testing.T) {
	small, err := NewEnvelope(-1, -1, 1, 1).GeoHash(GeoHashAutoPrecision)
	require.NoError(t, err)
	large, err := NewEnvelope(-90, -45, 90, 45).GeoHash(GeoHashAutoPrecision)
	require.NoError(t, err)
	require.Greater(t, len(small), len(large))
}
