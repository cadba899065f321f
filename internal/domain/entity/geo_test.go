package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGeoJSONPoint(t *testing.T) {
	point, err := ParseGeoJSONPoint(`{"type":"Point","coordinates":[106.8,-6.2]}`)
	assert.NoError(t, err)
	assert.Equal(t, -6.2, point.Latitude)
	assert.Equal(t, 106.8, point.Longitude)
}

func TestParseGeoJSONPoint_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "not-a-point"},
		{"wrong type", `{"type":"Polygon","coordinates":[1,2]}`},
		{"missing coordinate", `{"type":"Point","coordinates":[1]}`},
		{"latitude out of range", `{"type":"Point","coordinates":[0,95]}`},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGeoJSONPoint(tc.raw)
			assert.Error(t, err)
		})
	}
}

func TestGreatCircleKm(t *testing.T) {
	origin := GeoPoint{Latitude: 0, Longitude: 0}

	// ~5.5km east of the origin along the equator.
	near := GeoPoint{Latitude: 0, Longitude: 0.05}
	assert.InDelta(t, 5.57, GreatCircleKm(origin, near), 0.1)

	// A full degree is ~111km.
	far := GeoPoint{Latitude: 0, Longitude: 1}
	assert.InDelta(t, 111.3, GreatCircleKm(origin, far), 1.0)

	assert.Zero(t, GreatCircleKm(origin, origin))
}

func TestWithinRadiusKm(t *testing.T) {
	origin := GeoPoint{Latitude: 0, Longitude: 0}

	assert.True(t, GeoPoint{Latitude: 0, Longitude: 0.05}.WithinRadiusKm(origin, 10))
	assert.False(t, GeoPoint{Latitude: 0, Longitude: 1}.WithinRadiusKm(origin, 10))
}
