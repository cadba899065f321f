package entity

import (
	"encoding/json"
	"fmt"
	"math"
)

// EarthRadiusKm is the sphere radius used for all distance math. Radii in
// kilometers are converted to radians by dividing by this value.
const EarthRadiusKm = 6378.1

type GeoPoint struct {
	Latitude  float64 `json:"lat" firestore:"latitude"`
	Longitude float64 `json:"lng" firestore:"longitude"`
}

// Origin is the fallback map center for sellers that never supplied one.
func Origin() GeoPoint {
	return GeoPoint{Latitude: 0, Longitude: 0}
}

func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// geoJSONPoint is the wire form sellers submit: {"type":"Point","coordinates":[lng,lat]}.
type geoJSONPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// ParseGeoJSONPoint parses a serialized GeoJSON point. Coordinates are
// ordered longitude first, per the GeoJSON convention.
func ParseGeoJSONPoint(data string) (GeoPoint, error) {
	var raw geoJSONPoint
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return GeoPoint{}, fmt.Errorf("invalid map center: %w", err)
	}
	if raw.Type != "Point" || len(raw.Coordinates) != 2 {
		return GeoPoint{}, fmt.Errorf("invalid map center: expected a GeoJSON Point")
	}
	point := GeoPoint{Latitude: raw.Coordinates[1], Longitude: raw.Coordinates[0]}
	if !point.Valid() {
		return GeoPoint{}, fmt.Errorf("invalid map center: coordinates out of range")
	}
	return point, nil
}

// GreatCircleKm returns the great-circle distance between two points using
// the haversine formula.
func GreatCircleKm(a, b GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// WithinRadiusKm reports whether p lies inside the spherical cap of the
// given radius centered on origin.
func (p GeoPoint) WithinRadiusKm(origin GeoPoint, radiusKm float64) bool {
	return GreatCircleKm(p, origin) <= radiusKm
}
