package service

import (
	"context"
	"math"
)

// knownCity anchors the mock geocoder: a position within Radius kilometers of
// the point resolves to the city's display string.
type knownCity struct {
	Display string
	Lat     float64
	Lng     float64
	Radius  float64
}

var knownCities = []knownCity{
	{Display: "Orlando, FL, United States", Lat: 28.5384, Lng: -81.3789, Radius: 40},
	{Display: "Kissimmee, FL, United States", Lat: 28.2920, Lng: -81.4076, Radius: 15},
	{Display: "Tampa, FL, United States", Lat: 27.9506, Lng: -82.4572, Radius: 35},
	{Display: "Miami, FL, United States", Lat: 25.7617, Lng: -80.1918, Radius: 40},
	{Display: "Atlanta, GA, United States", Lat: 33.7490, Lng: -84.3880, Radius: 40},
}

// mockLocationResolver stands in for a real reverse-geocoding service: it
// resolves a device position to a "City, Region, Country" string by distance
// against a small table of known cities.
type mockLocationResolver struct{}

func NewMockLocationResolver() LocationResolver {
	return mockLocationResolver{}
}

func (mockLocationResolver) Resolve(ctx context.Context, latitude, longitude float64) (string, error) {
	for _, city := range knownCities {
		if haversineKm(latitude, longitude, city.Lat, city.Lng) <= city.Radius {
			return city.Display, nil
		}
	}
	return "Unknown Location", nil
}

// haversineKm computes the great-circle distance between two points.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
