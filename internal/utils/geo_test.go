package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			point1:    GeoPoint{Latitude: 29.6857, Longitude: 76.9905},
			point2:    GeoPoint{Latitude: 29.6857, Longitude: 76.9905},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "Short distance within a town",
			point1:    GeoPoint{Latitude: 29.6857, Longitude: 76.9905},
			point2:    GeoPoint{Latitude: 29.6860, Longitude: 76.9910},
			expected:  58.0, // ~58 m
			tolerance: 10.0,
		},
		{
			name:      "Cross equator",
			point1:    GeoPoint{Latitude: -1.0, Longitude: 100.0},
			point2:    GeoPoint{Latitude: 1.0, Longitude: 100.0},
			expected:  222400.0, // ~222.4 km (2 degrees latitude)
			tolerance: 5000.0,
		},
		{
			name:      "Antipodal points (maximum distance)",
			point1:    GeoPoint{Latitude: 0.0, Longitude: 0.0},
			point2:    GeoPoint{Latitude: 0.0, Longitude: 180.0},
			expected:  20015000.0, // half of Earth's circumference
			tolerance: 100000.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HaversineDistance(tt.point1, tt.point2)

			assert.GreaterOrEqual(t, result, 0.0, "Distance should be non-negative")
			assert.InDelta(t, tt.expected, result, tt.tolerance,
				"Distance should be within tolerance of expected value")
		})
	}
}

func TestHaversineDistance_Poles(t *testing.T) {
	northPole := GeoPoint{Latitude: 90.0, Longitude: 0.0}
	southPole := GeoPoint{Latitude: -90.0, Longitude: 0.0}

	distance := HaversineDistance(northPole, southPole)

	expected := math.Pi * EarthRadiusMeters
	assert.InDelta(t, expected, distance, 10000.0)
}

func TestEncodeDecodeGeohash(t *testing.T) {
	point := GeoPoint{Latitude: 29.6857, Longitude: 76.9905}

	hash := EncodeLocation(point, 9)
	assert.NotEmpty(t, hash)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, point.Latitude, lat, 0.001)
	assert.InDelta(t, point.Longitude, lng, 0.001)
}
