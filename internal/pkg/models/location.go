package models

import "time"

// Location sources reported by the vehicle-status surface
const (
	SourceTracker            = "tracker"
	SourcePassengerAggregate = "passenger_aggregate"
)

// PassengerPing represents a single consented passenger location
// report for a vehicle. Pings are immutable and discarded once they
// fall outside the aggregation window.
type PassengerPing struct {
	VehicleID string    `json:"vehicle_id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

// DerivedLocation is a point-in-time position estimate computed from
// passenger pings. Confidence never reaches 1.0; the estimate is
// always probabilistic.
type DerivedLocation struct {
	Latitude     float64   `json:"lat"`
	Longitude    float64   `json:"lng"`
	Geohash      string    `json:"geohash,omitempty"`
	Confidence   float64   `json:"confidence"`
	Source       string    `json:"source"`
	SamplesCount int       `json:"samples_count"`
	DerivedAt    time.Time `json:"derived_at"`
}

// TrackerTelemetry represents a position report from a vehicle's
// primary tracking device.
type TrackerTelemetry struct {
	VehicleID  string    `json:"vehicle_id"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}

// VehicleLocation is the answer of the vehicle-status surface: the
// tracker position when fresh, otherwise a passenger-derived
// estimate.
type VehicleLocation struct {
	VehicleID  string    `json:"vehicle_id"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lng"`
	Source     string    `json:"source"`
	Confidence float64   `json:"confidence,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NearbyVehicle is one entry of a radius query over the vehicle geo
// index, closest first.
type NearbyVehicle struct {
	VehicleID      string  `json:"vehicle_id"`
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lng"`
	DistanceMeters float64 `json:"distance_meters"`
}

// DerivedLocationEvent is published whenever a derived estimate is
// computed, for the vehicle-status service and dashboards.
type DerivedLocationEvent struct {
	VehicleID string          `json:"vehicle_id"`
	Location  DerivedLocation `json:"location"`
}
