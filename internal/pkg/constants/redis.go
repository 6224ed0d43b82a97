package constants

// Redis key patterns and sets
const (
	// KeyTrackerTelemetry stores the last telemetry report per vehicle (JSON)
	KeyTrackerTelemetry = "vehicle:telemetry:%s"

	// KeyDerivedLocation caches the last derived estimate per vehicle (JSON)
	KeyDerivedLocation = "vehicle:derived:%s"

	// KeyVehicleGeo is the geo set holding the latest known position of every vehicle
	KeyVehicleGeo = "vehicle_locations"
)
