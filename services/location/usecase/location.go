package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/buslink/buslink/internal/pkg/logger"
	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/services/location"
)

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	cfg        *models.Config
	aggregator *Aggregator
	repo       location.LocationRepo
	gw         location.LocationGW
}

// NewLocationUC creates a new location use case
func NewLocationUC(repo location.LocationRepo, gw location.LocationGW, cfg *models.Config) *LocationUC {
	return &LocationUC{
		cfg:        cfg,
		aggregator: NewAggregator(cfg.Aggregator),
		repo:       repo,
		gw:         gw,
	}
}

// IngestPing appends a consented passenger ping to the vehicle's
// aggregation buffer. Coordinates are accepted as-is; plausibility is
// handled statistically at derive time.
func (uc *LocationUC) IngestPing(ctx context.Context, ping *models.PassengerPing) error {
	if ping == nil {
		return fmt.Errorf("ping cannot be nil")
	}
	if ping.VehicleID == "" {
		return fmt.Errorf("vehicle id is required")
	}
	if ping.UserID == "" {
		return fmt.Errorf("user id is required")
	}

	// Set timestamp if not provided
	if ping.Timestamp.IsZero() {
		ping.Timestamp = models.Now()
	}

	uc.aggregator.Ingest(ping.VehicleID, ping.UserID, ping.Latitude, ping.Longitude, ping.Timestamp)
	return nil
}

// DeriveLocation computes the current passenger-derived estimate for a
// vehicle, caches it and publishes it for the vehicle-status surface.
func (uc *LocationUC) DeriveLocation(ctx context.Context, vehicleID string) (*models.DerivedLocation, error) {
	if vehicleID == "" {
		return nil, fmt.Errorf("vehicle id is required")
	}

	loc, ok := uc.aggregator.Derive(vehicleID, models.Now())
	if !ok {
		return nil, location.ErrNoEstimate
	}

	if err := uc.repo.CacheDerivedLocation(ctx, vehicleID, loc); err != nil {
		logger.Warn("Failed to cache derived location",
			logger.String("vehicle_id", vehicleID),
			logger.Err(err))
		// The estimate is still valid without the cache
	}

	event := &models.DerivedLocationEvent{VehicleID: vehicleID, Location: *loc}
	if err := uc.gw.PublishDerivedLocation(ctx, event); err != nil {
		logger.Warn("Failed to publish derived location",
			logger.String("vehicle_id", vehicleID),
			logger.Err(err))
	}

	return loc, nil
}

// UpdateTrackerTelemetry stores a position report from the vehicle's
// primary tracking device.
func (uc *LocationUC) UpdateTrackerTelemetry(ctx context.Context, telemetry *models.TrackerTelemetry) error {
	if telemetry == nil {
		return fmt.Errorf("telemetry cannot be nil")
	}
	if telemetry.VehicleID == "" {
		return fmt.Errorf("vehicle id is required")
	}

	if telemetry.RecordedAt.IsZero() {
		telemetry.RecordedAt = models.Now()
	}

	return uc.repo.StoreTrackerTelemetry(ctx, telemetry)
}

// FindNearbyVehicles returns vehicles within a radius of a point
func (uc *LocationUC) FindNearbyVehicles(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.NearbyVehicle, error) {
	if radiusMeters <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}

	return uc.repo.FindNearbyVehicles(ctx, lat, lng, radiusMeters)
}

// GetVehicleLocation answers the vehicle-status query: fresh tracker
// telemetry wins; when the tracker is silent or stale the derived
// estimate substitutes; with neither, the location is unavailable and
// callers must not be handed stale data as fresh.
func (uc *LocationUC) GetVehicleLocation(ctx context.Context, vehicleID string) (*models.VehicleLocation, error) {
	if vehicleID == "" {
		return nil, fmt.Errorf("vehicle id is required")
	}

	staleAfter := time.Duration(uc.cfg.Tracker.StaleAfterSeconds) * time.Second
	now := models.Now()

	telemetry, err := uc.repo.GetTrackerTelemetry(ctx, vehicleID)
	if err != nil {
		logger.Warn("Failed to read tracker telemetry",
			logger.String("vehicle_id", vehicleID),
			logger.Err(err))
	}
	if telemetry != nil && now.Sub(telemetry.RecordedAt) <= staleAfter {
		return &models.VehicleLocation{
			VehicleID: vehicleID,
			Latitude:  telemetry.Latitude,
			Longitude: telemetry.Longitude,
			Source:    models.SourceTracker,
			UpdatedAt: telemetry.RecordedAt,
		}, nil
	}

	derived, err := uc.DeriveLocation(ctx, vehicleID)
	if err != nil {
		return nil, location.ErrLocationUnavailable
	}

	return &models.VehicleLocation{
		VehicleID:  vehicleID,
		Latitude:   derived.Latitude,
		Longitude:  derived.Longitude,
		Source:     derived.Source,
		Confidence: derived.Confidence,
		UpdatedAt:  derived.DerivedAt,
	}, nil
}
