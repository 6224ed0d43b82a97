package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/buslink/buslink/internal/pkg/constants"
	"github.com/buslink/buslink/internal/pkg/database"
	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

const (
	telemetryTTL = 5 * time.Minute
	derivedTTL   = 2 * time.Minute
)

// LocationRepo caches tracker telemetry and derived estimates in Redis
type LocationRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewLocationRepo creates a new location repository
func NewLocationRepo(cfg *models.Config, redisClient *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		cfg:   cfg,
		redis: redisClient,
	}
}

// StoreTrackerTelemetry caches the latest tracker report and indexes
// the vehicle in the geospatial set for nearby lookups.
func (r *LocationRepo) StoreTrackerTelemetry(ctx context.Context, telemetry *models.TrackerTelemetry) error {
	data, err := json.Marshal(telemetry)
	if err != nil {
		return fmt.Errorf("failed to marshal telemetry: %w", err)
	}

	key := fmt.Sprintf(constants.KeyTrackerTelemetry, telemetry.VehicleID)
	if err := r.redis.Set(ctx, key, data, telemetryTTL); err != nil {
		return fmt.Errorf("failed to store telemetry: %w", err)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyVehicleGeo, telemetry.Longitude, telemetry.Latitude, telemetry.VehicleID); err != nil {
		return fmt.Errorf("failed to update vehicle geo index: %w", err)
	}

	return nil
}

// GetTrackerTelemetry returns the latest tracker report, or nil when
// the tracker has not reported within the telemetry TTL.
func (r *LocationRepo) GetTrackerTelemetry(ctx context.Context, vehicleID string) (*models.TrackerTelemetry, error) {
	key := fmt.Sprintf(constants.KeyTrackerTelemetry, vehicleID)
	data, err := r.redis.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get telemetry: %w", err)
	}

	var telemetry models.TrackerTelemetry
	if err := json.Unmarshal([]byte(data), &telemetry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal telemetry: %w", err)
	}

	return &telemetry, nil
}

// CacheDerivedLocation stores the latest passenger-derived estimate
func (r *LocationRepo) CacheDerivedLocation(ctx context.Context, vehicleID string, location *models.DerivedLocation) error {
	data, err := json.Marshal(location)
	if err != nil {
		return fmt.Errorf("failed to marshal derived location: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDerivedLocation, vehicleID)
	if err := r.redis.Set(ctx, key, data, derivedTTL); err != nil {
		return fmt.Errorf("failed to cache derived location: %w", err)
	}

	return nil
}

// FindNearbyVehicles returns vehicles within the radius, closest
// first. The geo index is populated by tracker telemetry, so only
// vehicles with a reporting tracker appear here.
func (r *LocationRepo) FindNearbyVehicles(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.NearbyVehicle, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyVehicleGeo, lng, lat, radiusMeters, "m")
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle geo index: %w", err)
	}

	vehicles := make([]*models.NearbyVehicle, 0, len(locations))
	for _, loc := range locations {
		vehicles = append(vehicles, &models.NearbyVehicle{
			VehicleID:      loc.Name,
			Latitude:       loc.Latitude,
			Longitude:      loc.Longitude,
			DistanceMeters: loc.Dist,
		})
	}

	return vehicles, nil
}

// GetCachedDerivedLocation returns the cached estimate, or nil when no
// estimate has been derived recently.
func (r *LocationRepo) GetCachedDerivedLocation(ctx context.Context, vehicleID string) (*models.DerivedLocation, error) {
	key := fmt.Sprintf(constants.KeyDerivedLocation, vehicleID)
	data, err := r.redis.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get derived location: %w", err)
	}

	var location models.DerivedLocation
	if err := json.Unmarshal([]byte(data), &location); err != nil {
		return nil, fmt.Errorf("failed to unmarshal derived location: %w", err)
	}

	return &location, nil
}
