package location

import (
	"context"

	"github.com/buslink/buslink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/buslink/buslink/services/location LocationRepo

// LocationRepo defines the location repository interface
type LocationRepo interface {
	// primary tracker telemetry
	StoreTrackerTelemetry(ctx context.Context, telemetry *models.TrackerTelemetry) error
	GetTrackerTelemetry(ctx context.Context, vehicleID string) (*models.TrackerTelemetry, error)

	// derived location cache
	CacheDerivedLocation(ctx context.Context, vehicleID string, loc *models.DerivedLocation) error
	GetCachedDerivedLocation(ctx context.Context, vehicleID string) (*models.DerivedLocation, error)

	// radius query over the vehicle geo index
	FindNearbyVehicles(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.NearbyVehicle, error)
}
