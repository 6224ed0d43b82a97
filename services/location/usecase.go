package location

import (
	"context"
	"errors"

	"github.com/buslink/buslink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/buslink/buslink/services/location LocationUC

// ErrNoEstimate is returned by DeriveLocation when fewer than the
// minimum number of valid samples are available. Distinct from an
// estimate with low confidence; callers must not substitute a zero
// location.
var ErrNoEstimate = errors.New("no location estimate available")

// ErrLocationUnavailable is returned by GetVehicleLocation when
// neither fresh tracker telemetry nor a derived estimate exists.
var ErrLocationUnavailable = errors.New("vehicle location unavailable")

// LocationUC represents the location usecase interface
type LocationUC interface {
	// handle passenger pings
	IngestPing(ctx context.Context, ping *models.PassengerPing) error

	// handle derived location
	DeriveLocation(ctx context.Context, vehicleID string) (*models.DerivedLocation, error)

	// handle primary tracker telemetry
	UpdateTrackerTelemetry(ctx context.Context, telemetry *models.TrackerTelemetry) error

	// vehicle-status surface: tracker when fresh, derived otherwise
	GetVehicleLocation(ctx context.Context, vehicleID string) (*models.VehicleLocation, error)

	// radius query for ops dashboards
	FindNearbyVehicles(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.NearbyVehicle, error)
}
