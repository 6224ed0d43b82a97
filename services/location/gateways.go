package location

import (
	"context"

	"github.com/buslink/buslink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/buslink/buslink/services/location LocationGW

// LocationGW defines the location gateways interface
type LocationGW interface {
	// NATS Gateway
	PublishDerivedLocation(ctx context.Context, event *models.DerivedLocationEvent) error
}
