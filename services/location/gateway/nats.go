package gateway

import (
	"context"
	"fmt"

	"github.com/buslink/buslink/internal/pkg/constants"
	"github.com/buslink/buslink/internal/pkg/logger"
	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/internal/pkg/nats"
)

// LocationGW publishes location events to NATS
type LocationGW struct {
	producer *nats.Producer
}

// NewLocationGW creates a new location gateway
func NewLocationGW(producer *nats.Producer) *LocationGW {
	return &LocationGW{producer: producer}
}

// PublishDerivedLocation announces a freshly derived estimate
func (g *LocationGW) PublishDerivedLocation(ctx context.Context, event *models.DerivedLocationEvent) error {
	logger.Debug("Publishing derived location",
		logger.String("vehicle_id", event.VehicleID),
		logger.Float64("confidence", event.Location.Confidence))

	if err := g.producer.Publish(constants.SubjectLocationDerived, event); err != nil {
		return fmt.Errorf("failed to publish derived location: %w", err)
	}

	return nil
}
