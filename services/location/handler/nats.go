package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/buslink/buslink/internal/pkg/constants"
	"github.com/buslink/buslink/internal/pkg/logger"
	"github.com/buslink/buslink/internal/pkg/models"
	natspkg "github.com/buslink/buslink/internal/pkg/nats"
	"github.com/buslink/buslink/services/location"
)

// NATSHandler consumes location events for the location service
type NATSHandler struct {
	locationUC location.LocationUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewNATSHandler creates a new location NATS handler
func NewNATSHandler(locationUC location.LocationUC, client *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		locationUC: locationUC,
		natsClient: client,
		consumers:  make([]*natspkg.Consumer, 0),
	}
}

// InitConsumers subscribes to passenger ping and tracker telemetry
// subjects on the service queue group.
func (h *NATSHandler) InitConsumers() error {
	logger.Info("Initializing NATS consumers for location service")

	pingConsumer, err := natspkg.NewConsumerFromConn(
		constants.SubjectLocationPing,
		constants.QueueGroupLocation,
		h.natsClient.GetConn(),
		h.handlePassengerPing,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to passenger pings: %w", err)
	}
	h.consumers = append(h.consumers, pingConsumer)

	trackerConsumer, err := natspkg.NewConsumerFromConn(
		constants.SubjectLocationTracker,
		constants.QueueGroupLocation,
		h.natsClient.GetConn(),
		h.handleTrackerTelemetry,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to tracker telemetry: %w", err)
	}
	h.consumers = append(h.consumers, trackerConsumer)

	return nil
}

// Stop unsubscribes all consumers
func (h *NATSHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}

func (h *NATSHandler) handlePassengerPing(msg []byte) error {
	var ping models.PassengerPing
	if err := json.Unmarshal(msg, &ping); err != nil {
		logger.Error("Failed to unmarshal passenger ping", logger.Err(err))
		return err
	}

	if err := h.locationUC.IngestPing(context.Background(), &ping); err != nil {
		logger.Error("Failed to ingest passenger ping",
			logger.String("vehicle_id", ping.VehicleID),
			logger.Err(err))
		return err
	}

	return nil
}

func (h *NATSHandler) handleTrackerTelemetry(msg []byte) error {
	var telemetry models.TrackerTelemetry
	if err := json.Unmarshal(msg, &telemetry); err != nil {
		logger.Error("Failed to unmarshal tracker telemetry", logger.Err(err))
		return err
	}

	if err := h.locationUC.UpdateTrackerTelemetry(context.Background(), &telemetry); err != nil {
		logger.Error("Failed to store tracker telemetry",
			logger.String("vehicle_id", telemetry.VehicleID),
			logger.Err(err))
		return err
	}

	return nil
}
