package gateway

import (
	"context"
	"fmt"

	"github.com/buslink/buslink/internal/pkg/constants"
	"github.com/buslink/buslink/internal/pkg/logger"
	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/internal/pkg/nats"
)

// TicketGW publishes ticket events to NATS
type TicketGW struct {
	producer *nats.Producer
}

// NewTicketGW creates a new ticket gateway
func NewTicketGW(producer *nats.Producer) *TicketGW {
	return &TicketGW{producer: producer}
}

// PublishTicketIssued announces a newly issued ticket
func (g *TicketGW) PublishTicketIssued(ctx context.Context, event *models.TicketIssuedEvent) error {
	logger.Debug("Publishing ticket issued event",
		logger.String("ticket_id", event.TicketID),
		logger.String("bus_id", event.BusID))

	if err := g.producer.Publish(constants.SubjectTicketIssued, event); err != nil {
		return fmt.Errorf("failed to publish ticket issued event: %w", err)
	}

	return nil
}

// PublishTicketVerified announces the outcome of a scan verification
func (g *TicketGW) PublishTicketVerified(ctx context.Context, event *models.TicketVerifiedEvent) error {
	logger.Debug("Publishing ticket verified event",
		logger.String("ticket_id", event.TicketID),
		logger.Bool("valid", event.Valid))

	if err := g.producer.Publish(constants.SubjectTicketVerified, event); err != nil {
		return fmt.Errorf("failed to publish ticket verified event: %w", err)
	}

	return nil
}
