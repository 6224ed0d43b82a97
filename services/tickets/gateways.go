package tickets

import (
	"context"

	"github.com/buslink/buslink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/buslink/buslink/services/tickets TicketGW

// TicketGW defines the ticket gateway operations
type TicketGW interface {
	PublishTicketIssued(ctx context.Context, event *models.TicketIssuedEvent) error
	PublishTicketVerified(ctx context.Context, event *models.TicketVerifiedEvent) error
}
