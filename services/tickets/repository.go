package tickets

import (
	"context"

	"github.com/buslink/buslink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/buslink/buslink/services/tickets TicketRepo

// TicketRepo defines the ticket repository operations
type TicketRepo interface {
	CreateTicket(ctx context.Context, ticket *models.Ticket) error
	GetTicketByID(ctx context.Context, ticketID string) (*models.Ticket, error)
}
