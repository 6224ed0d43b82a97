package tickets

import (
	"context"
	"errors"

	"github.com/buslink/buslink/internal/pkg/models"
)

// ErrTicketNotFound is returned when no ticket exists for the given ID
var ErrTicketNotFound = errors.New("ticket not found")

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/buslink/buslink/services/tickets TicketUC

// TicketUC defines the ticket service use case operations
type TicketUC interface {
	IssueTicket(ctx context.Context, req *models.TicketIssueRequest) (*models.Ticket, error)
	VerifyTicket(ctx context.Context, req *models.TicketVerifyRequest) (*models.TicketVerifyResult, error)
	GetTicket(ctx context.Context, ticketID string) (*models.Ticket, error)
	PublicKeyHex() string
}
