package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/services/tickets"
)

// TicketRepo persists issued tickets in PostgreSQL
type TicketRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTicketRepo creates a new ticket repository
func NewTicketRepo(cfg *models.Config, db *sqlx.DB) *TicketRepo {
	return &TicketRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTicket inserts a signed ticket
func (r *TicketRepo) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	query := `
		INSERT INTO tickets (id, user_id, bus_id, pickup_id, drop_id,
			travel_date, fare, seat_number, payment_status, signature, created_at
		) VALUES (:id, :user_id, :bus_id, :pickup_id, :drop_id,
			:travel_date, :fare, :seat_number, :payment_status, :signature, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, ticket)
	if err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	return nil
}

// GetTicketByID retrieves a ticket by its ID
func (r *TicketRepo) GetTicketByID(ctx context.Context, ticketID string) (*models.Ticket, error) {
	query := `
		SELECT id, user_id, bus_id, pickup_id, drop_id,
			travel_date, fare, seat_number, payment_status, signature, created_at
		FROM tickets
		WHERE id = $1
	`

	var ticket models.Ticket
	err := r.db.GetContext(ctx, &ticket, query, ticketID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, tickets.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return &ticket, nil
}
