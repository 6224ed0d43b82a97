package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/services/tickets"
)

func setupTestRepo(t *testing.T) (*TicketRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewTicketRepo(&models.Config{}, sqlxDB)
	return repo, mock
}

func sampleTicket() *models.Ticket {
	return &models.Ticket{
		TicketPayload: models.TicketPayload{
			TicketID: "tkt-8f2a1c",
			UserID:   "usr-77",
			BusID:    "bus-12",
			PickupID: "stop-4",
			DropID:   "stop-9",
			Date:     "2025-11-20",
		},
		Fare:          45.0,
		SeatNumber:    "12A",
		PaymentStatus: models.PaymentStatusPending,
		Signature:     "3045022100ab",
		CreatedAt:     time.Date(2025, 11, 19, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateTicket_Success(t *testing.T) {
	// Arrange
	repo, mock := setupTestRepo(t)
	ticket := sampleTicket()

	mock.ExpectExec("INSERT INTO tickets").
		WithArgs(
			ticket.TicketID,
			ticket.UserID,
			ticket.BusID,
			ticket.PickupID,
			ticket.DropID,
			ticket.Date,
			ticket.Fare,
			ticket.SeatNumber,
			ticket.PaymentStatus,
			ticket.Signature,
			ticket.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	// Act
	err := repo.CreateTicket(context.Background(), ticket)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTicket_DBError(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectExec("INSERT INTO tickets").
		WillReturnError(assert.AnError)

	err := repo.CreateTicket(context.Background(), sampleTicket())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTicketByID_Success(t *testing.T) {
	repo, mock := setupTestRepo(t)
	want := sampleTicket()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "bus_id", "pickup_id", "drop_id",
		"travel_date", "fare", "seat_number", "payment_status", "signature", "created_at",
	}).AddRow(
		want.TicketID, want.UserID, want.BusID, want.PickupID, want.DropID,
		want.Date, want.Fare, want.SeatNumber, want.PaymentStatus, want.Signature, want.CreatedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM tickets").
		WithArgs("tkt-8f2a1c").
		WillReturnRows(rows)

	got, err := repo.GetTicketByID(context.Background(), "tkt-8f2a1c")
	require.NoError(t, err)
	assert.Equal(t, want.TicketID, got.TicketID)
	assert.Equal(t, want.Signature, got.Signature)
	assert.Equal(t, want.Fare, got.Fare)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTicketByID_NotFound(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM tickets").
		WithArgs("tkt-missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.GetTicketByID(context.Background(), "tkt-missing")
	assert.ErrorIs(t, err, tickets.ErrTicketNotFound)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
