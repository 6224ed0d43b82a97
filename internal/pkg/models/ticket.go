package models

import "time"

// Payment status values for a ticket. Payment state is outside the
// signed scope and may change after issuance.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusWaived  = "waived"
)

// TicketPayload is the fixed set of fields covered by the ticket
// signature: who may ride which bus on which route leg and date.
// Mutable fields (fare, seat, payment status) are deliberately
// excluded so downstream corrections never invalidate a signature.
type TicketPayload struct {
	TicketID string `json:"ticket_id" db:"id"`
	UserID   string `json:"user_id" db:"user_id"`
	BusID    string `json:"bus_id" db:"bus_id"`
	PickupID string `json:"pickup_id" db:"pickup_id"`
	DropID   string `json:"drop_id" db:"drop_id"`
	Date     string `json:"date" db:"travel_date"`
}

// Ticket represents a full issued ticket including unsigned fields
type Ticket struct {
	TicketPayload
	Fare          float64   `json:"fare" db:"fare"`
	SeatNumber    string    `json:"seat_number" db:"seat_number"`
	PaymentStatus string    `json:"payment_status" db:"payment_status"`
	Signature     string    `json:"signature" db:"signature"` // hex-encoded DER ECDSA signature
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// TicketIssueRequest represents a booking request to issue a signed ticket
type TicketIssueRequest struct {
	UserID     string  `json:"user_id"`
	BusID      string  `json:"bus_id"`
	PickupID   string  `json:"pickup_id"`
	DropID     string  `json:"drop_id"`
	Date       string  `json:"date"`
	Fare       float64 `json:"fare"`
	SeatNumber string  `json:"seat_number"`
}

// TicketVerifyRequest represents a scan-time verification request.
// Offline scanners submit the payload and signature they read from the
// ticket QR; nothing here requires the issuing backend.
type TicketVerifyRequest struct {
	Payload   TicketPayload `json:"payload"`
	Signature string        `json:"signature"`
}

// TicketVerifyResult represents the outcome of a verification
type TicketVerifyResult struct {
	TicketID   string    `json:"ticket_id"`
	Valid      bool      `json:"valid"`
	VerifiedAt time.Time `json:"verified_at"`
}

// TicketIssuedEvent is published when a ticket is signed and stored
type TicketIssuedEvent struct {
	TicketID string    `json:"ticket_id"`
	UserID   string    `json:"user_id"`
	BusID    string    `json:"bus_id"`
	IssuedAt time.Time `json:"issued_at"`
}

// TicketVerifiedEvent is published after each scan verification
type TicketVerifiedEvent struct {
	TicketID   string    `json:"ticket_id"`
	Valid      bool      `json:"valid"`
	VerifiedAt time.Time `json:"verified_at"`
}
