package usecase

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/buslink/buslink/internal/pkg/logger"
	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/internal/pkg/signature"
	"github.com/buslink/buslink/services/tickets"
)

// TicketUC implements the tickets.TicketUC interface
type TicketUC struct {
	cfg      *models.Config
	signer   *signature.Signer
	verifier *signature.Verifier
	repo     tickets.TicketRepo
	gw       tickets.TicketGW
}

// NewTicketUC creates a new ticket use case. The signing key comes from
// configuration; when absent a fresh key pair is generated, which only
// suits local development since previously issued tickets will no
// longer verify after a restart.
func NewTicketUC(repo tickets.TicketRepo, gw tickets.TicketGW, cfg *models.Config) (*TicketUC, error) {
	key, err := loadSigningKey(cfg.Signer.PrivateKeyHex)
	if err != nil {
		return nil, err
	}

	signer := signature.NewSigner(key)
	return &TicketUC{
		cfg:      cfg,
		signer:   signer,
		verifier: signer.Verifier(),
		repo:     repo,
		gw:       gw,
	}, nil
}

func loadSigningKey(keyHex string) (*ecdsa.PrivateKey, error) {
	if keyHex == "" {
		logger.Warn("No ticket signing key configured, generating an ephemeral key pair")
		return signature.GenerateKeyPair()
	}

	key, err := signature.ParsePrivateKeyHex(keyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket signing key: %w", err)
	}
	return key, nil
}

// IssueTicket assigns a ticket ID, signs the payload and persists the
// full ticket. The signature covers only the six payload fields, so
// later fare or seat corrections leave it intact.
func (uc *TicketUC) IssueTicket(ctx context.Context, req *models.TicketIssueRequest) (*models.Ticket, error) {
	if req == nil {
		return nil, fmt.Errorf("issue request cannot be nil")
	}

	payload := models.TicketPayload{
		TicketID: uuid.New().String(),
		UserID:   req.UserID,
		BusID:    req.BusID,
		PickupID: req.PickupID,
		DropID:   req.DropID,
		Date:     req.Date,
	}

	sig, err := uc.signer.Sign(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to sign ticket: %w", err)
	}

	ticket := &models.Ticket{
		TicketPayload: payload,
		Fare:          req.Fare,
		SeatNumber:    req.SeatNumber,
		PaymentStatus: models.PaymentStatusPending,
		Signature:     hex.EncodeToString(sig),
		CreatedAt:     models.Now(),
	}

	if err := uc.repo.CreateTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to store ticket: %w", err)
	}

	event := &models.TicketIssuedEvent{
		TicketID: ticket.TicketID,
		UserID:   ticket.UserID,
		BusID:    ticket.BusID,
		IssuedAt: ticket.CreatedAt,
	}
	if err := uc.gw.PublishTicketIssued(ctx, event); err != nil {
		logger.Warn("Failed to publish ticket issued event",
			logger.String("ticket_id", ticket.TicketID),
			logger.Err(err))
	}

	logger.Info("Ticket issued",
		logger.String("ticket_id", ticket.TicketID),
		logger.String("bus_id", ticket.BusID))

	return ticket, nil
}

// VerifyTicket checks a scanned payload and signature against the
// service's public key. A malformed signature is a failed verification,
// not an error; scanners feed this arbitrary bytes.
func (uc *TicketUC) VerifyTicket(ctx context.Context, req *models.TicketVerifyRequest) (*models.TicketVerifyResult, error) {
	if req == nil {
		return nil, fmt.Errorf("verify request cannot be nil")
	}

	valid := false
	if sig, err := hex.DecodeString(req.Signature); err == nil {
		valid = uc.verifier.Verify(req.Payload, sig)
	}

	result := &models.TicketVerifyResult{
		TicketID:   req.Payload.TicketID,
		Valid:      valid,
		VerifiedAt: models.Now(),
	}

	event := &models.TicketVerifiedEvent{
		TicketID:   result.TicketID,
		Valid:      result.Valid,
		VerifiedAt: result.VerifiedAt,
	}
	if err := uc.gw.PublishTicketVerified(ctx, event); err != nil {
		logger.Warn("Failed to publish ticket verified event",
			logger.String("ticket_id", result.TicketID),
			logger.Err(err))
	}

	return result, nil
}

// GetTicket returns a stored ticket by ID
func (uc *TicketUC) GetTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	if ticketID == "" {
		return nil, fmt.Errorf("ticket id is required")
	}

	return uc.repo.GetTicketByID(ctx, ticketID)
}

// PublicKeyHex returns the verification key in the transportable form
// distributed to offline scanner builds.
func (uc *TicketUC) PublicKeyHex() string {
	return uc.signer.PublicKeyHex()
}
