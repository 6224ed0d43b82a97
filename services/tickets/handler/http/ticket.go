package http

import (
	"errors"
	"net/http"

	"github.com/buslink/buslink/internal/pkg/logger"
	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/internal/utils"
	"github.com/buslink/buslink/services/tickets"
	"github.com/labstack/echo/v4"
)

// TicketHandler handles HTTP requests for ticket operations
type TicketHandler struct {
	ticketUC tickets.TicketUC
}

// NewTicketHandler creates a new ticket HTTP handler
func NewTicketHandler(ticketUC tickets.TicketUC) *TicketHandler {
	return &TicketHandler{
		ticketUC: ticketUC,
	}
}

// IssueTicket issues a signed ticket for a booking
func (h *TicketHandler) IssueTicket(c echo.Context) error {
	var req models.TicketIssueRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind issue request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ticket, err := h.ticketUC.IssueTicket(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to issue ticket",
			logger.String("user_id", req.UserID),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ticket issued successfully", ticket)
}

// VerifyTicket verifies a scanned payload and signature. The endpoint
// mirrors what offline scanners compute locally; it exists for online
// verification and for auditing scan results.
func (h *TicketHandler) VerifyTicket(c echo.Context) error {
	var req models.TicketVerifyRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind verify request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	result, err := h.ticketUC.VerifyTicket(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to verify ticket", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to verify ticket")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ticket verification completed", result)
}

// GetTicket returns a stored ticket by ID
func (h *TicketHandler) GetTicket(c echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return utils.BadRequestResponse(c, "ticket_id is required")
	}

	ticket, err := h.ticketUC.GetTicket(c.Request().Context(), ticketID)
	if err != nil {
		if errors.Is(err, tickets.ErrTicketNotFound) {
			return utils.NotFoundResponse(c, "ticket not found")
		}
		logger.Error("Failed to get ticket",
			logger.String("ticket_id", ticketID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to get ticket")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ticket retrieved", ticket)
}

// GetPublicKey returns the verification key for scanner provisioning
func (h *TicketHandler) GetPublicKey(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Public key retrieved", map[string]string{
		"public_key": h.ticketUC.PublicKeyHex(),
		"algorithm":  "ECDSA-P256-SHA256",
	})
}
