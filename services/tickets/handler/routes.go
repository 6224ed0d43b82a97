package handler

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/services/tickets"
	httpHandler "github.com/buslink/buslink/services/tickets/handler/http"
)

// Handler coordinates the HTTP handlers for the tickets service
type Handler struct {
	ticketHTTP *httpHandler.TicketHandler
	authHTTP   *httpHandler.AuthHandler
	cfg        *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(ticketUC tickets.TicketUC, cfg *models.Config) *Handler {
	return &Handler{
		ticketHTTP: httpHandler.NewTicketHandler(ticketUC),
		authHTTP:   httpHandler.NewAuthHandler(cfg),
		cfg:        cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
	})
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Token issuance for verified subjects
	e.POST("/auth/token", h.authHTTP.GenerateToken)

	// Verification and key distribution stay public; scanners and
	// gate devices do not carry passenger tokens.
	e.POST("/tickets/verify", h.ticketHTTP.VerifyTicket)
	e.GET("/tickets/public-key", h.ticketHTTP.GetPublicKey)

	// Booking routes require a valid passenger token
	protected := e.Group("/tickets", h.GetJWTMiddleware())
	protected.POST("", h.ticketHTTP.IssueTicket)
	protected.GET("/:id", h.ticketHTTP.GetTicket)
}
