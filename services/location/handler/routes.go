package handler

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/buslink/buslink/internal/pkg/models"
	natspkg "github.com/buslink/buslink/internal/pkg/nats"
	"github.com/buslink/buslink/services/location"
	httpHandler "github.com/buslink/buslink/services/location/handler/http"
)

// Handler coordinates the HTTP and NATS handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
	locationNATS *NATSHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	locationUC location.LocationUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
		locationNATS: NewNATSHandler(locationUC, natsClient),
		cfg:          cfg,
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
	// Passenger-facing routes require a valid token
	protected := e.Group("", h.GetJWTMiddleware())
	protected.POST("/locations/pings", h.locationHTTP.IngestPing)
	protected.GET("/vehicles/:id/location", h.locationHTTP.GetVehicleLocation)
	protected.GET("/vehicles/:id/derived-location", h.locationHTTP.GetDerivedLocation)

	// Internal routes for tracker gateways and ops dashboards
	internal := e.Group("/internal")
	internal.POST("/telemetry", h.locationHTTP.UpdateTelemetry)
	internal.GET("/vehicles/nearby", h.locationHTTP.FindNearbyVehicles)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.locationNATS.InitConsumers()
}

// Stop stops the NATS consumers
func (h *Handler) Stop() {
	h.locationNATS.Stop()
}
