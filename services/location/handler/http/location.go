package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/buslink/buslink/internal/pkg/logger"
	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/internal/utils"
	"github.com/buslink/buslink/services/location"
	"github.com/labstack/echo/v4"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// IngestPing accepts a consented passenger location report
func (h *LocationHandler) IngestPing(c echo.Context) error {
	var ping models.PassengerPing
	if err := c.Bind(&ping); err != nil {
		logger.Error("Failed to bind ping request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.locationUC.IngestPing(c.Request().Context(), &ping); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Ping accepted", map[string]string{"status": "accepted"})
}

// GetDerivedLocation returns the current passenger-derived estimate
func (h *LocationHandler) GetDerivedLocation(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return utils.BadRequestResponse(c, "vehicle_id is required")
	}

	loc, err := h.locationUC.DeriveLocation(c.Request().Context(), vehicleID)
	if err != nil {
		if errors.Is(err, location.ErrNoEstimate) {
			return utils.NotFoundResponse(c, "no location estimate available")
		}
		logger.Error("Failed to derive location",
			logger.String("vehicle_id", vehicleID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to derive location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Derived location retrieved", loc)
}

// UpdateTelemetry stores a position report from a vehicle tracker
func (h *LocationHandler) UpdateTelemetry(c echo.Context) error {
	var telemetry models.TrackerTelemetry
	if err := c.Bind(&telemetry); err != nil {
		logger.Error("Failed to bind telemetry request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.locationUC.UpdateTrackerTelemetry(c.Request().Context(), &telemetry); err != nil {
		logger.Error("Failed to store tracker telemetry",
			logger.String("vehicle_id", telemetry.VehicleID),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Telemetry stored", map[string]string{"status": "success"})
}

// FindNearbyVehicles finds vehicles near a point
func (h *LocationHandler) FindNearbyVehicles(c echo.Context) error {
	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")
	radiusStr := c.QueryParam("radius")

	if latStr == "" || lngStr == "" || radiusStr == "" {
		return utils.BadRequestResponse(c, "lat, lng, and radius are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid latitude")
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid longitude")
	}

	radius, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid radius")
	}

	vehicles, err := h.locationUC.FindNearbyVehicles(c.Request().Context(), lat, lng, radius)
	if err != nil {
		logger.Error("Failed to find nearby vehicles", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to find vehicles")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby vehicles found", vehicles)
}

// GetVehicleLocation returns the best available position for a vehicle
func (h *LocationHandler) GetVehicleLocation(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return utils.BadRequestResponse(c, "vehicle_id is required")
	}

	loc, err := h.locationUC.GetVehicleLocation(c.Request().Context(), vehicleID)
	if err != nil {
		if errors.Is(err, location.ErrLocationUnavailable) {
			return utils.NotFoundResponse(c, "vehicle location unavailable")
		}
		logger.Error("Failed to get vehicle location",
			logger.String("vehicle_id", vehicleID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to get vehicle location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle location retrieved", loc)
}
