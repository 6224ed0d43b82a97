package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/services/location"
	"github.com/buslink/buslink/services/location/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestPing_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().IngestPing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, ping *models.PassengerPing) error {
			assert.Equal(t, "bus-12", ping.VehicleID)
			assert.Equal(t, "usr-77", ping.UserID)
			assert.Equal(t, 29.6857, ping.Latitude)
			return nil
		})

	e := echo.New()
	body := `{"vehicle_id":"bus-12","user_id":"usr-77","lat":29.6857,"lng":76.9905}`
	req := httptest.NewRequest(http.MethodPost, "/locations/pings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := handler.IngestPing(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestIngestPing_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewLocationHandler(mocks.NewMockLocationUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/locations/pings", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.IngestPing(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDerivedLocation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().DeriveLocation(gomock.Any(), "bus-12").Return(&models.DerivedLocation{
		Latitude:     29.6857,
		Longitude:    76.9907,
		Confidence:   0.3,
		Source:       models.SourcePassengerAggregate,
		SamplesCount: 3,
		DerivedAt:    time.Now().UTC(),
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/vehicles/:id/derived-location")
	c.SetParamNames("id")
	c.SetParamValues("bus-12")

	err := handler.GetDerivedLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "passenger_aggregate")
	assert.Contains(t, rec.Body.String(), "samples_count")
}

func TestGetDerivedLocation_NoEstimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().DeriveLocation(gomock.Any(), "bus-12").Return(nil, location.ErrNoEstimate)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("bus-12")

	err := handler.GetDerivedLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTelemetry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().UpdateTrackerTelemetry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, telemetry *models.TrackerTelemetry) error {
			assert.Equal(t, "bus-12", telemetry.VehicleID)
			return nil
		})

	e := echo.New()
	body := `{"vehicle_id":"bus-12","lat":29.6857,"lng":76.9905}`
	req := httptest.NewRequest(http.MethodPost, "/internal/telemetry", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.UpdateTelemetry(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetVehicleLocation_TrackerSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().GetVehicleLocation(gomock.Any(), "bus-12").Return(&models.VehicleLocation{
		VehicleID: "bus-12",
		Latitude:  29.6857,
		Longitude: 76.9905,
		Source:    models.SourceTracker,
		UpdatedAt: time.Now().UTC(),
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("bus-12")

	err := handler.GetVehicleLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source":"tracker"`)
}

func TestFindNearbyVehicles_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().FindNearbyVehicles(gomock.Any(), 29.6857, 76.9905, 2000.0).Return([]*models.NearbyVehicle{
		{VehicleID: "bus-12", Latitude: 29.6857, Longitude: 76.9905, DistanceMeters: 12.5},
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/internal/vehicles/nearby?lat=29.6857&lng=76.9905&radius=2000", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.FindNearbyVehicles(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bus-12")
}

func TestFindNearbyVehicles_MissingParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewLocationHandler(mocks.NewMockLocationUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/internal/vehicles/nearby?lat=29.6857", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.FindNearbyVehicles(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetVehicleLocation_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().GetVehicleLocation(gomock.Any(), "bus-99").Return(nil, location.ErrLocationUnavailable)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("bus-99")

	err := handler.GetVehicleLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
