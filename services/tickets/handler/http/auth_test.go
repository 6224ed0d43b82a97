package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/buslink/buslink/internal/pkg/jwt"
	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = "buslink-test"
	return cfg
}

func TestGenerateToken_Success(t *testing.T) {
	// Arrange
	cfg := authTestConfig()
	handler := NewAuthHandler(cfg)

	e := echo.New()
	body := `{"user_id":"usr-77","role":"passenger"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := handler.GenerateToken(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	// The issued token must validate against the same secret
	claims, err := jwt.ValidateToken(resp.Data.Token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "usr-77", claims["sub"])
	assert.Equal(t, "passenger", claims["role"])
}

func TestGenerateToken_Validation(t *testing.T) {
	handler := NewAuthHandler(authTestConfig())

	tests := []struct {
		name string
		body string
	}{
		{"missing user id", `{"role":"passenger"}`},
		{"unknown role", `{"user_id":"usr-77","role":"admin"}`},
		{"malformed body", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.GenerateToken(c)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
