package http

import (
	"net/http"

	"github.com/buslink/buslink/internal/pkg/jwt"
	"github.com/buslink/buslink/internal/pkg/logger"
	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/internal/utils"
	"github.com/labstack/echo/v4"
)

// Roles accepted by the token endpoint
const (
	RolePassenger = "passenger"
	RoleDriver    = "driver"
)

// AuthHandler issues access tokens for the booking app and scanner
// devices. Identity proofing (OTP, device enrollment) happens upstream;
// this endpoint only mints tokens for already-verified subjects.
type AuthHandler struct {
	cfg *models.Config
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(cfg *models.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// TokenRequest represents a token issuance request
type TokenRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// TokenResponse carries the issued token and its expiry
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// GenerateToken issues a JWT for a verified subject
func (h *AuthHandler) GenerateToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind token request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if req.UserID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}
	if req.Role != RolePassenger && req.Role != RoleDriver {
		return utils.BadRequestResponse(c, "role must be passenger or driver")
	}

	token, expiresAt, err := jwt.GenerateToken(req.UserID, req.Role, h.cfg)
	if err != nil {
		logger.Error("Failed to generate token",
			logger.String("user_id", req.UserID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to generate token")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token generated", TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
