package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"
)

// ContextKeyUserID is where Authenticate stores the authenticated user's id.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for access token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the user id on
// the request context. Refresh tokens are not accepted here.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		verified := m.tokenSvc.Verify(tokenString)
		if verified.IsFailure() {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		payload := verified.Value()
		if payload.Type != entity.TokenTypeAccess {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(ContextKeyUserID, payload.UserID)

		return next(c)
	}
}
