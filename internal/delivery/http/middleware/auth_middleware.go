package middleware

import (
	"strings"

	"shipway/internal/delivery/http/response"
	"shipway/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ShopContextKey is the echo context key carrying the authenticated shop domain.
const ShopContextKey = "shop"

// AuthMiddleware authenticates admin requests with a host-platform session token.
type AuthMiddleware struct {
	verifier service.SessionVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.SessionVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the Bearer session token and stores the shop domain
// on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		shop, err := m.verifier.VerifyShop(token)
		if err != nil {
			return response.Unauthorized(c, "SESSION_TOKEN_INVALID", "Invalid or expired session token")
		}

		c.Set(ShopContextKey, shop)

		return next(c)
	}
}

// ShopFromContext returns the shop domain stored by Authenticate.
func ShopFromContext(c echo.Context) string {
	if shop, ok := c.Get(ShopContextKey).(string); ok {
		return shop
	}

	return ""
}
