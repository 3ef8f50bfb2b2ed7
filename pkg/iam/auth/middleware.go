package auth

import (
	"strings"

	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const authContextKey = "auth_context"

// AuthContext is the authenticated caller attached to a request.
// AccountID is the authentication account id, NOT a profile id; services
// must resolve it to a Seeker/Company profile id before touching aggregates.
type AuthContext struct {
	AccountID   kernel.AccountID
	AccountType kernel.AccountType
}

// AuthMiddleware validates bearer tokens and attaches the AuthContext
type AuthMiddleware struct {
	tokenService TokenService
}

// NewAuthMiddleware creates the token-validating middleware
func NewAuthMiddleware(tokenService TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate validates the Authorization header
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrUnauthorized().WithDetail("header", "missing")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrUnauthorized().WithDetail("header", "expected Bearer token")
		}

		claims, err := m.tokenService.ValidateAccessToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(authContextKey, &AuthContext{
			AccountID:   claims.AccountID,
			AccountType: claims.AccountType,
		})

		return c.Next()
	}
}

// RequireType rejects callers whose account type does not match
func (m *AuthMiddleware) RequireType(accountType kernel.AccountType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return ErrUnauthorized()
		}
		if authContext.AccountType != accountType {
			return ErrForbidden().
				WithDetail("required_type", accountType).
				WithDetail("account_type", authContext.AccountType)
		}
		return c.Next()
	}
}

// GetAuthContext extracts the authenticated caller from the request
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authContext, ok := c.Locals(authContextKey).(*AuthContext)
	return authContext, ok
}
