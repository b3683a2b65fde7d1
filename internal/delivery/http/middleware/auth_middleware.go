// Package middleware provides the HTTP cross-cutting concerns: request
// identity, authentication, and error rendering.
package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/delivery/http/response"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/service"
)

const (
	// HeaderAuthToken is the request header carrying the access token.
	HeaderAuthToken = "x-auth-token"

	// ContextKeyUserID is the echo.Context key the authenticated user's ID
	// is stored under.
	ContextKeyUserID = "userID"

	// ContextKeyEmail is the echo.Context key the authenticated user's
	// email is stored under.
	ContextKeyEmail = "email"
)

// AuthMiddleware guards routes that require an authenticated caller.
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(tokenService service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		logger:       logger,
	}
}

// Handle verifies the x-auth-token header and stores the caller's identity
// on the request context. A missing token and a bad token both answer 401;
// only the message differs, never the claims that failed.
func (m *AuthMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(HeaderAuthToken)
		if token == "" {
			return response.Error(c,
				domainerrors.ErrUnauthenticated.WithDetails("no token provided"))
		}

		claims, err := m.tokenService.Verify(token)
		if err != nil {
			m.logger.Warn("token verification failed",
				slog.String("request_id", deliverycontext.GetRequestID(c)),
				slog.Any("error", err))

			return response.Error(c,
				domainerrors.ErrUnauthenticated.WithDetails("token invalid"))
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)

		return next(c)
	}
}
