package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenInvalid is the single error class surfaced for every verification
// failure: bad signature, malformed token, or expiry. Callers must not learn
// which one it was; the distinction is only recorded in server-side logs.
var ErrTokenInvalid = errors.New("token invalid")

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-bounded token for the given identity.
	Issue(userID uuid.UUID, email string) (string, error)

	// Verify checks signature integrity first, then expiry, and returns the
	// decoded claims. Any failure is reported as ErrTokenInvalid.
	Verify(tokenString string) (*Claims, error)
}
