// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"plateful/config"
	"plateful/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing secret is loaded once at construction and never logged.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	logger *slog.Logger
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    cfg.Auth.AccessTTL(),
		logger: logger,
	}, nil
}

// Issue creates an HS256-signed token carrying the subject's ID and email,
// an issued-at timestamp and an absolute expiry.
func (s *jwtService) Issue(userID uuid.UUID, email string) (string, error) {
	now := time.Now().UTC()
	claims := &service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses and validates a presented token. The jwt library checks the
// signature before the claims, so a tampered token is rejected without its
// payload ever being trusted. Every failure collapses into ErrTokenInvalid;
// the root cause goes to the debug log only.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		s.logVerifyFailure(err)

		return nil, service.ErrTokenInvalid
	}
	if token == nil || !token.Valid {
		s.logVerifyFailure(jwt.ErrTokenUnverifiable)

		return nil, service.ErrTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil {
		s.logVerifyFailure(err)

		return nil, service.ErrTokenInvalid
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		s.logVerifyFailure(err)

		return nil, service.ErrTokenInvalid
	}
	claims.UserID = userID

	return claims, nil
}

func (s *jwtService) logVerifyFailure(err error) {
	if s.logger == nil {
		return
	}

	// The caller only ever sees the generic class; the distinction between
	// expiry, signature and malformed tokens lives here.
	s.logger.Debug("token verification failed", slog.Any("error", err))
}
