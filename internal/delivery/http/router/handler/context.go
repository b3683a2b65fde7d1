package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"plateful/internal/delivery/http/middleware"
	domainerrors "plateful/internal/domain/errors"
)

// currentUserID extracts the authenticated user's ID set by the auth
// middleware. A missing or mistyped value means the route was wired without
// the middleware, so it is treated as unauthenticated rather than a panic.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return id, nil
}
