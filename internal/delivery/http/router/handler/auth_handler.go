// Package handler contains the HTTP handlers bridging Echo and the usecases.
// Handlers only bind, validate, delegate, and render; business rules live a
// layer below.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"plateful/internal/delivery/http/response"
	"plateful/internal/usecase"
)

// AuthHandler serves account registration and login.
type AuthHandler struct {
	userUsecase usecase.UserUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(userUsecase usecase.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.userUsecase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Created(c, authResponse{Token: out.Token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.userUsecase.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, authResponse{Token: out.Token})
}
