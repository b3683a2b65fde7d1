package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"plateful/internal/delivery/http/response"
	"plateful/internal/domain/entity"
	"plateful/internal/usecase"
)

// ProfileHandler serves the authenticated user's own account record.
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	logger         *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profileUsecase usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		logger:         logger,
	}
}

type updateProfileRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=100"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword" validate:"omitempty,min=6"`
}

type profileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toProfileResponse(user *entity.User) profileResponse {
	return profileResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Get handles GET /api/auth/profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileUsecase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.OK(c, toProfileResponse(user))
}

// Update handles PUT /api/auth/profile.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.profileUsecase.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:            req.Name,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return err
	}

	return response.OK(c, toProfileResponse(user))
}

// Delete handles DELETE /api/auth/profile. The account and everything it
// owns are removed in one transaction.
func (h *ProfileHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.profileUsecase.DeleteAccount(c.Request().Context(), userID); err != nil {
		return err
	}

	return response.OK(c, echo.Map{"deleted": true})
}
