package usecase

import (
	"context"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the data for a profile update. Nil fields are
// left untouched. A password change requires the current password alongside
// the new one.
type UpdateProfileInput struct {
	Name            *string
	CurrentPassword *string
	NewPassword     *string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)

	// DeleteAccount removes the user together with every recipe, meal plan
	// entry and shopping list item they own, atomically.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
