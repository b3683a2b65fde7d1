package impl

import (
	"context"
	"log/slog"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the authenticated user's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateProfile applies the requested changes to the user's profile. Name and
// password changes are independent; a password change must prove knowledge of
// the current password before the new one is hashed and stored.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Debug("Updating profile", "userID", userID)

	var updatedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("profile not found")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if input.Name != nil {
			user.Name = *input.Name
		}

		if input.NewPassword != nil {
			if input.CurrentPassword == nil || !srv.hasher.Check(*input.CurrentPassword, user.PasswordHash) {
				return domainerrors.ErrInvalidCurrentPassword.WrapMessage("profile update failed")
			}

			newHash, err := srv.hasher.Hash(*input.NewPassword)
			if err != nil {
				return errors.Wrap(err, "failed to hash new password")
			}
			user.PasswordHash = newHash
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.WithStack(err)
		}
		updatedUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Profile update failed", "userID", userID, "error", err.Error())

		return nil, err
	}
	srv.log(ctx).Debug("Profile updated", "userID", userID)

	return updatedUser, nil
}

// DeleteAccount removes the user and everything they own in one transaction.
// The order runs child tables first so the deletes never trip a foreign key
// even without database-level cascades.
func (srv *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ShoppingListRepo().DeleteAllByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete shopping list items")
		}
		if err := repoFactory.MealPlanRepo().DeleteAllByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete meal plan entries")
		}
		if err := repoFactory.RecipeRepo().DeleteAllByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete recipes")
		}

		if err := repoFactory.UserRepo().Delete(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("account deletion failed")
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Account deletion failed", "userID", userID, "error", err.Error())

		return err
	}
	srv.log(ctx).Info("Account deleted", "userID", userID)

	return nil
}
