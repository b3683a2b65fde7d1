package impl

import (
	"context"
	"log/slog"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mealPlanService implements the MealPlanUsecase interface.
type mealPlanService struct {
	txManager    repository.TransactionManager
	mealPlanRepo repository.MealPlanRepository
	logger       *slog.Logger
}

// MealPlanServiceParams holds dependencies for MealPlanService, injected by Fx.
type MealPlanServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MealPlanRepo repository.MealPlanRepository
	Logger       *slog.Logger
}

// NewMealPlanService is the constructor for mealPlanService.
func NewMealPlanService(params MealPlanServiceParams) usecase.MealPlanUsecase {
	return &mealPlanService{
		txManager:    params.TxManager,
		mealPlanRepo: params.MealPlanRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mealPlanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddEntry schedules one of the caller's recipes. The recipe lookup and the
// insert run in one transaction so the recipe cannot vanish between the
// ownership check and the write.
func (srv *mealPlanService) AddEntry(ctx context.Context, userID uuid.UUID, input usecase.AddMealPlanEntryInput) (*entity.MealPlanEntry, error) {
	if !input.DayOfWeek.IsValid() || !input.MealType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid day of week or meal type")
	}

	entry := &entity.MealPlanEntry{
		UserID:    userID,
		RecipeID:  input.RecipeID,
		DayOfWeek: input.DayOfWeek,
		MealType:  input.MealType,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Scheduling someone else's recipe must look exactly like scheduling
		// a recipe that does not exist.
		if _, err := repoFactory.RecipeRepo().FindByIDAndUser(ctx, input.RecipeID, userID); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("recipe not found")
			}

			return errors.Wrap(err, "failed to verify recipe ownership")
		}

		if err := repoFactory.MealPlanRepo().Create(ctx, entry); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("recipe not found")
			}

			return errors.WithStack(err)
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to add meal plan entry", "userID", userID, "error", err.Error())

		return nil, err
	}
	srv.log(ctx).Debug("Meal plan entry added", "userID", userID, "entryID", entry.ID)

	return entry, nil
}

// ListEntries returns the user's plan joined with recipe details.
func (srv *mealPlanService) ListEntries(ctx context.Context, userID uuid.UUID) ([]entity.MealPlanEntry, error) {
	entries, err := srv.mealPlanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal plan entries")
	}

	return entries, nil
}

// DeleteEntry removes the caller's entry, with the same collapsed not-found
// semantics as recipe deletion.
func (srv *mealPlanService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	err := srv.mealPlanRepo.DeleteByIDAndUser(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("meal plan entry deletion failed")
		}

		return errors.Wrap(err, "failed to delete meal plan entry")
	}
	srv.log(ctx).Debug("Meal plan entry deleted", "userID", userID, "entryID", entryID)

	return nil
}
