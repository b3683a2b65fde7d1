package postgres

import (
	"context"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists a saved recipe for its owner.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt

	return nil
}

// ListByUser returns every recipe saved by a user, newest first.
func (repo *recipeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Recipe, error) {
	var recipeMs []model.RecipeModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]entity.Recipe, 0, len(recipeMs))
	for i := range recipeMs {
		recipes = append(recipes, *toRecipeDomain(&recipeMs[i]))
	}

	return recipes, nil
}

// FindByIDAndUser returns a recipe only when it belongs to the given user.
func (repo *recipeRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return toRecipeDomain(&recipeM), nil
}

// DeleteByIDAndUser removes a recipe only when it belongs to the given user.
// The ownership filter lives in the WHERE clause, so a recipe owned by
// someone else is indistinguishable from one that never existed:
// both report repository.ErrRecordNotFound.
func (repo *recipeRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.RecipeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// DeleteAllByUser removes every recipe owned by a user.
func (repo *recipeRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RecipeModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete recipes for user")
	}

	return nil
}

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:          data.ID,
		UserID:      data.UserID,
		SourceID:    data.SourceID,
		Title:       data.Title,
		ImageURL:    data.ImageURL,
		Ingredients: data.Ingredients,
		CreatedAt:   data.CreatedAt,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:          data.ID,
		UserID:      data.UserID,
		SourceID:    data.SourceID,
		Title:       data.Title,
		ImageURL:    data.ImageURL,
		Ingredients: model.StringList(data.Ingredients),
	}
}
