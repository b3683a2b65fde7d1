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

// mealPlanRepository implements the repository.MealPlanRepository interface using GORM.
type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository is the constructor for mealPlanRepository.
func NewMealPlanRepository(db *gorm.DB) repository.MealPlanRepository {
	return &mealPlanRepository{db: db}
}

// Create persists a meal plan entry. Referencing a recipe that does not
// exist (or was deleted concurrently) trips the foreign key and is
// reported as repository.ErrRecordNotFound.
func (repo *mealPlanRepository) Create(ctx context.Context, entry *entity.MealPlanEntry) error {
	entryM := fromMealPlanDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecordNotFound
		}

		// For other database errors, return a generic database error.
		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal plan entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// mealPlanRow carries the joined projection of an entry and its recipe.
type mealPlanRow struct {
	model.MealPlanEntryModel
	RecipeTitle    string `gorm:"column:recipe_title"`
	RecipeImageURL string `gorm:"column:recipe_image_url"`
}

// dayOrderExpr sorts entries Monday through Sunday regardless of the
// lexical order of the stored day names.
const dayOrderExpr = `CASE meal_plan_entries.day_of_week
	WHEN 'monday' THEN 0
	WHEN 'tuesday' THEN 1
	WHEN 'wednesday' THEN 2
	WHEN 'thursday' THEN 3
	WHEN 'friday' THEN 4
	WHEN 'saturday' THEN 5
	WHEN 'sunday' THEN 6
	ELSE 7 END`

// ListByUser returns a user's meal plan joined with recipe details,
// ordered by weekday and then by creation time.
func (repo *mealPlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.MealPlanEntry, error) {
	var rows []mealPlanRow
	err := repo.db.WithContext(ctx).
		Model(&model.MealPlanEntryModel{}).
		Select("meal_plan_entries.*, recipes.title AS recipe_title, recipes.image_url AS recipe_image_url").
		Joins("JOIN recipes ON recipes.id = meal_plan_entries.recipe_id").
		Where("meal_plan_entries.user_id = ?", userID).
		Order(dayOrderExpr).
		Order("meal_plan_entries.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal plan entries")
	}

	entries := make([]entity.MealPlanEntry, 0, len(rows))
	for i := range rows {
		entry := toMealPlanDomain(&rows[i].MealPlanEntryModel)
		entry.RecipeTitle = rows[i].RecipeTitle
		entry.RecipeImageURL = rows[i].RecipeImageURL
		entries = append(entries, *entry)
	}

	return entries, nil
}

// DeleteByIDAndUser removes a meal plan entry only when it belongs to the
// given user, mirroring the recipe delete semantics.
func (repo *mealPlanRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.MealPlanEntryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete meal plan entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// DeleteAllByUser removes every meal plan entry owned by a user.
func (repo *mealPlanRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.MealPlanEntryModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete meal plan entries for user")
	}

	return nil
}

// toMealPlanDomain converts a GORM MealPlanEntryModel to a domain entity.
func toMealPlanDomain(data *model.MealPlanEntryModel) *entity.MealPlanEntry {
	if data == nil {
		return nil
	}

	return &entity.MealPlanEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		RecipeID:  data.RecipeID,
		DayOfWeek: entity.DayOfWeek(data.DayOfWeek),
		MealType:  entity.MealType(data.MealType),
		CreatedAt: data.CreatedAt,
	}
}

// fromMealPlanDomain converts a domain entity to a GORM MealPlanEntryModel.
func fromMealPlanDomain(data *entity.MealPlanEntry) *model.MealPlanEntryModel {
	if data == nil {
		return nil
	}

	return &model.MealPlanEntryModel{
		ID:        data.ID,
		UserID:    data.UserID,
		RecipeID:  data.RecipeID,
		DayOfWeek: data.DayOfWeek.String(),
		MealType:  data.MealType.String(),
	}
}
