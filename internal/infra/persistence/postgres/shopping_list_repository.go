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

// shoppingListRepository implements the repository.ShoppingListRepository interface using GORM.
type shoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository is the constructor for shoppingListRepository.
func NewShoppingListRepository(db *gorm.DB) repository.ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

// ListByUser returns a user's shopping list in insertion order.
func (repo *shoppingListRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.ShoppingListItem, error) {
	var itemMs []model.ShoppingListItemModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shopping list items")
	}

	items := make([]entity.ShoppingListItem, 0, len(itemMs))
	for i := range itemMs {
		items = append(items, *toShoppingListDomain(&itemMs[i]))
	}

	return items, nil
}

// ReplaceForUser swaps a user's entire shopping list for the supplied
// ingredients. Callers are expected to run this inside a transaction so a
// failed insert never leaves the list half cleared; an empty slice simply
// clears the list.
func (repo *shoppingListRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, ingredients []string) ([]entity.ShoppingListItem, error) {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ShoppingListItemModel{}).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to clear shopping list")
	}

	if len(ingredients) == 0 {
		return []entity.ShoppingListItem{}, nil
	}

	itemMs := make([]model.ShoppingListItemModel, 0, len(ingredients))
	for _, ingredient := range ingredients {
		itemMs = append(itemMs, model.ShoppingListItemModel{
			UserID:     userID,
			Ingredient: ingredient,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&itemMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert shopping list items")
	}

	items := make([]entity.ShoppingListItem, 0, len(itemMs))
	for i := range itemMs {
		items = append(items, *toShoppingListDomain(&itemMs[i]))
	}

	return items, nil
}

// DeleteAllByUser removes every shopping list item owned by a user.
func (repo *shoppingListRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ShoppingListItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete shopping list items for user")
	}

	return nil
}

// toShoppingListDomain converts a GORM ShoppingListItemModel to a domain entity.
func toShoppingListDomain(data *model.ShoppingListItemModel) *entity.ShoppingListItem {
	if data == nil {
		return nil
	}

	return &entity.ShoppingListItem{
		ID:         data.ID,
		UserID:     data.UserID,
		Ingredient: data.Ingredient,
		CreatedAt:  data.CreatedAt,
	}
}
