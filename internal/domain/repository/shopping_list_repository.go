package repository

import (
	"context"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// ShoppingListRepository defines owner-scoped persistence for shopping-list items.
type ShoppingListRepository interface {
	// ListByUser returns the user's items in insertion order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.ShoppingListItem, error)

	// ReplaceForUser swaps the user's entire list for the given ingredients
	// and returns the stored items. Callers must run this inside a
	// transaction so the stored set always equals the submitted set, even
	// across a crash.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, ingredients []string) ([]entity.ShoppingListItem, error)

	// DeleteAllByUser removes every item owned by the user.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}
