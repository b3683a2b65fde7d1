package usecase

import (
	"context"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// ShoppingListUsecase defines the interface for shopping-list operations.
// The list is replaced wholesale on every write, mirroring how clients
// submit the full ingredient set each time.
type ShoppingListUsecase interface {
	GetList(ctx context.Context, userID uuid.UUID) ([]entity.ShoppingListItem, error)
	ReplaceList(ctx context.Context, userID uuid.UUID, ingredients []string) ([]entity.ShoppingListItem, error)
}
