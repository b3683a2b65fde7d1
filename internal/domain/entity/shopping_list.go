package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingListItem is a single ingredient line on a user's shopping list.
// The list has replace-wholesale semantics: an update swaps the user's entire
// stored set for the submitted one, never merging the two.
type ShoppingListItem struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Ingredient string
	CreatedAt  time.Time
}
