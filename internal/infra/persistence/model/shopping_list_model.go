package model

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingListItemModel mirrors the 'shopping_list_items' table.
type ShoppingListItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Ingredient string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShoppingListItemModel) TableName() string {
	return "shopping_list_items"
}
