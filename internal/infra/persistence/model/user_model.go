// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The ON DELETE CASCADE constraints back up the application-level cascading
// delete that runs when an account is removed.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Recipes           []RecipeModel           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	MealPlanEntries   []MealPlanEntryModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ShoppingListItems []ShoppingListItemModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
