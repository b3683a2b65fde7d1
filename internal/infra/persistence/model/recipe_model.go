package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel mirrors the 'recipes' table. SourceID is the upstream
// recipe-search API's identifier; ingredients are stored as jsonb.
type RecipeModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	SourceID    int64      `gorm:"not null"`
	Title       string     `gorm:"type:varchar(255);not null"`
	ImageURL    string     `gorm:"type:text"`
	Ingredients StringList `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
