package model

import (
	"time"

	"github.com/google/uuid"
)

// MealPlanEntryModel mirrors the 'meal_plan_entries' table. Both the user and
// the recipe references cascade on delete so neither account removal nor
// recipe deletion can leave dangling plan entries.
type MealPlanEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null"`
	DayOfWeek string    `gorm:"type:varchar(16);not null"`
	MealType  string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time

	Recipe *RecipeModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MealPlanEntryModel) TableName() string {
	return "meal_plan_entries"
}
