package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealType tags a meal-plan entry with the meal it is planned for.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// String returns the string representation of the MealType.
func (m MealType) String() string {
	return string(m)
}

// IsValid checks if the MealType is a valid value.
func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	default:
		return false
	}
}

// DayOfWeek names the day a meal-plan entry is assigned to.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// String returns the string representation of the DayOfWeek.
func (d DayOfWeek) String() string {
	return string(d)
}

// IsValid checks if the DayOfWeek is a valid value.
func (d DayOfWeek) IsValid() bool {
	return d.Ordinal() >= 0
}

// Ordinal returns the position of the day within the week (Monday = 0),
// or -1 for an unknown value. Used to keep meal-plan listings in week order.
func (d DayOfWeek) Ordinal() int {
	switch d {
	case Monday:
		return 0
	case Tuesday:
		return 1
	case Wednesday:
		return 2
	case Thursday:
		return 3
	case Friday:
		return 4
	case Saturday:
		return 5
	case Sunday:
		return 6
	default:
		return -1
	}
}

// MealPlanEntry assigns a saved recipe to a day of the week and a meal slot.
// RecipeTitle and RecipeImageURL are read-only projections filled in when the
// entry is listed joined with its recipe; they are never persisted here.
type MealPlanEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RecipeID  uuid.UUID
	DayOfWeek DayOfWeek
	MealType  MealType
	CreatedAt time.Time

	RecipeTitle    string
	RecipeImageURL string
}
