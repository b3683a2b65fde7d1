package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a bookmarked recipe owned by exactly one user. SourceID refers
// to the upstream recipe-search API's identifier; the recipe itself is never
// updated in place, only saved and deleted.
type Recipe struct {
	ID          uuid.UUID
	UserID      uuid.UUID // Owning user; every query on recipes is scoped by it.
	SourceID    int64
	Title       string
	ImageURL    string
	Ingredients []string
	CreatedAt   time.Time
}
