// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system. The PasswordHash field
// always holds a bcrypt digest, never the plaintext password.
type User struct {
	ID           uuid.UUID
	Email        string // Unique login identifier, stored case-sensitively.
	Name         string // Display name shown in the profile.
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
