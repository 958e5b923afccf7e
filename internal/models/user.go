package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user row in the credentials store
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username, case-sensitive exact match
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized or logged
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
