package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash of the password
	Role         Role      `json:"role" db:"role"`             // Access role
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
