package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID             int64      `json:"id" db:"id"`                   // Primary key
	Username       string     `json:"username" db:"username"`       // Unique username
	Email          string     `json:"email" db:"email"`             // Unique email
	HashedPassword string     `json:"-" db:"hashed_password"`       // bcrypt hash, never serialized
	IsActive       bool       `json:"is_active" db:"is_active"`     // Soft-delete flag
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
	ModifiedAt     *time.Time `json:"modified_at" db:"modified_at"` // Last update timestamp
}
