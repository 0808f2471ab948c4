package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique lowercased email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialised
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// User is the public view of a user.
// swagger:model User
type User struct {
	// example: 2b0d6a0c-7f0e-4c4a-9f53-3f1a6c2b8e11
	ID uuid.UUID `json:"id"`
	// example: Alice
	Name string `json:"name"`
	// example: alice@example.com
	Email string `json:"email"`
}

// ToUser strips storage-only fields.
func (u *UserDB) ToUser() User {
	return User{ID: u.UserID, Name: u.Name, Email: u.Email}
}
