package models

import (
	"database/sql"
	"time"
)

// Account represents a registered user of the application.
// Credentials are verified against PasswordHash; the plain-text password
// never leaves the handler layer.
type Account struct {
	// ID is the internal unique identifier of the account.
	// It is not exposed via JSON and is used only at the persistence layer.
	ID int64 `json:"-"`

	// Email is the unique login identifier, stored lowercased so that
	// uniqueness is case-insensitive.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// It must never be serialized or logged.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`

	// LastLoginAt is updated on every successful login.
	LastLoginAt sql.NullTime `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
