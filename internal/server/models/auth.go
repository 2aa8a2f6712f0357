package models

import "time"

// Auth is a login principal. The password hash never leaves the server.
type Auth struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// AuthPatch carries optional credential changes. PasswordHash is already
// hashed by the caller.
type AuthPatch struct {
	Email        *string
	PasswordHash *string
}
