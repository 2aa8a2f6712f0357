package models

import "time"

// Session binds a bearer token to an Auth and, once created, its User.
type Session struct {
	ID         string    `db:"id"`
	AuthID     string    `db:"auth_id"`
	UserID     *string   `db:"user_id"`
	SessionID  string    `db:"session_id"`
	ValidUntil time.Time `db:"valid_until"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// IsValid reports whether the session is still live at now.
func (s *Session) IsValid(now time.Time) bool {
	return now.Before(s.ValidUntil)
}
