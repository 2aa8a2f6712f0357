package models

import "time"

type Role string

const (
	RoleUser      Role = "User"
	RoleDeveloper Role = "Developer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleDeveloper
}

// User is the display identity attached to exactly one Auth.
type User struct {
	ID          string    `db:"id" json:"id"`
	AuthID      string    `db:"auth_id" json:"auth_id"`
	DisplayName string    `db:"display_name" json:"display_name"`
	Role        Role      `db:"role" json:"role"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type UserPatch struct {
	DisplayName *string
}
