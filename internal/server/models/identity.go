package models

// Identity is the result of resolving a request's session. Both fields are
// nil for an anonymous caller; User is nil until a profile exists.
type Identity struct {
	Auth *Auth
	User *User
}

func Anonymous() Identity { return Identity{} }

func (i Identity) IsAnonymous() bool { return i.Auth == nil }

// IsDeveloper reports whether the caller has a profile with the Developer role.
func (i Identity) IsDeveloper() bool {
	return i.User != nil && i.User.Role == RoleDeveloper
}
