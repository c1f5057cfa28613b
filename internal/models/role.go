package models

// Role determines what a user may do. Admins see and manage every todo,
// regular users only their own.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a stored role cell onto a known role. Unknown values fall
// back to the least privileged role.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

func (r Role) String() string {
	return string(r)
}
