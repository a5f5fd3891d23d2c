// Package security holds the access-control vocabulary of the tracker:
// issue-relative system roles, access levels, users and groups, and the
// enforcer interface guarding administrative operations.
package security

// SystemRole is a role computed relative to one issue, distinct from the
// global admin flag. Every user holds RoleAnyone; the issue's author
// additionally holds RoleAuthor, and its current responsible RoleResponsible.
type SystemRole string

const (
	RoleAnyone      SystemRole = "anyone"
	RoleAuthor      SystemRole = "author"
	RoleResponsible SystemRole = "responsible"
)

// IsValid reports whether the role is one of the known system roles.
func (r SystemRole) IsValid() bool {
	switch r {
	case RoleAnyone, RoleAuthor, RoleResponsible:
		return true
	}
	return false
}

func (r SystemRole) String() string {
	return string(r)
}
