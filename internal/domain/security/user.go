package security

import (
	"fmt"
	"time"
)

// User is the acting user as seen by the engine: identity, timezone for
// date-field rendering, admin flag, and group memberships. Account
// management (authentication, profiles) lives outside this core.
type User struct {
	id       uint
	fullname string
	timezone string
	isAdmin  bool
	groupIDs []uint
}

// NewUser creates a user snapshot.
func NewUser(fullname, timezone string, isAdmin bool) (*User, error) {
	if fullname == "" {
		return nil, fmt.Errorf("user fullname is required")
	}
	if timezone == "" {
		timezone = "UTC"
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", timezone, err)
	}
	return &User{
		fullname: fullname,
		timezone: timezone,
		isAdmin:  isAdmin,
	}, nil
}

// ReconstructUser restores a user from persistence.
func ReconstructUser(id uint, fullname, timezone string, isAdmin bool, groupIDs []uint) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	u, err := NewUser(fullname, timezone, isAdmin)
	if err != nil {
		return nil, err
	}
	u.id = id
	u.groupIDs = append([]uint(nil), groupIDs...)
	return u, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Fullname() string {
	return u.fullname
}

func (u *User) IsAdmin() bool {
	return u.isAdmin
}

// Timezone returns the user's IANA timezone name.
func (u *User) Timezone() string {
	return u.timezone
}

// Location resolves the user's timezone. The name was validated on
// construction, so a failure here falls back to UTC.
func (u *User) Location() *time.Location {
	loc, err := time.LoadLocation(u.timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GroupIDs returns a copy of the user's group memberships.
func (u *User) GroupIDs() []uint {
	return append([]uint(nil), u.groupIDs...)
}

// IsMemberOf reports whether the user belongs to the given group.
func (u *User) IsMemberOf(groupID uint) bool {
	for _, id := range u.groupIDs {
		if id == groupID {
			return true
		}
	}
	return false
}

// RolesFor returns the system roles the user holds relative to the given
// issue author/responsible pair. Every user holds RoleAnyone.
func (u *User) RolesFor(authorID uint, responsibleID *uint) []SystemRole {
	roles := []SystemRole{RoleAnyone}
	if u.id == authorID {
		roles = append(roles, RoleAuthor)
	}
	if responsibleID != nil && u.id == *responsibleID {
		roles = append(roles, RoleResponsible)
	}
	return roles
}
