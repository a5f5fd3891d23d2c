package field

import "etraxis/internal/domain/security"

// RolePermission grants an access level on a field to an issue-relative
// system role. Rows are immutable snapshots; the effective access of a user
// is the most permissive across all matching rows.
type RolePermission struct {
	FieldID uint
	Role    security.SystemRole
	Access  security.AccessLevel
}

// GroupPermission grants an access level on a field to a group.
type GroupPermission struct {
	FieldID uint
	GroupID uint
	Access  security.AccessLevel
}
