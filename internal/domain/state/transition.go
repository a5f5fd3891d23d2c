package state

import "etraxis/internal/domain/security"

// RoleTransition is a directed workflow edge gated by an issue-relative
// system role. Source and target must belong to the same template.
type RoleTransition struct {
	FromStateID uint
	ToStateID   uint
	Role        security.SystemRole
}

// GroupTransition is a directed workflow edge gated by group membership.
type GroupTransition struct {
	FromStateID uint
	ToStateID   uint
	GroupID     uint
}

// ResponsibleGroup declares a group whose members are candidate responsibles
// when the state's policy is ResponsibleAssign.
type ResponsibleGroup struct {
	StateID uint
	GroupID uint
}

// CanTransition reports whether a user holding the given roles and group
// memberships may move an issue from the source of the edges to the given
// target state. Multiple edges may exist from the same source; any single
// match is sufficient.
func CanTransition(toStateID uint, roles []security.SystemRole, groupIDs []uint, roleEdges []RoleTransition, groupEdges []GroupTransition) bool {
	for _, edge := range roleEdges {
		if edge.ToStateID != toStateID {
			continue
		}
		for _, role := range roles {
			if edge.Role == role {
				return true
			}
		}
	}
	for _, edge := range groupEdges {
		if edge.ToStateID != toStateID {
			continue
		}
		for _, groupID := range groupIDs {
			if edge.GroupID == groupID {
				return true
			}
		}
	}
	return false
}
