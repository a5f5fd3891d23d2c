package template

import "etraxis/internal/domain/security"

// Permission names a template-level capability.
type Permission string

const (
	PermissionViewIssues      Permission = "view_issues"
	PermissionCreateIssues    Permission = "create_issues"
	PermissionEditIssues      Permission = "edit_issues"
	PermissionReassignIssues  Permission = "reassign_issues"
	PermissionChangeState     Permission = "change_state"
	PermissionAddComments     Permission = "add_comments"
	PermissionPrivateComments Permission = "private_comments"
	PermissionAttachFiles     Permission = "attach_files"
	PermissionDeleteFiles     Permission = "delete_files"
	PermissionAttachSubissues Permission = "attach_subissues"
	PermissionDetachSubissues Permission = "detach_subissues"
	PermissionSendReminders   Permission = "send_reminders"
	PermissionDeleteIssues    Permission = "delete_issues"
)

// IsValid reports whether the permission is a known template permission.
func (p Permission) IsValid() bool {
	switch p {
	case PermissionViewIssues, PermissionCreateIssues, PermissionEditIssues,
		PermissionReassignIssues, PermissionChangeState, PermissionAddComments,
		PermissionPrivateComments, PermissionAttachFiles, PermissionDeleteFiles,
		PermissionAttachSubissues, PermissionDetachSubissues,
		PermissionSendReminders, PermissionDeleteIssues:
		return true
	}
	return false
}

func (p Permission) String() string {
	return string(p)
}

// RolePermission grants a template permission to an issue-relative system
// role. A subject may be granted by multiple rows; any match grants.
type RolePermission struct {
	TemplateID uint
	Role       security.SystemRole
	Permission Permission
}

// GroupPermission grants a template permission to a group.
type GroupPermission struct {
	TemplateID uint
	GroupID    uint
	Permission Permission
}
