// Package access computes effective permissions from the template and field
// permission rows, the acting user's issue-relative roles and group
// memberships, and the administrative policy engine.
package access

import (
	"context"
	"strconv"

	"etraxis/internal/domain/field"
	"etraxis/internal/domain/issue"
	"etraxis/internal/domain/security"
	"etraxis/internal/domain/template"
)

// Resolver answers permission questions. It reads rule snapshots from the
// repositories within the caller's transaction scope.
type Resolver struct {
	templates template.Repository
	fields    field.Repository
	enforcer  security.PermissionEnforcer
}

// NewResolver creates a permission resolver. The enforcer may be nil, in
// which case only the user's admin flag opens the administrative gate.
func NewResolver(templates template.Repository, fields field.Repository, enforcer security.PermissionEnforcer) *Resolver {
	return &Resolver{
		templates: templates,
		fields:    fields,
		enforcer:  enforcer,
	}
}

// rolesFor computes the user's issue-relative roles. With no issue in scope
// (e.g. creating one) only RoleAnyone applies.
func rolesFor(user *security.User, iss *issue.Issue) []security.SystemRole {
	if iss == nil {
		return []security.SystemRole{security.RoleAnyone}
	}
	return user.RolesFor(iss.AuthorID(), iss.ResponsibleID())
}

// HasTemplatePermission reports whether the user holds the given template
// permission, via any matching role rule or group rule. No matching rule
// means no permission.
func (r *Resolver) HasTemplatePermission(ctx context.Context, user *security.User, iss *issue.Issue, templateID uint, perm template.Permission) (bool, error) {
	roles := rolesFor(user, iss)

	rolePerms, err := r.templates.ListRolePermissions(ctx, templateID)
	if err != nil {
		return false, err
	}
	for _, rule := range rolePerms {
		if rule.Permission != perm {
			continue
		}
		for _, role := range roles {
			if rule.Role == role {
				return true, nil
			}
		}
	}

	groupPerms, err := r.templates.ListGroupPermissions(ctx, templateID)
	if err != nil {
		return false, err
	}
	for _, rule := range groupPerms {
		if rule.Permission == perm && user.IsMemberOf(rule.GroupID) {
			return true, nil
		}
	}

	return false, nil
}

// FieldAccess returns the user's effective access level on a field: the most
// permissive grant across all matching role and group rules, or AccessNone
// when no rule matches.
func (r *Resolver) FieldAccess(ctx context.Context, user *security.User, iss *issue.Issue, f *field.Field) (security.AccessLevel, error) {
	roles := rolesFor(user, iss)
	level := security.AccessNone

	rolePerms, err := r.fields.ListRolePermissions(ctx, f.ID())
	if err != nil {
		return security.AccessNone, err
	}
	for _, rule := range rolePerms {
		for _, role := range roles {
			if rule.Role == role {
				level = level.Max(rule.Access)
			}
		}
	}

	groupPerms, err := r.fields.ListGroupPermissions(ctx, f.ID())
	if err != nil {
		return security.AccessNone, err
	}
	for _, rule := range groupPerms {
		if user.IsMemberOf(rule.GroupID) {
			level = level.Max(rule.Access)
		}
	}

	return level, nil
}

// CanManage reports whether the user may edit the template's configuration
// (field definitions, workflow, permissions). The template must be locked,
// and the user must be an administrator, either by flag or by a policy grant
// in the enforcer. This gate layers on top of the per-field rules; it never
// replaces them.
func (r *Resolver) CanManage(user *security.User, tmpl *template.Template) (bool, error) {
	if !tmpl.IsLocked() {
		return false, nil
	}
	if user.IsAdmin() {
		return true, nil
	}
	if r.enforcer == nil {
		return false, nil
	}
	uid := strconv.FormatUint(uint64(user.ID()), 10)
	return r.enforcer.Enforce(uid, security.ResourceFields, security.ActionManage)
}
