// Package usecases contains the command handlers for working with issues:
// creating them, and reading and writing their field values.
package usecases

import (
	"context"

	"etraxis/internal/domain/field"
	"etraxis/internal/domain/issue"
	"etraxis/internal/domain/security"
	"etraxis/internal/domain/template"
)

// TransactionManager runs a function inside a storage transaction so every
// command applies atomically.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AccessResolver answers the permission questions issue commands ask:
// template-level permissions and per-field access levels, both relative to
// the acting user's roles on the issue at hand.
type AccessResolver interface {
	HasTemplatePermission(ctx context.Context, user *security.User, iss *issue.Issue, templateID uint, perm template.Permission) (bool, error)
	FieldAccess(ctx context.Context, user *security.User, iss *issue.Issue, f *field.Field) (security.AccessLevel, error)
}
