// Package usecases contains the command handlers for field administration:
// creating, updating, reordering, soft-removing and purging fields.
package usecases

import (
	"context"

	"etraxis/internal/domain/security"
	"etraxis/internal/domain/template"
)

// TransactionManager runs a function inside a storage transaction so every
// command applies atomically.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Gate is the administrative permission gate consulted before any field
// definition is touched: the owning template must be locked and the user
// must be an administrator.
type Gate interface {
	CanManage(user *security.User, tmpl *template.Template) (bool, error)
}
