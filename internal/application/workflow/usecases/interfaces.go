// Package usecases contains the command handlers for workflow
// administration and execution: defining states and transition edges,
// electing the initial state, and moving issues between states.
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

// Gate is the administrative permission gate consulted before any workflow
// definition is touched.
type Gate interface {
	CanManage(user *security.User, tmpl *template.Template) (bool, error)
}
