package template

import "context"

// Repository persists templates and their permission rows.
type Repository interface {
	Save(ctx context.Context, template *Template) error
	Update(ctx context.Context, template *Template) error
	Delete(ctx context.Context, templateID uint) error
	GetByID(ctx context.Context, templateID uint) (*Template, error)
	FindByName(ctx context.Context, projectID uint, name string) (*Template, error)
	FindByPrefix(ctx context.Context, projectID uint, prefix string) (*Template, error)

	ListRolePermissions(ctx context.Context, templateID uint) ([]RolePermission, error)
	ListGroupPermissions(ctx context.Context, templateID uint) ([]GroupPermission, error)
	SetRolePermission(ctx context.Context, perm RolePermission) error
	SetGroupPermission(ctx context.Context, perm GroupPermission) error
}
