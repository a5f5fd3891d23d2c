package field

import "context"

// Repository persists fields and their permission rows. Implementations are
// expected to honor a transaction carried in the context.
type Repository interface {
	Save(ctx context.Context, field *Field) error
	Update(ctx context.Context, field *Field) error
	// Delete hard-deletes a field row. Callers must have verified the field
	// is soft-removed and unused.
	Delete(ctx context.Context, fieldID uint) error
	GetByID(ctx context.Context, fieldID uint) (*Field, error)
	FindByName(ctx context.Context, stateID uint, name string) (*Field, error)
	// ListByState returns the state's fields ordered by position.
	ListByState(ctx context.Context, stateID uint, includeRemoved bool) ([]*Field, error)
	// CountByState counts the state's active fields.
	CountByState(ctx context.Context, stateID uint) (int, error)
	// ShiftPositions adds delta to the position of every active field of the
	// state whose position lies in [lo, hi]. Used by reordering and removal
	// compaction; must execute as a single statement.
	ShiftPositions(ctx context.Context, stateID uint, lo, hi, delta int) error

	ListRolePermissions(ctx context.Context, fieldID uint) ([]RolePermission, error)
	ListGroupPermissions(ctx context.Context, fieldID uint) ([]GroupPermission, error)
	SetRolePermission(ctx context.Context, perm RolePermission) error
	SetGroupPermission(ctx context.Context, perm GroupPermission) error
	DeletePermissions(ctx context.Context, fieldID uint) error
}
