package dictionary

import "context"

// DecimalValues is the deduplicated pool of decimal content. GetOrCreate must
// tolerate the concurrent first-insert race: insert, and on a duplicate-key
// error fall back to a lookup, never pre-check.
type DecimalValues interface {
	GetOrCreate(ctx context.Context, value string) (uint, error)
	GetByID(ctx context.Context, id uint) (string, error)
}

// StringValues is the deduplicated pool of short string content.
type StringValues interface {
	GetOrCreate(ctx context.Context, value string) (uint, error)
	GetByID(ctx context.Context, id uint) (string, error)
}

// TextValues is the deduplicated pool of long text content.
type TextValues interface {
	GetOrCreate(ctx context.Context, value string) (uint, error)
	GetByID(ctx context.Context, id uint) (string, error)
}

// ListItems stores the options of list fields.
type ListItems interface {
	Save(ctx context.Context, item *ListItem) error
	GetByID(ctx context.Context, id uint) (*ListItem, error)
	FindByValue(ctx context.Context, fieldID uint, value int) (*ListItem, error)
	ListByField(ctx context.Context, fieldID uint) ([]ListItem, error)
	DeleteByField(ctx context.Context, fieldID uint) error
}
