package issue

import "context"

// Repository persists issues.
type Repository interface {
	Save(ctx context.Context, issue *Issue) error
	Update(ctx context.Context, issue *Issue) error
	GetByID(ctx context.Context, issueID uint) (*Issue, error)
	// Exists also satisfies the codec's issue-reference check.
	Exists(ctx context.Context, issueID uint) (bool, error)
}

// EventRepository persists issue events.
type EventRepository interface {
	Save(ctx context.Context, event *Event) error
	ListByIssue(ctx context.Context, issueID uint) ([]*Event, error)
}

// FieldValueRepository persists the per-issue field values.
type FieldValueRepository interface {
	Save(ctx context.Context, value *FieldValue) error
	Update(ctx context.Context, value *FieldValue) error
	// FindByIssueAndField returns nil (without error) when the issue has no
	// value row for the field yet.
	FindByIssueAndField(ctx context.Context, issueID, fieldID uint) (*FieldValue, error)
	ListByIssue(ctx context.Context, issueID uint) ([]*FieldValue, error)
	// CountByField counts value rows referencing a field, across all issues.
	// A field may be purged only when this is zero.
	CountByField(ctx context.Context, fieldID uint) (int64, error)
}

// ChangeRepository persists audit change records.
type ChangeRepository interface {
	Save(ctx context.Context, change *Change) error
	ListByEvent(ctx context.Context, eventID uint) ([]*Change, error)
}
