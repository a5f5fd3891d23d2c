package security

import "context"

// UserRepository loads user snapshots including group memberships.
type UserRepository interface {
	GetByID(ctx context.Context, userID uint) (*User, error)
	Save(ctx context.Context, user *User) error
}

// GroupRepository loads groups and memberships.
type GroupRepository interface {
	GetByID(ctx context.Context, groupID uint) (*Group, error)
	Save(ctx context.Context, group *Group) error
	ListMembers(ctx context.Context, groupID uint) ([]uint, error)
	AddMember(ctx context.Context, groupID, userID uint) error
	RemoveMember(ctx context.Context, groupID, userID uint) error
}
