package state

import "context"

// Repository persists states, transition edges and responsible groups.
// Edge and group queries return immutable snapshots for the transaction in
// progress; there is no lazy loading.
type Repository interface {
	Save(ctx context.Context, state *State) error
	Update(ctx context.Context, state *State) error
	Delete(ctx context.Context, stateID uint) error
	GetByID(ctx context.Context, stateID uint) (*State, error)
	ListByTemplate(ctx context.Context, templateID uint) ([]*State, error)
	// GetInitial returns the template's single initial state.
	GetInitial(ctx context.Context, templateID uint) (*State, error)
	// SetInitial promotes the given state to initial and demotes whichever
	// state of the template previously was, in one combined update so no
	// transient zero-initial-state window exists. Re-applying the current
	// initial state is a no-op.
	SetInitial(ctx context.Context, templateID, stateID uint) error

	ListRoleTransitions(ctx context.Context, fromStateID uint) ([]RoleTransition, error)
	ListGroupTransitions(ctx context.Context, fromStateID uint) ([]GroupTransition, error)
	SetRoleTransition(ctx context.Context, edge RoleTransition) error
	SetGroupTransition(ctx context.Context, edge GroupTransition) error

	ListResponsibleGroups(ctx context.Context, stateID uint) ([]ResponsibleGroup, error)
	SetResponsibleGroup(ctx context.Context, group ResponsibleGroup) error
}
