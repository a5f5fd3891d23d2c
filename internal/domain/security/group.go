package security

import "fmt"

// Group is a named set of users. A group is either global (projectID nil) or
// local to one project.
type Group struct {
	id          uint
	projectID   *uint
	name        string
	description string
}

// NewGroup creates a group.
func NewGroup(name, description string, projectID *uint) (*Group, error) {
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}
	if len(name) > 25 {
		return nil, fmt.Errorf("group name too long (max 25 characters)")
	}
	return &Group{
		projectID:   projectID,
		name:        name,
		description: description,
	}, nil
}

// ReconstructGroup restores a group from persistence.
func ReconstructGroup(id uint, projectID *uint, name, description string) (*Group, error) {
	if id == 0 {
		return nil, fmt.Errorf("group ID cannot be zero")
	}
	g, err := NewGroup(name, description, projectID)
	if err != nil {
		return nil, err
	}
	g.id = id
	return g, nil
}

func (g *Group) ID() uint {
	return g.id
}

func (g *Group) SetID(id uint) error {
	if g.id != 0 {
		return fmt.Errorf("group ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("group ID cannot be zero")
	}
	g.id = id
	return nil
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) Description() string {
	return g.description
}

// ProjectID returns the owning project, or nil for a global group.
func (g *Group) ProjectID() *uint {
	return g.projectID
}

// IsGlobal reports whether the group is shared across projects.
func (g *Group) IsGlobal() bool {
	return g.projectID == nil
}
