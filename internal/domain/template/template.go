// Package template implements the reusable issue-type definition: a set of
// workflow states, fields and permissions under a project.
package template

import "fmt"

// Template is the issue-type definition. A locked template accepts no new
// issues; field definitions and permissions are editable only while the
// template is locked.
type Template struct {
	id          uint
	projectID   uint
	name        string
	prefix      string
	description string
	criticalAge *int
	frozenTime  *int
	locked      bool
}

// NewTemplate creates a template. New templates start locked so their
// workflow can be configured before any issue is created.
func NewTemplate(projectID uint, name, prefix, description string, criticalAge, frozenTime *int) (*Template, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("template project ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("template name too long (max 50 characters)")
	}
	if prefix == "" {
		return nil, fmt.Errorf("template prefix is required")
	}
	if len(prefix) > 5 {
		return nil, fmt.Errorf("template prefix too long (max 5 characters)")
	}
	if criticalAge != nil && *criticalAge < 1 {
		return nil, fmt.Errorf("critical age must be positive")
	}
	if frozenTime != nil && *frozenTime < 1 {
		return nil, fmt.Errorf("frozen time must be positive")
	}

	return &Template{
		projectID:   projectID,
		name:        name,
		prefix:      prefix,
		description: description,
		criticalAge: criticalAge,
		frozenTime:  frozenTime,
		locked:      true,
	}, nil
}

// ReconstructTemplate restores a template from persistence.
func ReconstructTemplate(id, projectID uint, name, prefix, description string, criticalAge, frozenTime *int, locked bool) (*Template, error) {
	if id == 0 {
		return nil, fmt.Errorf("template ID cannot be zero")
	}
	t, err := NewTemplate(projectID, name, prefix, description, criticalAge, frozenTime)
	if err != nil {
		return nil, err
	}
	t.id = id
	t.locked = locked
	return t, nil
}

func (t *Template) ID() uint {
	return t.id
}

func (t *Template) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("template ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("template ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Template) ProjectID() uint {
	return t.projectID
}

func (t *Template) Name() string {
	return t.name
}

func (t *Template) Prefix() string {
	return t.prefix
}

func (t *Template) Description() string {
	return t.description
}

// CriticalAge returns the number of days after which an open issue is
// considered critical, or nil when disabled.
func (t *Template) CriticalAge() *int {
	return t.criticalAge
}

// FrozenTime returns the number of days after closing during which an issue
// remains editable, or nil when issues never freeze.
func (t *Template) FrozenTime() *int {
	return t.frozenTime
}

func (t *Template) IsLocked() bool {
	return t.locked
}

// Lock takes the template out of service for configuration changes.
func (t *Template) Lock() {
	t.locked = true
}

// Unlock puts the template in service.
func (t *Template) Unlock() {
	t.locked = false
}
