// Package state implements workflow states and the transition rules between
// them. Issues occupy exactly one state at a time; each template has exactly
// one initial state.
package state

import "fmt"

// StateType classifies a state within its template's workflow.
type StateType string

const (
	TypeInitial      StateType = "initial"
	TypeIntermediate StateType = "intermediate"
	TypeFinal        StateType = "final"
)

// IsValid reports whether the type is a known state type.
func (t StateType) IsValid() bool {
	switch t {
	case TypeInitial, TypeIntermediate, TypeFinal:
		return true
	}
	return false
}

func (t StateType) String() string {
	return string(t)
}

// Responsibility is the policy applied to an issue's responsible assignment
// when the issue enters the state.
type Responsibility string

const (
	ResponsibleKeep   Responsibility = "irrelevant"
	ResponsibleAssign Responsibility = "assign"
	ResponsibleRemove Responsibility = "remove"
)

// IsValid reports whether the value is a known responsibility policy.
func (r Responsibility) IsValid() bool {
	switch r {
	case ResponsibleKeep, ResponsibleAssign, ResponsibleRemove:
		return true
	}
	return false
}

func (r Responsibility) String() string {
	return string(r)
}

// State is a workflow node within a template.
type State struct {
	id          uint
	templateID  uint
	name        string
	typ         StateType
	responsible Responsibility
	nextStateID *uint
}

// NewState creates a state. Final states always clear the responsible, so
// any configured policy is forced to ResponsibleRemove for them.
func NewState(templateID uint, name string, typ StateType, responsible Responsibility, nextStateID *uint) (*State, error) {
	if templateID == 0 {
		return nil, fmt.Errorf("state template ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("state name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("state name too long (max 50 characters)")
	}
	if !typ.IsValid() {
		return nil, fmt.Errorf("invalid state type %q", typ)
	}
	if !responsible.IsValid() {
		return nil, fmt.Errorf("invalid responsibility policy %q", responsible)
	}
	if typ == TypeFinal {
		responsible = ResponsibleRemove
		nextStateID = nil
	}

	return &State{
		templateID:  templateID,
		name:        name,
		typ:         typ,
		responsible: responsible,
		nextStateID: nextStateID,
	}, nil
}

// ReconstructState restores a state from persistence.
func ReconstructState(id, templateID uint, name string, typ StateType, responsible Responsibility, nextStateID *uint) (*State, error) {
	if id == 0 {
		return nil, fmt.Errorf("state ID cannot be zero")
	}
	s, err := NewState(templateID, name, typ, responsible, nextStateID)
	if err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

func (s *State) ID() uint {
	return s.id
}

func (s *State) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("state ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("state ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *State) TemplateID() uint {
	return s.templateID
}

func (s *State) Name() string {
	return s.name
}

func (s *State) Type() StateType {
	return s.typ
}

func (s *State) IsInitial() bool {
	return s.typ == TypeInitial
}

func (s *State) IsFinal() bool {
	return s.typ == TypeFinal
}

// Responsibility returns the responsible policy, which is always
// ResponsibleRemove for final states.
func (s *State) Responsibility() Responsibility {
	if s.typ == TypeFinal {
		return ResponsibleRemove
	}
	return s.responsible
}

// NextStateID returns the default transition target, if any.
func (s *State) NextStateID() *uint {
	return s.nextStateID
}

// Rename changes the state's name.
func (s *State) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("state name is required")
	}
	if len(name) > 50 {
		return fmt.Errorf("state name too long (max 50 characters)")
	}
	s.name = name
	return nil
}

// SetNextState sets the default transition target, which must belong to the
// same template (checked by the caller against loaded states).
func (s *State) SetNextState(nextStateID *uint) {
	if s.typ == TypeFinal {
		return
	}
	s.nextStateID = nextStateID
}
