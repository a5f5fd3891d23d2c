package field

import (
	"fmt"
)

// Field is a typed data slot attached to one workflow state. Its type never
// changes after creation; its parameters are the variant struct matching the
// type. A field may be soft-removed to exclude it from new issues while
// preserving history, and hard-deleted only while unused.
type Field struct {
	id          uint
	stateID     uint
	name        string
	description string
	typ         Type
	position    int
	required    bool
	removed     bool
	params      Parameters
}

// NewField creates a field on a state. The position is the 0-based ordinal
// among the state's active fields.
func NewField(stateID uint, name, description string, typ Type, position int, required bool, params Parameters) (*Field, error) {
	if stateID == 0 {
		return nil, fmt.Errorf("field state ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("field name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("field name too long (max 50 characters)")
	}
	if !typ.IsValid() {
		return nil, fmt.Errorf("invalid field type %q", typ)
	}
	if params == nil {
		return nil, fmt.Errorf("field parameters are required")
	}
	if params.FieldType() != typ {
		return nil, fmt.Errorf("parameters of type %q do not match field type %q", params.FieldType(), typ)
	}
	if position < 0 {
		return nil, fmt.Errorf("field position cannot be negative")
	}
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}

	return &Field{
		stateID:     stateID,
		name:        name,
		description: description,
		typ:         typ,
		position:    position,
		required:    required,
		params:      params,
	}, nil
}

// ReconstructField restores a field from persistence.
func ReconstructField(id, stateID uint, name, description string, typ Type, position int, required, removed bool, params Parameters) (*Field, error) {
	if id == 0 {
		return nil, fmt.Errorf("field ID cannot be zero")
	}
	if !typ.IsValid() {
		return nil, fmt.Errorf("invalid field type %q", typ)
	}
	if params == nil || params.FieldType() != typ {
		return nil, fmt.Errorf("parameters do not match field type %q", typ)
	}
	return &Field{
		id:          id,
		stateID:     stateID,
		name:        name,
		description: description,
		typ:         typ,
		position:    position,
		required:    required,
		removed:     removed,
		params:      params,
	}, nil
}

func (f *Field) ID() uint {
	return f.id
}

func (f *Field) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("field ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("field ID cannot be zero")
	}
	f.id = id
	return nil
}

func (f *Field) StateID() uint {
	return f.stateID
}

func (f *Field) Name() string {
	return f.name
}

func (f *Field) Description() string {
	return f.description
}

func (f *Field) Type() Type {
	return f.typ
}

func (f *Field) Position() int {
	return f.position
}

func (f *Field) IsRequired() bool {
	return f.required
}

func (f *Field) IsRemoved() bool {
	return f.removed
}

func (f *Field) Parameters() Parameters {
	return f.params
}

// UpdateDetails changes the mutable attributes of the field. The type is
// immutable: the new parameters must belong to the existing type.
func (f *Field) UpdateDetails(name, description string, required bool, params Parameters) error {
	if name == "" {
		return fmt.Errorf("field name is required")
	}
	if len(name) > 50 {
		return fmt.Errorf("field name too long (max 50 characters)")
	}
	if params == nil {
		return fmt.Errorf("field parameters are required")
	}
	if params.FieldType() != f.typ {
		return fmt.Errorf("field type is immutable: cannot change %q to %q", f.typ, params.FieldType())
	}
	if err := ValidateParameters(params); err != nil {
		return err
	}

	f.name = name
	f.description = description
	f.required = required
	f.params = params

	return nil
}

// SetPosition moves the field to a new 0-based ordinal. Shifting siblings is
// the repository's concern; this only records the final slot.
func (f *Field) SetPosition(position int) error {
	if position < 0 {
		return fmt.Errorf("field position cannot be negative")
	}
	f.position = position
	return nil
}

// Remove soft-removes the field so new issues no longer include it. History
// referencing the field is preserved. Removing twice is a no-op.
func (f *Field) Remove() {
	f.removed = true
}

// Restore reverts a soft removal.
func (f *Field) Restore() {
	f.removed = false
}
