package issue

import "fmt"

// Change is an immutable audit record of one value transition: created
// exactly once when a value actually changes, never updated or deleted.
// FieldID is nil when the change is to the issue's subject.
type Change struct {
	id       uint
	eventID  uint
	fieldID  *uint
	oldValue *int64
	newValue *int64
}

// NewChange records a value transition under an event.
func NewChange(eventID uint, fieldID *uint, oldValue, newValue *int64) (*Change, error) {
	if eventID == 0 {
		return nil, fmt.Errorf("change event ID is required")
	}
	if fieldID != nil && *fieldID == 0 {
		return nil, fmt.Errorf("change field ID cannot be zero")
	}
	return &Change{
		eventID:  eventID,
		fieldID:  fieldID,
		oldValue: oldValue,
		newValue: newValue,
	}, nil
}

// ReconstructChange restores a change from persistence.
func ReconstructChange(id, eventID uint, fieldID *uint, oldValue, newValue *int64) (*Change, error) {
	if id == 0 {
		return nil, fmt.Errorf("change ID cannot be zero")
	}
	c, err := NewChange(eventID, fieldID, oldValue, newValue)
	if err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

func (c *Change) ID() uint {
	return c.id
}

func (c *Change) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("change ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("change ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Change) EventID() uint {
	return c.eventID
}

// FieldID returns the changed field, or nil for a subject change.
func (c *Change) FieldID() *uint {
	return c.fieldID
}

func (c *Change) OldValue() *int64 {
	return c.oldValue
}

func (c *Change) NewValue() *int64 {
	return c.newValue
}
