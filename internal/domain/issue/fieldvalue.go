package issue

import "fmt"

// FieldValue is the materialized value of one field on one issue: one row
// per (issue, field) pair, holding the normalized storage encoding. A nil
// value means the field is empty.
type FieldValue struct {
	id      uint
	issueID uint
	fieldID uint
	value   *int64
}

// NewFieldValue creates the value row for a field that just became part of
// an issue.
func NewFieldValue(issueID, fieldID uint, value *int64) (*FieldValue, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("field value issue ID is required")
	}
	if fieldID == 0 {
		return nil, fmt.Errorf("field value field ID is required")
	}
	return &FieldValue{
		issueID: issueID,
		fieldID: fieldID,
		value:   value,
	}, nil
}

// ReconstructFieldValue restores a field value from persistence.
func ReconstructFieldValue(id, issueID, fieldID uint, value *int64) (*FieldValue, error) {
	if id == 0 {
		return nil, fmt.Errorf("field value ID cannot be zero")
	}
	fv, err := NewFieldValue(issueID, fieldID, value)
	if err != nil {
		return nil, err
	}
	fv.id = id
	return fv, nil
}

func (fv *FieldValue) ID() uint {
	return fv.id
}

func (fv *FieldValue) SetID(id uint) error {
	if fv.id != 0 {
		return fmt.Errorf("field value ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("field value ID cannot be zero")
	}
	fv.id = id
	return nil
}

func (fv *FieldValue) IssueID() uint {
	return fv.issueID
}

func (fv *FieldValue) FieldID() uint {
	return fv.fieldID
}

func (fv *FieldValue) Value() *int64 {
	return fv.value
}

// Update replaces the stored encoding.
func (fv *FieldValue) Update(value *int64) {
	fv.value = value
}

// Equals reports whether the stored encoding equals the given one.
func (fv *FieldValue) Equals(value *int64) bool {
	if fv.value == nil || value == nil {
		return fv.value == nil && value == nil
	}
	return *fv.value == *value
}
