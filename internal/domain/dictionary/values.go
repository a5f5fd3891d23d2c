// Package dictionary defines the deduplicated value pools backing decimal,
// string, text and list field values. Identical content maps to one row;
// rows are created on first use and never updated.
package dictionary

import "fmt"

// DecimalValue is one row of the decimal pool. Value is the normalized
// fixed-point representation.
type DecimalValue struct {
	ID    uint
	Value string
}

// StringValue is one row of the string pool.
type StringValue struct {
	ID    uint
	Value string
}

// TextValue is one row of the text pool.
type TextValue struct {
	ID    uint
	Value string
}

// ListItem is one option of a list field, identified inside the field by its
// external numeric value.
type ListItem struct {
	ID      uint
	FieldID uint
	Value   int
	Text    string
}

// NewListItem creates a list item for a field.
func NewListItem(fieldID uint, value int, text string) (*ListItem, error) {
	if fieldID == 0 {
		return nil, fmt.Errorf("list item field ID is required")
	}
	if value <= 0 {
		return nil, fmt.Errorf("list item value must be positive")
	}
	if text == "" {
		return nil, fmt.Errorf("list item text is required")
	}
	if len(text) > 50 {
		return nil, fmt.Errorf("list item text too long (max 50 characters)")
	}
	return &ListItem{FieldID: fieldID, Value: value, Text: text}, nil
}
