// Package field implements the typed data slots attached to workflow states:
// the nine field types, their parameter variants and validation rules, and
// the codec translating human-entered values to their storage encoding.
package field

// Type identifies one of the nine field types. A field's type is immutable
// after creation.
type Type string

const (
	TypeCheckbox Type = "checkbox"
	TypeDate     Type = "date"
	TypeDecimal  Type = "decimal"
	TypeDuration Type = "duration"
	TypeIssue    Type = "issue"
	TypeList     Type = "list"
	TypeNumber   Type = "number"
	TypeString   Type = "string"
	TypeText     Type = "text"
)

// Types lists every known field type.
var Types = []Type{
	TypeCheckbox,
	TypeDate,
	TypeDecimal,
	TypeDuration,
	TypeIssue,
	TypeList,
	TypeNumber,
	TypeString,
	TypeText,
}

// IsValid reports whether the type is one of the nine known field types.
func (t Type) IsValid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

func (t Type) String() string {
	return string(t)
}
