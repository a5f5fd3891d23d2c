package field

// Parameter limits per type.
const (
	MaxStringLength = 250
	MaxTextLength   = 10000
	MinNumberValue  = -1000000000
	MaxNumberValue  = 1000000000
)

// Parameters is the type-specific configuration of a field. Each of the nine
// field types has its own variant struct, accessed only through the matching
// type, so there is no shared bag of generically-named slots.
type Parameters interface {
	FieldType() Type
}

// CheckboxParameters configures a checkbox field.
type CheckboxParameters struct {
	Default bool
}

func (CheckboxParameters) FieldType() Type { return TypeCheckbox }

// DateParameters configures a date field. Bounds and default are day offsets
// relative to the issue creation date and may be negative.
type DateParameters struct {
	Minimum int
	Maximum int
	Default *int
}

func (DateParameters) FieldType() Type { return TypeDate }

// DecimalParameters configures a decimal field. Bounds and default are
// fixed-precision strings; comparisons never go through floating point.
type DecimalParameters struct {
	Minimum string
	Maximum string
	Default *string
}

func (DecimalParameters) FieldType() Type { return TypeDecimal }

// DurationParameters configures a duration field. Bounds and default use the
// "H:MM" form.
type DurationParameters struct {
	Minimum string
	Maximum string
	Default *string
}

func (DurationParameters) FieldType() Type { return TypeDuration }

// IssueParameters configures an issue-reference field, which has no
// parameters.
type IssueParameters struct{}

func (IssueParameters) FieldType() Type { return TypeIssue }

// ListParameters configures a list field. The default, when set, must
// reference an item belonging to the same field.
type ListParameters struct {
	DefaultItemID *uint
}

func (ListParameters) FieldType() Type { return TypeList }

// NumberParameters configures an integer field.
type NumberParameters struct {
	Minimum int
	Maximum int
	Default *int
}

func (NumberParameters) FieldType() Type { return TypeNumber }

// StringParameters configures a single-line string field.
type StringParameters struct {
	MaximumLength int
	Default       *string
	PCRE          PCRE
}

func (StringParameters) FieldType() Type { return TypeString }

// TextParameters configures a multi-line text field.
type TextParameters struct {
	MaximumLength int
	Default       *string
	PCRE          PCRE
}

func (TextParameters) FieldType() Type { return TypeText }
