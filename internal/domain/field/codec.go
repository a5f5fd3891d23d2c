package field

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"etraxis/internal/domain/dictionary"
	"etraxis/internal/shared/errors"
)

// dateLayout is the human form of a date value.
const dateLayout = "2006-01-02"

// IssueFinder answers whether an issue exists; the codec uses it to reject
// dangling issue references without importing the issue domain.
type IssueFinder interface {
	Exists(ctx context.Context, issueID uint) (bool, error)
}

// CodecStores bundles the collaborators a codec needs: the dictionary value
// pools and the issue existence check.
type CodecStores struct {
	Decimals dictionary.DecimalValues
	Strings  dictionary.StringValues
	Texts    dictionary.TextValues
	Items    dictionary.ListItems
	Issues   IssueFinder
}

// Codec maps between the human form of a field value and its normalized
// storage encoding. One encoding strategy exists per field type, selected by
// explicit dispatch on the field's type.
type Codec struct {
	field  *Field
	stores CodecStores
}

// NewCodec builds a codec bound to one field.
func NewCodec(f *Field, stores CodecStores) *Codec {
	return &Codec{field: f, stores: stores}
}

// Encode converts a human-entered value to its storage form. A nil input
// encodes to nil. For user-supplied references (list items, issues) a
// dangling target is reported as ok=false rather than an error, so callers
// can treat it as "value rejected". loc is the entering user's timezone,
// applied to date values.
func (c *Codec) Encode(ctx context.Context, human any, loc *time.Location) (*int64, bool, error) {
	if human == nil {
		return nil, true, nil
	}

	switch c.field.Type() {
	case TypeCheckbox:
		b, ok := human.(bool)
		if !ok {
			return nil, false, errors.NewValidationError("checkbox value must be a boolean")
		}
		v := int64(0)
		if b {
			v = 1
		}
		return &v, true, nil

	case TypeDate:
		s, ok := human.(string)
		if !ok {
			return nil, false, errors.NewValidationError("date value must be a string")
		}
		t, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return nil, false, errors.NewValidationError(fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", s))
		}
		v := t.Unix()
		return &v, true, nil

	case TypeDecimal:
		s, ok := human.(string)
		if !ok {
			return nil, false, errors.NewValidationError("decimal value must be a string")
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, false, errors.NewValidationError(fmt.Sprintf("invalid decimal value %q", s))
		}
		if p, ok := c.field.Parameters().(DecimalParameters); ok {
			lo, err1 := decimal.NewFromString(p.Minimum)
			hi, err2 := decimal.NewFromString(p.Maximum)
			if err1 == nil && err2 == nil && (d.LessThan(lo) || d.GreaterThan(hi)) {
				return nil, false, errors.NewValidationError(fmt.Sprintf("value should be in range from %s to %s", p.Minimum, p.Maximum))
			}
		}
		id, err := c.stores.Decimals.GetOrCreate(ctx, s)
		if err != nil {
			return nil, false, err
		}
		v := int64(id)
		return &v, true, nil

	case TypeDuration:
		s, ok := human.(string)
		if !ok {
			return nil, false, errors.NewValidationError("duration value must be a string")
		}
		minutes, err := ParseDuration(s)
		if err != nil {
			return nil, false, errors.NewValidationError(err.Error())
		}
		if p, ok := c.field.Parameters().(DurationParameters); ok {
			lo, err1 := ParseDuration(p.Minimum)
			hi, err2 := ParseDuration(p.Maximum)
			if err1 == nil && err2 == nil && (minutes < lo || minutes > hi) {
				return nil, false, errors.NewValidationError(fmt.Sprintf("value should be in range from %s to %s", p.Minimum, p.Maximum))
			}
		}
		v := int64(minutes)
		return &v, true, nil

	case TypeIssue:
		id, ok := human.(uint)
		if !ok {
			return nil, false, errors.NewValidationError("issue value must be an issue ID")
		}
		exists, err := c.stores.Issues.Exists(ctx, id)
		if err != nil {
			return nil, false, err
		}
		if !exists {
			return nil, false, nil
		}
		v := int64(id)
		return &v, true, nil

	case TypeList:
		value, ok := human.(int)
		if !ok {
			return nil, false, errors.NewValidationError("list value must be an integer")
		}
		item, err := c.stores.Items.FindByValue(ctx, c.field.ID(), value)
		if err != nil {
			return nil, false, err
		}
		if item == nil {
			return nil, false, nil
		}
		v := int64(item.ID)
		return &v, true, nil

	case TypeNumber:
		n, ok := human.(int)
		if !ok {
			return nil, false, errors.NewValidationError("number value must be an integer")
		}
		if p, ok := c.field.Parameters().(NumberParameters); ok && (n < p.Minimum || n > p.Maximum) {
			return nil, false, errors.NewValidationError(fmt.Sprintf("value should be in range from %d to %d", p.Minimum, p.Maximum))
		}
		v := int64(n)
		return &v, true, nil

	case TypeString:
		s, ok := human.(string)
		if !ok {
			return nil, false, errors.NewValidationError("string value must be a string")
		}
		if p, ok := c.field.Parameters().(StringParameters); ok {
			if err := checkPatterned(s, p.MaximumLength, p.PCRE); err != nil {
				return nil, false, err
			}
		}
		id, err := c.stores.Strings.GetOrCreate(ctx, s)
		if err != nil {
			return nil, false, err
		}
		v := int64(id)
		return &v, true, nil

	case TypeText:
		s, ok := human.(string)
		if !ok {
			return nil, false, errors.NewValidationError("text value must be a string")
		}
		if p, ok := c.field.Parameters().(TextParameters); ok {
			if err := checkPatterned(s, p.MaximumLength, p.PCRE); err != nil {
				return nil, false, err
			}
		}
		id, err := c.stores.Texts.GetOrCreate(ctx, s)
		if err != nil {
			return nil, false, err
		}
		v := int64(id)
		return &v, true, nil

	default:
		// A field with an unknown type is a defect, not user input.
		return nil, false, errors.NewInternalError(fmt.Sprintf("unknown field type %q", c.field.Type()))
	}
}

// Decode converts a storage value back to its human form. It is the exact
// inverse of Encode; a stored value that cannot be resolved (unknown
// dictionary id) is a defect surfaced as an internal error. loc is the
// reading user's timezone, applied to date values.
func (c *Codec) Decode(ctx context.Context, value *int64, loc *time.Location) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch c.field.Type() {
	case TypeCheckbox:
		return *value != 0, nil

	case TypeDate:
		return time.Unix(*value, 0).In(loc).Format(dateLayout), nil

	case TypeDecimal:
		s, err := c.stores.Decimals.GetByID(ctx, uint(*value))
		if err != nil {
			return nil, errors.NewInternalError(fmt.Sprintf("dangling decimal value id %d", *value), err.Error())
		}
		return s, nil

	case TypeDuration:
		return FormatDuration(int(*value)), nil

	case TypeIssue:
		return uint(*value), nil

	case TypeList:
		item, err := c.stores.Items.GetByID(ctx, uint(*value))
		if err != nil {
			return nil, errors.NewInternalError(fmt.Sprintf("dangling list item id %d", *value), err.Error())
		}
		return item.Value, nil

	case TypeNumber:
		return int(*value), nil

	case TypeString:
		s, err := c.stores.Strings.GetByID(ctx, uint(*value))
		if err != nil {
			return nil, errors.NewInternalError(fmt.Sprintf("dangling string value id %d", *value), err.Error())
		}
		return s, nil

	case TypeText:
		s, err := c.stores.Texts.GetByID(ctx, uint(*value))
		if err != nil {
			return nil, errors.NewInternalError(fmt.Sprintf("dangling text value id %d", *value), err.Error())
		}
		return s, nil

	default:
		return nil, errors.NewInternalError(fmt.Sprintf("unknown field type %q", c.field.Type()))
	}
}

// DefaultValue returns the field's configured default in human form, or nil
// when no default is set.
func (c *Codec) DefaultValue(ctx context.Context, createdAt time.Time, loc *time.Location) (any, error) {
	switch p := c.field.Parameters().(type) {
	case CheckboxParameters:
		return p.Default, nil
	case DateParameters:
		if p.Default == nil {
			return nil, nil
		}
		// Date defaults are day offsets from the issue creation date.
		return createdAt.In(loc).AddDate(0, 0, *p.Default).Format(dateLayout), nil
	case DecimalParameters:
		if p.Default == nil {
			return nil, nil
		}
		return *p.Default, nil
	case DurationParameters:
		if p.Default == nil {
			return nil, nil
		}
		return *p.Default, nil
	case IssueParameters:
		return nil, nil
	case ListParameters:
		if p.DefaultItemID == nil {
			return nil, nil
		}
		item, err := c.stores.Items.GetByID(ctx, *p.DefaultItemID)
		if err != nil {
			return nil, errors.NewInternalError(fmt.Sprintf("dangling default list item id %d", *p.DefaultItemID), err.Error())
		}
		return item.Value, nil
	case NumberParameters:
		if p.Default == nil {
			return nil, nil
		}
		return *p.Default, nil
	case StringParameters:
		if p.Default == nil {
			return nil, nil
		}
		return *p.Default, nil
	case TextParameters:
		if p.Default == nil {
			return nil, nil
		}
		return *p.Default, nil
	default:
		return nil, errors.NewInternalError(fmt.Sprintf("unknown field parameters type %T", p))
	}
}

// checkPatterned enforces the length cap and the Check pattern of string and
// text fields on a submitted value.
func checkPatterned(value string, maxLength int, pcre PCRE) error {
	if maxLength > 0 && utf8.RuneCountInString(value) > maxLength {
		return errors.NewValidationError(fmt.Sprintf("value should not be longer than %d characters", maxLength))
	}
	matched, err := pcre.Matches(value)
	if err != nil {
		return errors.NewInternalError("invalid check pattern", err.Error())
	}
	if !matched {
		return errors.NewValidationError("value does not match the required format")
	}
	return nil
}
