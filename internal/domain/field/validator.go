package field

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"etraxis/internal/shared/errors"
	"etraxis/internal/shared/i18n"
)

// ValidateParameters enforces the per-type constraints on a field definition
// before it is persisted. Violations are reported as validation errors with
// translated, parameterized messages.
func ValidateParameters(params Parameters) error {
	switch p := params.(type) {
	case CheckboxParameters, IssueParameters:
		return nil
	case DateParameters:
		return validateDate(p)
	case DecimalParameters:
		return validateDecimal(p)
	case DurationParameters:
		return validateDuration(p)
	case ListParameters:
		// Item existence is checked against the repository by the caller.
		return nil
	case NumberParameters:
		return validateNumber(p)
	case StringParameters:
		return validatePatterned(p.MaximumLength, MaxStringLength, p.Default, p.PCRE)
	case TextParameters:
		return validatePatterned(p.MaximumLength, MaxTextLength, p.Default, p.PCRE)
	default:
		return errors.NewInternalError(fmt.Sprintf("unknown field parameters type %T", params))
	}
}

func validateNumber(p NumberParameters) error {
	if p.Minimum < MinNumberValue || p.Maximum > MaxNumberValue {
		return errors.NewValidationError(fmt.Sprintf("value out of supported range [%d, %d]", MinNumberValue, MaxNumberValue))
	}
	if p.Minimum > p.Maximum {
		return errors.NewValidationError(i18n.Trans(i18n.KeyFieldMinMax, nil))
	}
	if p.Default != nil && (*p.Default < p.Minimum || *p.Default > p.Maximum) {
		return errors.NewValidationError(i18n.Trans(i18n.KeyFieldDefaultRange, i18n.Params{
			"minimum": strconv.Itoa(p.Minimum),
			"maximum": strconv.Itoa(p.Maximum),
		}))
	}
	return nil
}

func validateDate(p DateParameters) error {
	if p.Minimum > p.Maximum {
		return errors.NewValidationError(i18n.Trans(i18n.KeyFieldMinMax, nil))
	}
	if p.Default != nil && (*p.Default < p.Minimum || *p.Default > p.Maximum) {
		return errors.NewValidationError(i18n.Trans(i18n.KeyFieldDefaultRange, i18n.Params{
			"minimum": strconv.Itoa(p.Minimum),
			"maximum": strconv.Itoa(p.Maximum),
		}))
	}
	return nil
}

func validateDecimal(p DecimalParameters) error {
	minimum, err := decimal.NewFromString(p.Minimum)
	if err != nil {
		return errors.NewValidationError(fmt.Sprintf("invalid minimum value %q", p.Minimum))
	}
	maximum, err := decimal.NewFromString(p.Maximum)
	if err != nil {
		return errors.NewValidationError(fmt.Sprintf("invalid maximum value %q", p.Maximum))
	}
	if minimum.GreaterThan(maximum) {
		return errors.NewValidationError(i18n.Trans(i18n.KeyFieldMinMax, nil))
	}
	if p.Default != nil {
		def, err := decimal.NewFromString(*p.Default)
		if err != nil {
			return errors.NewValidationError(fmt.Sprintf("invalid default value %q", *p.Default))
		}
		if def.LessThan(minimum) || def.GreaterThan(maximum) {
			return errors.NewValidationError(i18n.Trans(i18n.KeyFieldDefaultRange, i18n.Params{
				"minimum": p.Minimum,
				"maximum": p.Maximum,
			}))
		}
	}
	return nil
}

func validateDuration(p DurationParameters) error {
	// Bounds are compared as minutes, so "9:00" sorts below "10:00".
	minimum, err := ParseDuration(p.Minimum)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	maximum, err := ParseDuration(p.Maximum)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if minimum > maximum {
		return errors.NewValidationError(i18n.Trans(i18n.KeyFieldMinMax, nil))
	}
	if p.Default != nil {
		def, err := ParseDuration(*p.Default)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if def < minimum || def > maximum {
			return errors.NewValidationError(i18n.Trans(i18n.KeyFieldDefaultRange, i18n.Params{
				"minimum": p.Minimum,
				"maximum": p.Maximum,
			}))
		}
	}
	return nil
}

func validatePatterned(maxLength, limit int, def *string, pcre PCRE) error {
	if maxLength < 1 || maxLength > limit {
		return errors.NewValidationError(fmt.Sprintf("maximum length must be between 1 and %d", limit))
	}
	if err := pcre.Validate(); err != nil {
		return errors.NewValidationError(i18n.Trans(i18n.KeyFieldPCREInvalid, i18n.Params{
			"pattern": pcre.Check,
		}))
	}
	if def == nil {
		return nil
	}
	// Length caps count characters, not bytes.
	if utf8.RuneCountInString(*def) > maxLength {
		return errors.NewValidationError(i18n.Trans(i18n.KeyFieldDefaultLength, i18n.Params{
			"maximum": strconv.Itoa(maxLength),
		}))
	}
	matches, err := pcre.Matches(*def)
	if err != nil {
		return errors.NewValidationError(i18n.Trans(i18n.KeyFieldPCREInvalid, i18n.Params{
			"pattern": pcre.Check,
		}))
	}
	if !matches {
		return errors.NewValidationError(i18n.Trans(i18n.KeyFieldDefaultFormat, nil))
	}
	return nil
}
