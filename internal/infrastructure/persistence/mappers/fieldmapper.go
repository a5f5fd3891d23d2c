package mappers

import (
	"encoding/json"
	"fmt"

	"etraxis/internal/domain/field"
	"etraxis/internal/infrastructure/persistence/models"
)

// fieldParametersJSON is the storage form of the per-type field parameters.
// One JSON column holds whichever subset of slots the field type uses.
type fieldParametersJSON struct {
	DefaultBool   *bool   `json:"default_bool,omitempty"`
	Minimum       *int    `json:"minimum,omitempty"`
	Maximum       *int    `json:"maximum,omitempty"`
	DefaultInt    *int    `json:"default_int,omitempty"`
	MinimumText   string  `json:"minimum_text,omitempty"`
	MaximumText   string  `json:"maximum_text,omitempty"`
	DefaultText   *string `json:"default_text,omitempty"`
	MaximumLength int     `json:"maximum_length,omitempty"`
	DefaultItemID *uint   `json:"default_item_id,omitempty"`
	Check         string  `json:"check,omitempty"`
	Search        string  `json:"search,omitempty"`
	Replace       string  `json:"replace,omitempty"`
}

// FieldMapper handles the conversion between Field domain entities and
// persistence models.
type FieldMapper interface {
	ToModel(f *field.Field) (*models.FieldModel, error)
	ToDomain(model *models.FieldModel) (*field.Field, error)
}

type FieldMapperImpl struct{}

// NewFieldMapper creates a new FieldMapper.
func NewFieldMapper() FieldMapper {
	return &FieldMapperImpl{}
}

func (m *FieldMapperImpl) ToModel(f *field.Field) (*models.FieldModel, error) {
	raw, err := encodeParameters(f.Parameters())
	if err != nil {
		return nil, err
	}

	return &models.FieldModel{
		ID:          f.ID(),
		StateID:     f.StateID(),
		Name:        f.Name(),
		Description: f.Description(),
		Type:        f.Type().String(),
		Position:    f.Position(),
		IsRequired:  f.IsRequired(),
		IsRemoved:   f.IsRemoved(),
		Parameters:  raw,
	}, nil
}

func (m *FieldMapperImpl) ToDomain(model *models.FieldModel) (*field.Field, error) {
	typ := field.Type(model.Type)
	params, err := decodeParameters(typ, model.Parameters)
	if err != nil {
		return nil, fmt.Errorf("field %d: %w", model.ID, err)
	}

	return field.ReconstructField(
		model.ID,
		model.StateID,
		model.Name,
		model.Description,
		typ,
		model.Position,
		model.IsRequired,
		model.IsRemoved,
		params,
	)
}

func encodeParameters(params field.Parameters) (string, error) {
	var dto fieldParametersJSON

	switch p := params.(type) {
	case field.CheckboxParameters:
		dto.DefaultBool = &p.Default
	case field.DateParameters:
		dto.Minimum = &p.Minimum
		dto.Maximum = &p.Maximum
		dto.DefaultInt = p.Default
	case field.DecimalParameters:
		dto.MinimumText = p.Minimum
		dto.MaximumText = p.Maximum
		dto.DefaultText = p.Default
	case field.DurationParameters:
		dto.MinimumText = p.Minimum
		dto.MaximumText = p.Maximum
		dto.DefaultText = p.Default
	case field.IssueParameters:
		// no parameters
	case field.ListParameters:
		dto.DefaultItemID = p.DefaultItemID
	case field.NumberParameters:
		dto.Minimum = &p.Minimum
		dto.Maximum = &p.Maximum
		dto.DefaultInt = p.Default
	case field.StringParameters:
		dto.MaximumLength = p.MaximumLength
		dto.DefaultText = p.Default
		dto.Check = p.PCRE.Check
		dto.Search = p.PCRE.Search
		dto.Replace = p.PCRE.Replace
	case field.TextParameters:
		dto.MaximumLength = p.MaximumLength
		dto.DefaultText = p.Default
		dto.Check = p.PCRE.Check
		dto.Search = p.PCRE.Search
		dto.Replace = p.PCRE.Replace
	default:
		return "", fmt.Errorf("unknown parameters type %T", params)
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return "", fmt.Errorf("failed to marshal field parameters: %w", err)
	}
	return string(raw), nil
}

func decodeParameters(typ field.Type, raw string) (field.Parameters, error) {
	var dto fieldParametersJSON
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal field parameters: %w", err)
		}
	}

	switch typ {
	case field.TypeCheckbox:
		params := field.CheckboxParameters{}
		if dto.DefaultBool != nil {
			params.Default = *dto.DefaultBool
		}
		return params, nil
	case field.TypeDate:
		params := field.DateParameters{Default: dto.DefaultInt}
		if dto.Minimum != nil {
			params.Minimum = *dto.Minimum
		}
		if dto.Maximum != nil {
			params.Maximum = *dto.Maximum
		}
		return params, nil
	case field.TypeDecimal:
		return field.DecimalParameters{
			Minimum: dto.MinimumText,
			Maximum: dto.MaximumText,
			Default: dto.DefaultText,
		}, nil
	case field.TypeDuration:
		return field.DurationParameters{
			Minimum: dto.MinimumText,
			Maximum: dto.MaximumText,
			Default: dto.DefaultText,
		}, nil
	case field.TypeIssue:
		return field.IssueParameters{}, nil
	case field.TypeList:
		return field.ListParameters{DefaultItemID: dto.DefaultItemID}, nil
	case field.TypeNumber:
		params := field.NumberParameters{Default: dto.DefaultInt}
		if dto.Minimum != nil {
			params.Minimum = *dto.Minimum
		}
		if dto.Maximum != nil {
			params.Maximum = *dto.Maximum
		}
		return params, nil
	case field.TypeString:
		return field.StringParameters{
			MaximumLength: dto.MaximumLength,
			Default:       dto.DefaultText,
			PCRE:          field.PCRE{Check: dto.Check, Search: dto.Search, Replace: dto.Replace},
		}, nil
	case field.TypeText:
		return field.TextParameters{
			MaximumLength: dto.MaximumLength,
			Default:       dto.DefaultText,
			PCRE:          field.PCRE{Check: dto.Check, Search: dto.Search, Replace: dto.Replace},
		}, nil
	}

	return nil, fmt.Errorf("unknown field type %q", typ)
}
