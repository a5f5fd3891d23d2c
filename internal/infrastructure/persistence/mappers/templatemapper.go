package mappers

import (
	"etraxis/internal/domain/template"
	"etraxis/internal/infrastructure/persistence/models"
)

// TemplateMapper handles the conversion between Template domain entities and
// persistence models.
type TemplateMapper interface {
	ToModel(t *template.Template) *models.TemplateModel
	ToDomain(model *models.TemplateModel) (*template.Template, error)
}

type TemplateMapperImpl struct{}

// NewTemplateMapper creates a new TemplateMapper.
func NewTemplateMapper() TemplateMapper {
	return &TemplateMapperImpl{}
}

func (m *TemplateMapperImpl) ToModel(t *template.Template) *models.TemplateModel {
	return &models.TemplateModel{
		ID:          t.ID(),
		ProjectID:   t.ProjectID(),
		Name:        t.Name(),
		Prefix:      t.Prefix(),
		Description: t.Description(),
		CriticalAge: t.CriticalAge(),
		FrozenTime:  t.FrozenTime(),
		IsLocked:    t.IsLocked(),
	}
}

func (m *TemplateMapperImpl) ToDomain(model *models.TemplateModel) (*template.Template, error) {
	return template.ReconstructTemplate(
		model.ID,
		model.ProjectID,
		model.Name,
		model.Prefix,
		model.Description,
		model.CriticalAge,
		model.FrozenTime,
		model.IsLocked,
	)
}
