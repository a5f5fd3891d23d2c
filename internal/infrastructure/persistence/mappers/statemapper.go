package mappers

import (
	"etraxis/internal/domain/state"
	"etraxis/internal/infrastructure/persistence/models"
)

// StateMapper handles the conversion between State domain entities and
// persistence models.
type StateMapper interface {
	ToModel(s *state.State) *models.StateModel
	ToDomain(model *models.StateModel) (*state.State, error)
}

type StateMapperImpl struct{}

// NewStateMapper creates a new StateMapper.
func NewStateMapper() StateMapper {
	return &StateMapperImpl{}
}

func (m *StateMapperImpl) ToModel(s *state.State) *models.StateModel {
	return &models.StateModel{
		ID:          s.ID(),
		TemplateID:  s.TemplateID(),
		Name:        s.Name(),
		Type:        s.Type().String(),
		Responsible: s.Responsibility().String(),
		NextStateID: s.NextStateID(),
	}
}

func (m *StateMapperImpl) ToDomain(model *models.StateModel) (*state.State, error) {
	return state.ReconstructState(
		model.ID,
		model.TemplateID,
		model.Name,
		state.StateType(model.Type),
		state.Responsibility(model.Responsible),
		model.NextStateID,
	)
}
