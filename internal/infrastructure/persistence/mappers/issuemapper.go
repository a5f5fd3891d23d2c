package mappers

import (
	"time"

	"etraxis/internal/domain/issue"
	"etraxis/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between issue aggregate entities and
// persistence models.
type IssueMapper interface {
	ToModel(i *issue.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*issue.Issue, error)

	EventToModel(e *issue.Event) *models.EventModel
	EventToDomain(model *models.EventModel) (*issue.Event, error)

	FieldValueToModel(fv *issue.FieldValue) *models.FieldValueModel
	FieldValueToDomain(model *models.FieldValueModel) (*issue.FieldValue, error)

	ChangeToModel(c *issue.Change) *models.ChangeModel
	ChangeToDomain(model *models.ChangeModel) (*issue.Change, error)
}

type IssueMapperImpl struct{}

// NewIssueMapper creates a new IssueMapper.
func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(i *issue.Issue) *models.IssueModel {
	model := &models.IssueModel{
		ID:            i.ID(),
		Subject:       i.Subject(),
		StateID:       i.StateID(),
		AuthorID:      i.AuthorID(),
		ResponsibleID: i.ResponsibleID(),
		Version:       i.Version(),
		CreatedAt:     i.CreatedAt().UnixMilli(),
		ChangedAt:     i.ChangedAt().UnixMilli(),
	}

	if i.ClosedAt() != nil {
		closed := i.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	var closedAt *time.Time
	if model.ClosedAt != nil {
		closed := time.UnixMilli(*model.ClosedAt)
		closedAt = &closed
	}

	return issue.ReconstructIssue(
		model.ID,
		model.Subject,
		model.StateID,
		model.AuthorID,
		model.ResponsibleID,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.ChangedAt),
		closedAt,
	)
}

func (m *IssueMapperImpl) EventToModel(e *issue.Event) *models.EventModel {
	return &models.EventModel{
		ID:        e.ID(),
		IssueID:   e.IssueID(),
		UserID:    e.UserID(),
		Type:      string(e.Type()),
		CreatedAt: e.CreatedAt().UnixMilli(),
	}
}

func (m *IssueMapperImpl) EventToDomain(model *models.EventModel) (*issue.Event, error) {
	return issue.ReconstructEvent(
		model.ID,
		model.IssueID,
		model.UserID,
		issue.EventType(model.Type),
		time.UnixMilli(model.CreatedAt),
	)
}

func (m *IssueMapperImpl) FieldValueToModel(fv *issue.FieldValue) *models.FieldValueModel {
	return &models.FieldValueModel{
		ID:      fv.ID(),
		IssueID: fv.IssueID(),
		FieldID: fv.FieldID(),
		Value:   fv.Value(),
	}
}

func (m *IssueMapperImpl) FieldValueToDomain(model *models.FieldValueModel) (*issue.FieldValue, error) {
	return issue.ReconstructFieldValue(model.ID, model.IssueID, model.FieldID, model.Value)
}

func (m *IssueMapperImpl) ChangeToModel(c *issue.Change) *models.ChangeModel {
	return &models.ChangeModel{
		ID:       c.ID(),
		EventID:  c.EventID(),
		FieldID:  c.FieldID(),
		OldValue: c.OldValue(),
		NewValue: c.NewValue(),
	}
}

func (m *IssueMapperImpl) ChangeToDomain(model *models.ChangeModel) (*issue.Change, error) {
	return issue.ReconstructChange(model.ID, model.EventID, model.FieldID, model.OldValue, model.NewValue)
}
