package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"etraxis/internal/domain/issue"
	"etraxis/internal/infrastructure/persistence/mappers"
	"etraxis/internal/infrastructure/persistence/models"
	"etraxis/internal/shared/db"
	"etraxis/internal/shared/errors"
)

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *IssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save issue: %w", err)
	}

	return i.SetID(model.ID)
}

// Update writes the issue guarded by its version column. A stale version
// means a concurrent writer got there first.
func (r *IssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ? AND version < ?", model.ID, model.Version).
		Select("Subject", "StateID", "ResponsibleID", "Version", "ChangedAt", "ClosedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError(fmt.Sprintf("issue %d was modified concurrently", model.ID))
	}

	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, issueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("issue %d not found", issueID))
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) Exists(ctx context.Context, issueID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.IssueModel{}).Where("id = ?", issueID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check issue existence: %w", err)
	}
	return count > 0, nil
}

type EventRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *EventRepository) Save(ctx context.Context, e *issue.Event) error {
	model := r.mapper.EventToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *EventRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.Event, error) {
	var rows []models.EventModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("issue_id = ?", issueID).Order("created_at, id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]*issue.Event, 0, len(rows))
	for i := range rows {
		e, err := r.mapper.EventToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

type FieldValueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewFieldValueRepository(db *gorm.DB) *FieldValueRepository {
	return &FieldValueRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *FieldValueRepository) Save(ctx context.Context, fv *issue.FieldValue) error {
	model := r.mapper.FieldValueToModel(fv)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save field value: %w", err)
	}

	return fv.SetID(model.ID)
}

func (r *FieldValueRepository) Update(ctx context.Context, fv *issue.FieldValue) error {
	tx := db.GetTxFromContext(ctx, r.db)

	// Update only the value slot; the (issue, field) pair is immutable.
	err := tx.
		Model(&models.FieldValueModel{}).
		Where("id = ?", fv.ID()).
		Update("value", fv.Value()).Error
	if err != nil {
		return fmt.Errorf("failed to update field value: %w", err)
	}
	return nil
}

func (r *FieldValueRepository) FindByIssueAndField(ctx context.Context, issueID, fieldID uint) (*issue.FieldValue, error) {
	var model models.FieldValueModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("issue_id = ? AND field_id = ?", issueID, fieldID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find field value: %w", err)
	}

	return r.mapper.FieldValueToDomain(&model)
}

func (r *FieldValueRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.FieldValue, error) {
	var rows []models.FieldValueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("issue_id = ?", issueID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list field values: %w", err)
	}

	values := make([]*issue.FieldValue, 0, len(rows))
	for i := range rows {
		fv, err := r.mapper.FieldValueToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		values = append(values, fv)
	}
	return values, nil
}

func (r *FieldValueRepository) CountByField(ctx context.Context, fieldID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.FieldValueModel{}).Where("field_id = ?", fieldID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count field values: %w", err)
	}
	return count, nil
}

type ChangeRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewChangeRepository(db *gorm.DB) *ChangeRepository {
	return &ChangeRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *ChangeRepository) Save(ctx context.Context, c *issue.Change) error {
	model := r.mapper.ChangeToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save change: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ChangeRepository) ListByEvent(ctx context.Context, eventID uint) ([]*issue.Change, error) {
	var rows []models.ChangeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("event_id = ?", eventID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}

	changes := make([]*issue.Change, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ChangeToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		changes = append(changes, c)
	}
	return changes, nil
}
