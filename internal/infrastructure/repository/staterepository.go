package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"etraxis/internal/domain/security"
	"etraxis/internal/domain/state"
	"etraxis/internal/infrastructure/persistence/mappers"
	"etraxis/internal/infrastructure/persistence/models"
	"etraxis/internal/shared/db"
	"etraxis/internal/shared/errors"
)

type StateRepository struct {
	db     *gorm.DB
	mapper mappers.StateMapper
}

func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{
		db:     db,
		mapper: mappers.NewStateMapper(),
	}
}

func (r *StateRepository) Save(ctx context.Context, s *state.State) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *StateRepository) Update(ctx context.Context, s *state.State) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StateModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Type", "Responsible", "NextStateID").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update state: %w", result.Error)
	}

	return nil
}

func (r *StateRepository) Delete(ctx context.Context, stateID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.StateModel{}, stateID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("state %d not found", stateID))
	}
	return nil
}

func (r *StateRepository) GetByID(ctx context.Context, stateID uint) (*state.State, error) {
	var model models.StateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, stateID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("state %d not found", stateID))
		}
		return nil, fmt.Errorf("failed to find state: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StateRepository) ListByTemplate(ctx context.Context, templateID uint) ([]*state.State, error) {
	var rows []models.StateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("template_id = ?", templateID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}

	states := make([]*state.State, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, nil
}

func (r *StateRepository) GetInitial(ctx context.Context, templateID uint) (*state.State, error) {
	var model models.StateModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("template_id = ? AND type = ?", templateID, state.TypeInitial.String()).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("template %d has no initial state", templateID))
		}
		return nil, fmt.Errorf("failed to find initial state: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// SetInitial promotes stateID and demotes the previous initial state of the
// template in one UPDATE, so concurrent elections settle on exactly one
// initial state and re-electing the current one changes nothing.
func (r *StateRepository) SetInitial(ctx context.Context, templateID, stateID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.StateModel{}).
		Where("template_id = ? AND (id = ? OR type = ?)", templateID, stateID, state.TypeInitial.String()).
		Update("type", gorm.Expr(
			"CASE WHEN id = ? THEN ? ELSE ? END",
			stateID, state.TypeInitial.String(), state.TypeIntermediate.String(),
		)).Error
	if err != nil {
		return fmt.Errorf("failed to set initial state: %w", err)
	}
	return nil
}

func (r *StateRepository) ListRoleTransitions(ctx context.Context, fromStateID uint) ([]state.RoleTransition, error) {
	var rows []models.StateRoleTransitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("from_state_id = ?", fromStateID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list role transitions: %w", err)
	}

	edges := make([]state.RoleTransition, 0, len(rows))
	for _, row := range rows {
		edges = append(edges, state.RoleTransition{
			FromStateID: row.FromStateID,
			ToStateID:   row.ToStateID,
			Role:        security.SystemRole(row.Role),
		})
	}
	return edges, nil
}

func (r *StateRepository) ListGroupTransitions(ctx context.Context, fromStateID uint) ([]state.GroupTransition, error) {
	var rows []models.StateGroupTransitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("from_state_id = ?", fromStateID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list group transitions: %w", err)
	}

	edges := make([]state.GroupTransition, 0, len(rows))
	for _, row := range rows {
		edges = append(edges, state.GroupTransition{
			FromStateID: row.FromStateID,
			ToStateID:   row.ToStateID,
			GroupID:     row.GroupID,
		})
	}
	return edges, nil
}

// SetRoleTransition records a workflow edge. Re-adding an existing edge is a
// no-op thanks to the unique index.
func (r *StateRepository) SetRoleTransition(ctx context.Context, edge state.RoleTransition) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.StateRoleTransitionModel{
		FromStateID: edge.FromStateID,
		ToStateID:   edge.ToStateID,
		Role:        edge.Role.String(),
	}
	if err := tx.Create(&model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to save role transition: %w", err)
	}
	return nil
}

func (r *StateRepository) SetGroupTransition(ctx context.Context, edge state.GroupTransition) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.StateGroupTransitionModel{
		FromStateID: edge.FromStateID,
		ToStateID:   edge.ToStateID,
		GroupID:     edge.GroupID,
	}
	if err := tx.Create(&model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to save group transition: %w", err)
	}
	return nil
}

func (r *StateRepository) ListResponsibleGroups(ctx context.Context, stateID uint) ([]state.ResponsibleGroup, error) {
	var rows []models.StateResponsibleGroupModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("state_id = ?", stateID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list responsible groups: %w", err)
	}

	groups := make([]state.ResponsibleGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, state.ResponsibleGroup{
			StateID: row.StateID,
			GroupID: row.GroupID,
		})
	}
	return groups, nil
}

func (r *StateRepository) SetResponsibleGroup(ctx context.Context, group state.ResponsibleGroup) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.StateResponsibleGroupModel{
		StateID: group.StateID,
		GroupID: group.GroupID,
	}
	if err := tx.Create(&model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to save responsible group: %w", err)
	}
	return nil
}
