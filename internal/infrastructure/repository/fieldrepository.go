package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"etraxis/internal/domain/field"
	"etraxis/internal/domain/security"
	"etraxis/internal/infrastructure/persistence/mappers"
	"etraxis/internal/infrastructure/persistence/models"
	"etraxis/internal/shared/db"
	"etraxis/internal/shared/errors"
)

type FieldRepository struct {
	db     *gorm.DB
	mapper mappers.FieldMapper
}

func NewFieldRepository(db *gorm.DB) *FieldRepository {
	return &FieldRepository{
		db:     db,
		mapper: mappers.NewFieldMapper(),
	}
}

func (r *FieldRepository) Save(ctx context.Context, f *field.Field) error {
	model, err := r.mapper.ToModel(f)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save field: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *FieldRepository) Update(ctx context.Context, f *field.Field) error {
	model, err := r.mapper.ToModel(f)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces zero values (position 0, cleared flags) to be written.
	result := tx.
		Model(&models.FieldModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Description", "Position", "IsRequired", "IsRemoved", "Parameters").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update field: %w", result.Error)
	}

	return nil
}

func (r *FieldRepository) Delete(ctx context.Context, fieldID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.FieldModel{}, fieldID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete field: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("field %d not found", fieldID))
	}
	return nil
}

func (r *FieldRepository) GetByID(ctx context.Context, fieldID uint) (*field.Field, error) {
	var model models.FieldModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, fieldID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("field %d not found", fieldID))
		}
		return nil, fmt.Errorf("failed to find field: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FieldRepository) FindByName(ctx context.Context, stateID uint, name string) (*field.Field, error) {
	var model models.FieldModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("state_id = ? AND name = ? AND is_removed = ?", stateID, name, false).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find field by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FieldRepository) ListByState(ctx context.Context, stateID uint, includeRemoved bool) ([]*field.Field, error) {
	var rows []models.FieldModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("state_id = ?", stateID)
	if !includeRemoved {
		query = query.Where("is_removed = ?", false)
	}
	if err := query.Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}

	fields := make([]*field.Field, 0, len(rows))
	for i := range rows {
		f, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (r *FieldRepository) CountByState(ctx context.Context, stateID uint) (int, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.FieldModel{}).
		Where("state_id = ? AND is_removed = ?", stateID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count fields: %w", err)
	}
	return int(count), nil
}

// ShiftPositions moves a contiguous block of active fields by delta in one
// statement, so reordering never exposes a half-shifted ordering.
func (r *FieldRepository) ShiftPositions(ctx context.Context, stateID uint, lo, hi, delta int) error {
	if lo > hi || delta == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.FieldModel{}).
		Where("state_id = ? AND is_removed = ? AND position BETWEEN ? AND ?", stateID, false, lo, hi).
		Update("position", gorm.Expr("position + ?", delta)).Error
	if err != nil {
		return fmt.Errorf("failed to shift field positions: %w", err)
	}
	return nil
}

func (r *FieldRepository) ListRolePermissions(ctx context.Context, fieldID uint) ([]field.RolePermission, error) {
	var rows []models.FieldRolePermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("field_id = ?", fieldID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list field role permissions: %w", err)
	}

	perms := make([]field.RolePermission, 0, len(rows))
	for _, row := range rows {
		perms = append(perms, field.RolePermission{
			FieldID: row.FieldID,
			Role:    security.SystemRole(row.Role),
			Access:  security.AccessLevel(row.Access),
		})
	}
	return perms, nil
}

func (r *FieldRepository) ListGroupPermissions(ctx context.Context, fieldID uint) ([]field.GroupPermission, error) {
	var rows []models.FieldGroupPermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("field_id = ?", fieldID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list field group permissions: %w", err)
	}

	perms := make([]field.GroupPermission, 0, len(rows))
	for _, row := range rows {
		perms = append(perms, field.GroupPermission{
			FieldID: row.FieldID,
			GroupID: row.GroupID,
			Access:  security.AccessLevel(row.Access),
		})
	}
	return perms, nil
}

// SetRolePermission upserts the access level of one (field, role) pair.
func (r *FieldRepository) SetRolePermission(ctx context.Context, perm field.RolePermission) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FieldRolePermissionModel{}).
		Where("field_id = ? AND role = ?", perm.FieldID, perm.Role.String()).
		Update("access", int(perm.Access))
	if result.Error != nil {
		return fmt.Errorf("failed to update field role permission: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	model := models.FieldRolePermissionModel{
		FieldID: perm.FieldID,
		Role:    perm.Role.String(),
		Access:  int(perm.Access),
	}
	if err := tx.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save field role permission: %w", err)
	}
	return nil
}

// SetGroupPermission upserts the access level of one (field, group) pair.
func (r *FieldRepository) SetGroupPermission(ctx context.Context, perm field.GroupPermission) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FieldGroupPermissionModel{}).
		Where("field_id = ? AND group_id = ?", perm.FieldID, perm.GroupID).
		Update("access", int(perm.Access))
	if result.Error != nil {
		return fmt.Errorf("failed to update field group permission: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	model := models.FieldGroupPermissionModel{
		FieldID: perm.FieldID,
		GroupID: perm.GroupID,
		Access:  int(perm.Access),
	}
	if err := tx.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save field group permission: %w", err)
	}
	return nil
}

func (r *FieldRepository) DeletePermissions(ctx context.Context, fieldID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("field_id = ?", fieldID).Delete(&models.FieldRolePermissionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete field role permissions: %w", err)
	}
	if err := tx.Where("field_id = ?", fieldID).Delete(&models.FieldGroupPermissionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete field group permissions: %w", err)
	}
	return nil
}
