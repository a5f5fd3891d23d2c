package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"etraxis/internal/domain/security"
	"etraxis/internal/domain/template"
	"etraxis/internal/infrastructure/persistence/mappers"
	"etraxis/internal/infrastructure/persistence/models"
	"etraxis/internal/shared/db"
	"etraxis/internal/shared/errors"
)

type TemplateRepository struct {
	db     *gorm.DB
	mapper mappers.TemplateMapper
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{
		db:     db,
		mapper: mappers.NewTemplateMapper(),
	}
}

func (r *TemplateRepository) Save(ctx context.Context, t *template.Template) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TemplateRepository) Update(ctx context.Context, t *template.Template) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TemplateModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Prefix", "Description", "CriticalAge", "FrozenTime", "IsLocked").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update template: %w", result.Error)
	}

	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, templateID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TemplateModel{}, templateID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("template %d not found", templateID))
	}
	return nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, templateID uint) (*template.Template, error) {
	var model models.TemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, templateID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("template %d not found", templateID))
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TemplateRepository) FindByName(ctx context.Context, projectID uint, name string) (*template.Template, error) {
	var model models.TemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("project_id = ? AND name = ?", projectID, name).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find template by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TemplateRepository) FindByPrefix(ctx context.Context, projectID uint, prefix string) (*template.Template, error) {
	var model models.TemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("project_id = ? AND prefix = ?", projectID, prefix).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find template by prefix: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TemplateRepository) ListRolePermissions(ctx context.Context, templateID uint) ([]template.RolePermission, error) {
	var rows []models.TemplateRolePermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("template_id = ?", templateID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list template role permissions: %w", err)
	}

	perms := make([]template.RolePermission, 0, len(rows))
	for _, row := range rows {
		perms = append(perms, template.RolePermission{
			TemplateID: row.TemplateID,
			Role:       security.SystemRole(row.Role),
			Permission: template.Permission(row.Permission),
		})
	}
	return perms, nil
}

func (r *TemplateRepository) ListGroupPermissions(ctx context.Context, templateID uint) ([]template.GroupPermission, error) {
	var rows []models.TemplateGroupPermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("template_id = ?", templateID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list template group permissions: %w", err)
	}

	perms := make([]template.GroupPermission, 0, len(rows))
	for _, row := range rows {
		perms = append(perms, template.GroupPermission{
			TemplateID: row.TemplateID,
			GroupID:    row.GroupID,
			Permission: template.Permission(row.Permission),
		})
	}
	return perms, nil
}

// SetRolePermission grants a template permission to a role. Granting twice
// is a no-op.
func (r *TemplateRepository) SetRolePermission(ctx context.Context, perm template.RolePermission) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.TemplateRolePermissionModel{
		TemplateID: perm.TemplateID,
		Role:       perm.Role.String(),
		Permission: perm.Permission.String(),
	}
	if err := tx.Create(&model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to save template role permission: %w", err)
	}
	return nil
}

func (r *TemplateRepository) SetGroupPermission(ctx context.Context, perm template.GroupPermission) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.TemplateGroupPermissionModel{
		TemplateID: perm.TemplateID,
		GroupID:    perm.GroupID,
		Permission: perm.Permission.String(),
	}
	if err := tx.Create(&model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to save template group permission: %w", err)
	}
	return nil
}
