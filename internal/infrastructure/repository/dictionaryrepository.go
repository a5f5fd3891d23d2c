package repository

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"gorm.io/gorm"

	"etraxis/internal/domain/dictionary"
	"etraxis/internal/infrastructure/persistence/models"
	"etraxis/internal/shared/db"
	"etraxis/internal/shared/errors"
)

// The pool repositories implement get-or-create without a pre-check: insert
// first, and when the unique index reports the row already exists, look it
// up. Two concurrent first-writers of the same content thus converge on one
// row.

type DecimalValueRepository struct {
	db *gorm.DB
}

func NewDecimalValueRepository(db *gorm.DB) *DecimalValueRepository {
	return &DecimalValueRepository{db: db}
}

func (r *DecimalValueRepository) GetOrCreate(ctx context.Context, value string) (uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.DecimalValueModel{Value: value}
	err := tx.Create(&model).Error
	if err == nil {
		return model.ID, nil
	}
	if !errors.IsDuplicateError(err) {
		return 0, fmt.Errorf("failed to save decimal value: %w", err)
	}

	var existing models.DecimalValueModel
	if err := tx.Where("value = ?", value).First(&existing).Error; err != nil {
		return 0, fmt.Errorf("failed to find decimal value: %w", err)
	}
	return existing.ID, nil
}

func (r *DecimalValueRepository) GetByID(ctx context.Context, id uint) (string, error) {
	var model models.DecimalValueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.NewNotFoundError(fmt.Sprintf("decimal value %d not found", id))
		}
		return "", fmt.Errorf("failed to find decimal value: %w", err)
	}
	return model.Value, nil
}

type StringValueRepository struct {
	db *gorm.DB
}

func NewStringValueRepository(db *gorm.DB) *StringValueRepository {
	return &StringValueRepository{db: db}
}

func (r *StringValueRepository) GetOrCreate(ctx context.Context, value string) (uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.StringValueModel{Value: value}
	err := tx.Create(&model).Error
	if err == nil {
		return model.ID, nil
	}
	if !errors.IsDuplicateError(err) {
		return 0, fmt.Errorf("failed to save string value: %w", err)
	}

	var existing models.StringValueModel
	if err := tx.Where("value = ?", value).First(&existing).Error; err != nil {
		return 0, fmt.Errorf("failed to find string value: %w", err)
	}
	return existing.ID, nil
}

func (r *StringValueRepository) GetByID(ctx context.Context, id uint) (string, error) {
	var model models.StringValueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.NewNotFoundError(fmt.Sprintf("string value %d not found", id))
		}
		return "", fmt.Errorf("failed to find string value: %w", err)
	}
	return model.Value, nil
}

type TextValueRepository struct {
	db *gorm.DB
}

func NewTextValueRepository(db *gorm.DB) *TextValueRepository {
	return &TextValueRepository{db: db}
}

// Text content is too long for a unique index, so uniqueness is enforced on
// an MD5 of the content instead.
func textHash(value string) string {
	sum := md5.Sum([]byte(value))
	return hex.EncodeToString(sum[:])
}

func (r *TextValueRepository) GetOrCreate(ctx context.Context, value string) (uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.TextValueModel{Value: value, Hash: textHash(value)}
	err := tx.Create(&model).Error
	if err == nil {
		return model.ID, nil
	}
	if !errors.IsDuplicateError(err) {
		return 0, fmt.Errorf("failed to save text value: %w", err)
	}

	var existing models.TextValueModel
	if err := tx.Where("hash = ?", model.Hash).First(&existing).Error; err != nil {
		return 0, fmt.Errorf("failed to find text value: %w", err)
	}
	return existing.ID, nil
}

func (r *TextValueRepository) GetByID(ctx context.Context, id uint) (string, error) {
	var model models.TextValueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.NewNotFoundError(fmt.Sprintf("text value %d not found", id))
		}
		return "", fmt.Errorf("failed to find text value: %w", err)
	}
	return model.Value, nil
}

type ListItemRepository struct {
	db *gorm.DB
}

func NewListItemRepository(db *gorm.DB) *ListItemRepository {
	return &ListItemRepository{db: db}
}

func (r *ListItemRepository) Save(ctx context.Context, item *dictionary.ListItem) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.ListItemModel{
		ID:      item.ID,
		FieldID: item.FieldID,
		Value:   item.Value,
		Text:    item.Text,
	}
	if err := tx.Create(&model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("list item with value %d already exists", item.Value))
		}
		return fmt.Errorf("failed to save list item: %w", err)
	}

	item.ID = model.ID
	return nil
}

func (r *ListItemRepository) GetByID(ctx context.Context, id uint) (*dictionary.ListItem, error) {
	var model models.ListItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("list item %d not found", id))
		}
		return nil, fmt.Errorf("failed to find list item: %w", err)
	}

	return listItemToDomain(&model), nil
}

func (r *ListItemRepository) FindByValue(ctx context.Context, fieldID uint, value int) (*dictionary.ListItem, error) {
	var model models.ListItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("field_id = ? AND value = ?", fieldID, value).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find list item: %w", err)
	}

	return listItemToDomain(&model), nil
}

func (r *ListItemRepository) ListByField(ctx context.Context, fieldID uint) ([]dictionary.ListItem, error) {
	var rows []models.ListItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("field_id = ?", fieldID).Order("value").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]dictionary.ListItem, 0, len(rows))
	for i := range rows {
		items = append(items, *listItemToDomain(&rows[i]))
	}
	return items, nil
}

func (r *ListItemRepository) DeleteByField(ctx context.Context, fieldID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("field_id = ?", fieldID).Delete(&models.ListItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete list items: %w", err)
	}
	return nil
}

func listItemToDomain(model *models.ListItemModel) *dictionary.ListItem {
	return &dictionary.ListItem{
		ID:      model.ID,
		FieldID: model.FieldID,
		Value:   model.Value,
		Text:    model.Text,
	}
}
