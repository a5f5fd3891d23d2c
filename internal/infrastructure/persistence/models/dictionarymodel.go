package models

// The three value pools deduplicate content: identical values share one row,
// enforced by the unique index the insert-then-find creation relies on.

type DecimalValueModel struct {
	ID    uint   `gorm:"primaryKey"`
	Value string `gorm:"size:20;not null;uniqueIndex"`
}

func (DecimalValueModel) TableName() string {
	return "decimal_values"
}

type StringValueModel struct {
	ID    uint   `gorm:"primaryKey"`
	Value string `gorm:"size:250;not null;uniqueIndex"`
}

func (StringValueModel) TableName() string {
	return "string_values"
}

type TextValueModel struct {
	ID    uint   `gorm:"primaryKey"`
	Value string `gorm:"type:text;not null"`
	Hash  string `gorm:"size:32;not null;uniqueIndex"`
}

func (TextValueModel) TableName() string {
	return "text_values"
}

type ListItemModel struct {
	ID      uint   `gorm:"primaryKey"`
	FieldID uint   `gorm:"not null;uniqueIndex:idx_list_items_field_value"`
	Value   int    `gorm:"not null;uniqueIndex:idx_list_items_field_value"`
	Text    string `gorm:"size:50;not null"`
}

func (ListItemModel) TableName() string {
	return "list_items"
}
