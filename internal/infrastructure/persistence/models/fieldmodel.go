package models

type FieldModel struct {
	ID          uint   `gorm:"primaryKey"`
	StateID     uint   `gorm:"not null;index"`
	Name        string `gorm:"size:50;not null"`
	Description string `gorm:"size:1000"`
	Type        string `gorm:"size:20;not null"`
	Position    int    `gorm:"not null"`
	IsRequired  bool   `gorm:"not null;default:false"`
	IsRemoved   bool   `gorm:"not null;default:false;index"`
	Parameters  string `gorm:"type:json;not null"`

	// Positions of a state's active fields are dense and 0-based; they are
	// shifted in bulk, so the column carries no unique index.
}

func (FieldModel) TableName() string {
	return "fields"
}

type FieldRolePermissionModel struct {
	ID      uint   `gorm:"primaryKey"`
	FieldID uint   `gorm:"not null;uniqueIndex:idx_field_role_permissions"`
	Role    string `gorm:"size:20;not null;uniqueIndex:idx_field_role_permissions"`
	Access  int    `gorm:"not null"`
}

func (FieldRolePermissionModel) TableName() string {
	return "field_role_permissions"
}

type FieldGroupPermissionModel struct {
	ID      uint `gorm:"primaryKey"`
	FieldID uint `gorm:"not null;uniqueIndex:idx_field_group_permissions"`
	GroupID uint `gorm:"not null;uniqueIndex:idx_field_group_permissions;index"`
	Access  int  `gorm:"not null"`
}

func (FieldGroupPermissionModel) TableName() string {
	return "field_group_permissions"
}
