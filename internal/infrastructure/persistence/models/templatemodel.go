package models

type TemplateModel struct {
	ID          uint   `gorm:"primaryKey"`
	ProjectID   uint   `gorm:"not null;index;uniqueIndex:idx_templates_name;uniqueIndex:idx_templates_prefix"`
	Name        string `gorm:"size:50;not null;uniqueIndex:idx_templates_name"`
	Prefix      string `gorm:"size:5;not null;uniqueIndex:idx_templates_prefix"`
	Description string `gorm:"size:100"`
	CriticalAge *int
	FrozenTime  *int
	IsLocked    bool `gorm:"not null;default:true"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TemplateModel) TableName() string {
	return "templates"
}

type TemplateRolePermissionModel struct {
	ID         uint   `gorm:"primaryKey"`
	TemplateID uint   `gorm:"not null;uniqueIndex:idx_template_role_perms"`
	Role       string `gorm:"size:20;not null;uniqueIndex:idx_template_role_perms"`
	Permission string `gorm:"size:30;not null;uniqueIndex:idx_template_role_perms"`
}

func (TemplateRolePermissionModel) TableName() string {
	return "template_role_permissions"
}

type TemplateGroupPermissionModel struct {
	ID         uint   `gorm:"primaryKey"`
	TemplateID uint   `gorm:"not null;uniqueIndex:idx_template_group_perms"`
	GroupID    uint   `gorm:"not null;uniqueIndex:idx_template_group_perms;index"`
	Permission string `gorm:"size:30;not null;uniqueIndex:idx_template_group_perms"`
}

func (TemplateGroupPermissionModel) TableName() string {
	return "template_group_permissions"
}
