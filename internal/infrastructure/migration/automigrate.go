package migration

import (
	"fmt"

	"gorm.io/gorm"

	"etraxis/internal/domain/security"
	"etraxis/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.GroupModel{},
		&models.MembershipModel{},
		&models.TemplateModel{},
		&models.TemplateRolePermissionModel{},
		&models.TemplateGroupPermissionModel{},
		&models.StateModel{},
		&models.StateRoleTransitionModel{},
		&models.StateGroupTransitionModel{},
		&models.StateResponsibleGroupModel{},
		&models.FieldModel{},
		&models.FieldRolePermissionModel{},
		&models.FieldGroupPermissionModel{},
		&models.IssueModel{},
		&models.EventModel{},
		&models.FieldValueModel{},
		&models.ChangeModel{},
		&models.DecimalValueModel{},
		&models.StringValueModel{},
		&models.TextValueModel{},
		&models.ListItemModel{},
	}
}

// Migrate brings the schema up to date.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// BootstrapPolicies seeds the administrative policy rules the resolver's
// management gate relies on.
func BootstrapPolicies(enforcer security.PermissionEnforcer) error {
	policies := [][3]string{
		{"admin", security.ResourceFields, security.ActionManage},
		{"admin", security.ResourcePermissions, security.ActionManage},
	}

	for _, p := range policies {
		if err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy %v: %w", p, err)
		}
	}
	return nil
}
