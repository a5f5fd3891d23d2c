package security

// PermissionEnforcer is the policy engine behind the global administrative
// gate. Per-template and per-field grants are data rows resolved by the
// permission resolver; this interface only answers whether a user may perform
// administrative actions such as managing field definitions.
type PermissionEnforcer interface {
	Enforce(userID string, resource string, action string) (bool, error)
	AddPolicy(role string, resource string, action string) error
	AddRoleForUser(userID string, role string) error
	LoadPolicy() error
}

// Administrative resources and actions known to the enforcer.
const (
	ResourceFields      = "fields"
	ResourcePermissions = "permissions"

	ActionManage = "manage"
)
