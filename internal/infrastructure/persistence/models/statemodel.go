package models

type StateModel struct {
	ID          uint   `gorm:"primaryKey"`
	TemplateID  uint   `gorm:"not null;index;uniqueIndex:idx_states_name"`
	Name        string `gorm:"size:50;not null;uniqueIndex:idx_states_name"`
	Type        string `gorm:"size:20;not null;index"`
	Responsible string `gorm:"size:20;not null"`
	NextStateID *uint
}

func (StateModel) TableName() string {
	return "states"
}

type StateRoleTransitionModel struct {
	ID          uint   `gorm:"primaryKey"`
	FromStateID uint   `gorm:"not null;uniqueIndex:idx_state_role_transitions"`
	ToStateID   uint   `gorm:"not null;uniqueIndex:idx_state_role_transitions"`
	Role        string `gorm:"size:20;not null;uniqueIndex:idx_state_role_transitions"`
}

func (StateRoleTransitionModel) TableName() string {
	return "state_role_transitions"
}

type StateGroupTransitionModel struct {
	ID          uint `gorm:"primaryKey"`
	FromStateID uint `gorm:"not null;uniqueIndex:idx_state_group_transitions"`
	ToStateID   uint `gorm:"not null;uniqueIndex:idx_state_group_transitions"`
	GroupID     uint `gorm:"not null;uniqueIndex:idx_state_group_transitions;index"`
}

func (StateGroupTransitionModel) TableName() string {
	return "state_group_transitions"
}

type StateResponsibleGroupModel struct {
	ID      uint `gorm:"primaryKey"`
	StateID uint `gorm:"not null;uniqueIndex:idx_state_responsible_groups"`
	GroupID uint `gorm:"not null;uniqueIndex:idx_state_responsible_groups;index"`
}

func (StateResponsibleGroupModel) TableName() string {
	return "state_responsible_groups"
}
