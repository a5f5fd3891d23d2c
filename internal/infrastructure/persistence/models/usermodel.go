package models

type UserModel struct {
	ID       uint   `gorm:"primaryKey"`
	Fullname string `gorm:"size:64;not null"`
	Timezone string `gorm:"size:64;not null;default:UTC"`
	IsAdmin  bool   `gorm:"not null;default:false"`
}

func (UserModel) TableName() string {
	return "users"
}

type GroupModel struct {
	ID          uint   `gorm:"primaryKey"`
	ProjectID   *uint  `gorm:"index"`
	Name        string `gorm:"size:25;not null"`
	Description string `gorm:"size:100"`
}

func (GroupModel) TableName() string {
	return "groups"
}

type MembershipModel struct {
	ID      uint `gorm:"primaryKey"`
	GroupID uint `gorm:"not null;uniqueIndex:idx_memberships_group_user"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_memberships_group_user;index"`
}

func (MembershipModel) TableName() string {
	return "memberships"
}
