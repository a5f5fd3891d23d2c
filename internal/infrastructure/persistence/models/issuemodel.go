package models

type IssueModel struct {
	ID            uint   `gorm:"primaryKey"`
	Subject       string `gorm:"size:250;not null"`
	StateID       uint   `gorm:"not null;index"`
	AuthorID      uint   `gorm:"not null;index"`
	ResponsibleID *uint  `gorm:"index"`
	Version       int    `gorm:"not null;default:1"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	ChangedAt     int64  `gorm:"not null"`
	ClosedAt      *int64
}

func (IssueModel) TableName() string {
	return "issues"
}

type EventModel struct {
	ID        uint   `gorm:"primaryKey"`
	IssueID   uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Type      string `gorm:"size:20;not null"`
	CreatedAt int64  `gorm:"not null;index"`
}

func (EventModel) TableName() string {
	return "events"
}

type FieldValueModel struct {
	ID      uint `gorm:"primaryKey"`
	IssueID uint `gorm:"not null;uniqueIndex:idx_field_values_issue_field"`
	FieldID uint `gorm:"not null;uniqueIndex:idx_field_values_issue_field;index"`
	Value   *int64
}

func (FieldValueModel) TableName() string {
	return "field_values"
}

type ChangeModel struct {
	ID       uint  `gorm:"primaryKey"`
	EventID  uint  `gorm:"not null;index"`
	FieldID  *uint `gorm:"index"`
	OldValue *int64
	NewValue *int64
}

func (ChangeModel) TableName() string {
	return "changes"
}
