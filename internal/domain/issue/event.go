package issue

import (
	"fmt"
	"time"
)

// EventType classifies an entry of an issue's event log.
type EventType string

const (
	EventIssueCreated  EventType = "issue_created"
	EventIssueEdited   EventType = "issue_edited"
	EventStateChanged  EventType = "state_changed"
	EventIssueAssigned EventType = "issue_assigned"
	EventIssueClosed   EventType = "issue_closed"
	EventIssueReopened EventType = "issue_reopened"
)

// IsValid reports whether the type is a known event type.
func (t EventType) IsValid() bool {
	switch t {
	case EventIssueCreated, EventIssueEdited, EventStateChanged,
		EventIssueAssigned, EventIssueClosed, EventIssueReopened:
		return true
	}
	return false
}

// Event is one entry of an issue's audit log. Every command that mutates an
// issue records exactly one event; field changes hang off it.
type Event struct {
	id        uint
	issueID   uint
	userID    uint
	typ       EventType
	createdAt time.Time
}

// NewEvent records an action performed on an issue by a user.
func NewEvent(issueID, userID uint, typ EventType) (*Event, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("event issue ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("event user ID is required")
	}
	if !typ.IsValid() {
		return nil, fmt.Errorf("invalid event type %q", typ)
	}
	return &Event{
		issueID:   issueID,
		userID:    userID,
		typ:       typ,
		createdAt: time.Now(),
	}, nil
}

// ReconstructEvent restores an event from persistence.
func ReconstructEvent(id, issueID, userID uint, typ EventType, createdAt time.Time) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	e, err := NewEvent(issueID, userID, typ)
	if err != nil {
		return nil, err
	}
	e.id = id
	e.createdAt = createdAt
	return e, nil
}

func (e *Event) ID() uint {
	return e.id
}

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Event) IssueID() uint {
	return e.issueID
}

func (e *Event) UserID() uint {
	return e.userID
}

func (e *Event) Type() EventType {
	return e.typ
}

func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}
