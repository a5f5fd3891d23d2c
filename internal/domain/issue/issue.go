// Package issue implements issues, their audit trail (events and changes),
// the per-field values materialized on each issue, and the change tracker
// that keeps values and audit records consistent.
package issue

import (
	"fmt"
	"time"

	"etraxis/internal/domain/state"
)

// Issue is one tracked item. It occupies exactly one workflow state and
// carries a version column for optimistic concurrency.
type Issue struct {
	id            uint
	subject       string
	stateID       uint
	authorID      uint
	responsibleID *uint
	version       int
	createdAt     time.Time
	changedAt     time.Time
	closedAt      *time.Time
}

// NewIssue creates an issue at the given initial state.
func NewIssue(subject string, initial *state.State, authorID uint) (*Issue, error) {
	if subject == "" {
		return nil, fmt.Errorf("issue subject is required")
	}
	if len(subject) > 250 {
		return nil, fmt.Errorf("issue subject too long (max 250 characters)")
	}
	if initial == nil || !initial.IsInitial() {
		return nil, fmt.Errorf("issue must start at an initial state")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("issue author ID is required")
	}

	now := time.Now()
	return &Issue{
		subject:   subject,
		stateID:   initial.ID(),
		authorID:  authorID,
		version:   1,
		createdAt: now,
		changedAt: now,
	}, nil
}

// ReconstructIssue restores an issue from persistence.
func ReconstructIssue(id uint, subject string, stateID, authorID uint, responsibleID *uint, version int, createdAt, changedAt time.Time, closedAt *time.Time) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if subject == "" {
		return nil, fmt.Errorf("issue subject is required")
	}
	if stateID == 0 {
		return nil, fmt.Errorf("issue state ID is required")
	}
	return &Issue{
		id:            id,
		subject:       subject,
		stateID:       stateID,
		authorID:      authorID,
		responsibleID: responsibleID,
		version:       version,
		createdAt:     createdAt,
		changedAt:     changedAt,
		closedAt:      closedAt,
	}, nil
}

func (i *Issue) ID() uint {
	return i.id
}

func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Issue) Subject() string {
	return i.subject
}

func (i *Issue) StateID() uint {
	return i.stateID
}

func (i *Issue) AuthorID() uint {
	return i.authorID
}

func (i *Issue) ResponsibleID() *uint {
	return i.responsibleID
}

func (i *Issue) Version() int {
	return i.version
}

func (i *Issue) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Issue) ChangedAt() time.Time {
	return i.changedAt
}

func (i *Issue) ClosedAt() *time.Time {
	return i.closedAt
}

func (i *Issue) IsClosed() bool {
	return i.closedAt != nil
}

// Touch records that the issue was modified.
func (i *Issue) Touch() {
	i.changedAt = time.Now()
	i.version++
}

// Rename changes the issue's subject.
func (i *Issue) Rename(subject string) error {
	if subject == "" {
		return fmt.Errorf("issue subject is required")
	}
	if len(subject) > 250 {
		return fmt.Errorf("issue subject too long (max 250 characters)")
	}
	i.subject = subject
	i.Touch()
	return nil
}

// MoveTo places the issue in a new state and applies the state's
// responsible policy and closing semantics. The caller has already verified
// the transition is legal and, for an assigning state, picked responsibleID
// from the state's candidate groups.
func (i *Issue) MoveTo(target *state.State, responsibleID *uint) error {
	if target == nil || target.ID() == 0 {
		return fmt.Errorf("target state is required")
	}

	i.stateID = target.ID()

	switch target.Responsibility() {
	case state.ResponsibleKeep:
		// untouched
	case state.ResponsibleAssign:
		if responsibleID == nil {
			return fmt.Errorf("state %q requires a responsible", target.Name())
		}
		i.responsibleID = responsibleID
	case state.ResponsibleRemove:
		i.responsibleID = nil
	}

	if target.IsFinal() {
		now := time.Now()
		i.closedAt = &now
	} else {
		i.closedAt = nil
	}

	i.Touch()
	return nil
}

// AssignTo sets the responsible user.
func (i *Issue) AssignTo(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("responsible user ID cannot be zero")
	}
	i.responsibleID = &userID
	i.Touch()
	return nil
}
