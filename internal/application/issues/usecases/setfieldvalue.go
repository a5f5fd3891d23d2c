package usecases

import (
	"context"
	"fmt"

	"etraxis/internal/domain/field"
	"etraxis/internal/domain/issue"
	"etraxis/internal/domain/security"
	"etraxis/internal/shared/errors"
	"etraxis/internal/shared/i18n"
	"etraxis/internal/shared/logger"
	"etraxis/internal/shared/utils"
)

type SetFieldValueCommand struct {
	IssueID uint `json:"issue_id" validate:"required"`
	FieldID uint `json:"field_id" validate:"required"`
	Value   any  `json:"value"`
	UserID  uint `json:"user_id" validate:"required"`
}

type SetFieldValueResult struct {
	IssueID uint
	FieldID uint
}

// SetFieldValueUseCase writes one field value on an issue. The user needs
// read-write access to the field; the value is converted to storage form and
// a change record is kept only when the stored value actually differs.
type SetFieldValueUseCase struct {
	issues  issue.Repository
	events  issue.EventRepository
	fields  field.Repository
	users   security.UserRepository
	access  AccessResolver
	tracker *issue.Tracker
	tx      TransactionManager
	logger  logger.Interface
}

func NewSetFieldValueUseCase(
	issues issue.Repository,
	events issue.EventRepository,
	fields field.Repository,
	users security.UserRepository,
	access AccessResolver,
	tracker *issue.Tracker,
	tx TransactionManager,
	logger logger.Interface,
) *SetFieldValueUseCase {
	return &SetFieldValueUseCase{
		issues:  issues,
		events:  events,
		fields:  fields,
		users:   users,
		access:  access,
		tracker: tracker,
		tx:      tx,
		logger:  logger,
	}
}

func (uc *SetFieldValueUseCase) Execute(ctx context.Context, cmd SetFieldValueCommand) (*SetFieldValueResult, error) {
	uc.logger.Infow("executing set field value use case", "issue_id", cmd.IssueID, "field_id", cmd.FieldID)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	iss, err := uc.issues.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("issue %d not found", cmd.IssueID))
	}

	f, err := uc.fields.GetByID(ctx, cmd.FieldID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("field %d not found", cmd.FieldID))
	}
	if f.IsRemoved() {
		return nil, errors.NewNotFoundError(fmt.Sprintf("field %d not found", cmd.FieldID))
	}

	level, err := uc.access.FieldAccess(ctx, user, iss, f)
	if err != nil {
		return nil, err
	}
	if level != security.AccessReadWrite {
		return nil, errors.NewForbiddenError(fmt.Sprintf("no write access to the %q field", f.Name()))
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		event, err := issue.NewEvent(iss.ID(), user.ID(), issue.EventIssueEdited)
		if err != nil {
			return err
		}
		if err := uc.events.Save(ctx, event); err != nil {
			return err
		}
		applied, err := uc.tracker.SetFieldValue(ctx, iss, event, f, cmd.Value, user.Location())
		if err != nil {
			return err
		}
		if !applied {
			// Rejected value: roll everything back, including the event.
			return errors.NewValidationError(i18n.Trans(i18n.KeyFieldValueRejected, i18n.Params{"name": f.Name()}))
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to set field value", "issue_id", cmd.IssueID, "field_id", cmd.FieldID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to set field value")
	}

	uc.logger.Infow("field value set", "issue_id", iss.ID(), "field_id", f.ID())

	return &SetFieldValueResult{IssueID: iss.ID(), FieldID: f.ID()}, nil
}
