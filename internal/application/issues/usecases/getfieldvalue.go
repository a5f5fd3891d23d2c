package usecases

import (
	"context"
	"fmt"

	"etraxis/internal/domain/field"
	"etraxis/internal/domain/issue"
	"etraxis/internal/domain/security"
	"etraxis/internal/shared/errors"
	"etraxis/internal/shared/logger"
	"etraxis/internal/shared/utils"
)

type GetFieldValueCommand struct {
	IssueID uint `json:"issue_id" validate:"required"`
	FieldID uint `json:"field_id" validate:"required"`
	UserID  uint `json:"user_id" validate:"required"`
}

type GetFieldValueResult struct {
	IssueID uint
	FieldID uint
	Value   any
}

// GetFieldValueUseCase reads one field value of an issue back in human form.
// Dates are rendered in the reading user's timezone, so two users may see
// different calendar days for the same stored instant.
type GetFieldValueUseCase struct {
	issues  issue.Repository
	values  issue.FieldValueRepository
	fields  field.Repository
	users   security.UserRepository
	access  AccessResolver
	tracker *issue.Tracker
	logger  logger.Interface
}

func NewGetFieldValueUseCase(
	issues issue.Repository,
	values issue.FieldValueRepository,
	fields field.Repository,
	users security.UserRepository,
	access AccessResolver,
	tracker *issue.Tracker,
	logger logger.Interface,
) *GetFieldValueUseCase {
	return &GetFieldValueUseCase{
		issues:  issues,
		values:  values,
		fields:  fields,
		users:   users,
		access:  access,
		tracker: tracker,
		logger:  logger,
	}
}

func (uc *GetFieldValueUseCase) Execute(ctx context.Context, cmd GetFieldValueCommand) (*GetFieldValueResult, error) {
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

	level, err := uc.access.FieldAccess(ctx, user, iss, f)
	if err != nil {
		return nil, err
	}
	if level == security.AccessNone {
		return nil, errors.NewForbiddenError(fmt.Sprintf("no access to the %q field", f.Name()))
	}

	value, err := uc.values.FindByIssueAndField(ctx, iss.ID(), f.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load field value")
	}
	if value == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("issue %d has no value for field %d", iss.ID(), f.ID()))
	}

	human, err := uc.tracker.GetFieldValue(ctx, value, f, user)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to decode field value")
	}

	return &GetFieldValueResult{
		IssueID: iss.ID(),
		FieldID: f.ID(),
		Value:   human,
	}, nil
}
