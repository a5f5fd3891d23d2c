package usecases

import (
	"context"
	"fmt"

	"etraxis/internal/domain/field"
	"etraxis/internal/domain/security"
	"etraxis/internal/domain/state"
	"etraxis/internal/domain/template"
	"etraxis/internal/shared/errors"
	"etraxis/internal/shared/logger"
	"etraxis/internal/shared/utils"
)

type RemoveFieldCommand struct {
	FieldID uint `json:"field_id" validate:"required"`
	UserID  uint `json:"user_id" validate:"required"`
}

type RemoveFieldResult struct {
	FieldID uint
}

// RemoveFieldUseCase soft-removes a field: new issues no longer include it,
// while existing values and history stay intact. The positions of the
// remaining active fields are compacted so they keep forming a dense range.
type RemoveFieldUseCase struct {
	fields    field.Repository
	states    state.Repository
	templates template.Repository
	users     security.UserRepository
	gate      Gate
	tx        TransactionManager
	logger    logger.Interface
}

func NewRemoveFieldUseCase(
	fields field.Repository,
	states state.Repository,
	templates template.Repository,
	users security.UserRepository,
	gate Gate,
	tx TransactionManager,
	logger logger.Interface,
) *RemoveFieldUseCase {
	return &RemoveFieldUseCase{
		fields:    fields,
		states:    states,
		templates: templates,
		users:     users,
		gate:      gate,
		tx:        tx,
		logger:    logger,
	}
}

func (uc *RemoveFieldUseCase) Execute(ctx context.Context, cmd RemoveFieldCommand) (*RemoveFieldResult, error) {
	uc.logger.Infow("executing remove field use case", "field_id", cmd.FieldID)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	f, err := uc.fields.GetByID(ctx, cmd.FieldID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("field %d not found", cmd.FieldID))
	}

	st, err := uc.states.GetByID(ctx, f.StateID())
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("state %d not found", f.StateID()))
	}

	tmpl, err := uc.templates.GetByID(ctx, st.TemplateID())
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("template %d not found", st.TemplateID()))
	}

	allowed, err := uc.gate.CanManage(user, tmpl)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError("field management requires a locked template and administrator rights")
	}

	if f.IsRemoved() {
		return &RemoveFieldResult{FieldID: f.ID()}, nil
	}

	count, err := uc.fields.CountByState(ctx, f.StateID())
	if err != nil {
		return nil, errors.NewInternalError("failed to count state fields")
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		f.Remove()
		if err := uc.fields.Update(ctx, f); err != nil {
			return err
		}
		// Close the gap so active positions stay a dense 0-based range.
		if f.Position() < count-1 {
			return uc.fields.ShiftPositions(ctx, f.StateID(), f.Position()+1, count-1, -1)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to remove field", "field_id", cmd.FieldID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to remove field")
	}

	uc.logger.Infow("field removed", "field_id", f.ID())

	return &RemoveFieldResult{FieldID: f.ID()}, nil
}
