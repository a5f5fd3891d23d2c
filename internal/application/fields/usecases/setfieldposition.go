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

type SetFieldPositionCommand struct {
	FieldID  uint `json:"field_id" validate:"required"`
	Position int  `json:"position" validate:"min=0"`
	UserID   uint `json:"user_id" validate:"required"`
}

type SetFieldPositionResult struct {
	FieldID     uint
	OldPosition int
	NewPosition int
}

type SetFieldPositionUseCase struct {
	fields    field.Repository
	states    state.Repository
	templates template.Repository
	users     security.UserRepository
	gate      Gate
	tx        TransactionManager
	logger    logger.Interface
}

func NewSetFieldPositionUseCase(
	fields field.Repository,
	states state.Repository,
	templates template.Repository,
	users security.UserRepository,
	gate Gate,
	tx TransactionManager,
	logger logger.Interface,
) *SetFieldPositionUseCase {
	return &SetFieldPositionUseCase{
		fields:    fields,
		states:    states,
		templates: templates,
		users:     users,
		gate:      gate,
		tx:        tx,
		logger:    logger,
	}
}

// Execute moves a field to a new ordinal among its state's active fields.
// The fields between the old and new slots shift by exactly one in the
// direction of the move, and the moved field is written last, so positions
// stay a dense permutation with no transient duplicate.
func (uc *SetFieldPositionUseCase) Execute(ctx context.Context, cmd SetFieldPositionCommand) (*SetFieldPositionResult, error) {
	uc.logger.Infow("executing set field position use case", "field_id", cmd.FieldID, "position", cmd.Position)

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
	// A soft-removed field sits outside the dense ordering of its active
	// siblings; shifting them around its stale position would corrupt it.
	if f.IsRemoved() {
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

	count, err := uc.fields.CountByState(ctx, f.StateID())
	if err != nil {
		return nil, errors.NewInternalError("failed to count state fields")
	}

	// Requested positions beyond the list are clamped to its end.
	newPos := cmd.Position
	if newPos > count-1 {
		newPos = count - 1
	}
	oldPos := f.Position()

	result := &SetFieldPositionResult{
		FieldID:     f.ID(),
		OldPosition: oldPos,
		NewPosition: newPos,
	}

	if newPos == oldPos {
		return result, nil
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if newPos < oldPos {
			// Moving up: everything in [new, old) steps down one slot.
			if err := uc.fields.ShiftPositions(ctx, f.StateID(), newPos, oldPos-1, 1); err != nil {
				return err
			}
		} else {
			// Moving down: everything in (old, new] steps up one slot.
			if err := uc.fields.ShiftPositions(ctx, f.StateID(), oldPos+1, newPos, -1); err != nil {
				return err
			}
		}
		if err := f.SetPosition(newPos); err != nil {
			return err
		}
		return uc.fields.Update(ctx, f)
	})
	if err != nil {
		uc.logger.Errorw("failed to move field", "field_id", cmd.FieldID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to move field")
	}

	uc.logger.Infow("field moved", "field_id", f.ID(), "old_position", oldPos, "new_position", newPos)

	return result, nil
}
