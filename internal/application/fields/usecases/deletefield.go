package usecases

import (
	"context"
	"fmt"

	"etraxis/internal/domain/dictionary"
	"etraxis/internal/domain/field"
	"etraxis/internal/domain/issue"
	"etraxis/internal/domain/security"
	"etraxis/internal/domain/state"
	"etraxis/internal/domain/template"
	"etraxis/internal/shared/errors"
	"etraxis/internal/shared/logger"
	"etraxis/internal/shared/utils"
)

type DeleteFieldCommand struct {
	FieldID uint `json:"field_id" validate:"required"`
	UserID  uint `json:"user_id" validate:"required"`
}

type DeleteFieldResult struct {
	FieldID uint
}

// DeleteFieldUseCase purges a soft-removed field for good, together with its
// permissions and list items. A field that still backs stored issue values
// cannot be purged.
type DeleteFieldUseCase struct {
	fields    field.Repository
	states    state.Repository
	templates template.Repository
	users     security.UserRepository
	items     dictionary.ListItems
	values    issue.FieldValueRepository
	gate      Gate
	tx        TransactionManager
	logger    logger.Interface
}

func NewDeleteFieldUseCase(
	fields field.Repository,
	states state.Repository,
	templates template.Repository,
	users security.UserRepository,
	items dictionary.ListItems,
	values issue.FieldValueRepository,
	gate Gate,
	tx TransactionManager,
	logger logger.Interface,
) *DeleteFieldUseCase {
	return &DeleteFieldUseCase{
		fields:    fields,
		states:    states,
		templates: templates,
		users:     users,
		items:     items,
		values:    values,
		gate:      gate,
		tx:        tx,
		logger:    logger,
	}
}

func (uc *DeleteFieldUseCase) Execute(ctx context.Context, cmd DeleteFieldCommand) (*DeleteFieldResult, error) {
	uc.logger.Infow("executing delete field use case", "field_id", cmd.FieldID)

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

	if !f.IsRemoved() {
		return nil, errors.NewConflictError(fmt.Sprintf("field %d must be removed before it can be deleted", f.ID()))
	}

	used, err := uc.values.CountByField(ctx, f.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to count field values")
	}
	if used > 0 {
		return nil, errors.NewConflictError(fmt.Sprintf("field %d still has %d stored values", f.ID(), used))
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.fields.DeletePermissions(ctx, f.ID()); err != nil {
			return err
		}
		if f.Type() == field.TypeList {
			if err := uc.items.DeleteByField(ctx, f.ID()); err != nil {
				return err
			}
		}
		return uc.fields.Delete(ctx, f.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete field", "field_id", cmd.FieldID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to delete field")
	}

	uc.logger.Infow("field deleted", "field_id", f.ID())

	return &DeleteFieldResult{FieldID: f.ID()}, nil
}
