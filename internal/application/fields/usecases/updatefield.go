package usecases

import (
	"context"
	"fmt"

	"etraxis/internal/domain/dictionary"
	"etraxis/internal/domain/field"
	"etraxis/internal/domain/security"
	"etraxis/internal/domain/state"
	"etraxis/internal/domain/template"
	"etraxis/internal/shared/errors"
	"etraxis/internal/shared/logger"
	"etraxis/internal/shared/utils"
)

type UpdateFieldCommand struct {
	FieldID     uint   `json:"field_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Parameters  field.Parameters
	UserID      uint `json:"user_id" validate:"required"`
}

type UpdateFieldResult struct {
	FieldID uint
}

type UpdateFieldUseCase struct {
	fields    field.Repository
	states    state.Repository
	templates template.Repository
	users     security.UserRepository
	items     dictionary.ListItems
	gate      Gate
	tx        TransactionManager
	logger    logger.Interface
}

func NewUpdateFieldUseCase(
	fields field.Repository,
	states state.Repository,
	templates template.Repository,
	users security.UserRepository,
	items dictionary.ListItems,
	gate Gate,
	tx TransactionManager,
	logger logger.Interface,
) *UpdateFieldUseCase {
	return &UpdateFieldUseCase{
		fields:    fields,
		states:    states,
		templates: templates,
		users:     users,
		items:     items,
		gate:      gate,
		tx:        tx,
		logger:    logger,
	}
}

func (uc *UpdateFieldUseCase) Execute(ctx context.Context, cmd UpdateFieldCommand) (*UpdateFieldResult, error) {
	uc.logger.Infow("executing update field use case", "field_id", cmd.FieldID)

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

	if cmd.Name != f.Name() {
		if existing, _ := uc.fields.FindByName(ctx, f.StateID(), cmd.Name); existing != nil {
			return nil, errors.NewConflictError(fmt.Sprintf("field %q already exists in this state", cmd.Name))
		}
	}

	// A list default must identify an existing item of this very field.
	if p, ok := cmd.Parameters.(field.ListParameters); ok && p.DefaultItemID != nil {
		item, err := uc.items.GetByID(ctx, *p.DefaultItemID)
		if err != nil || item == nil || item.FieldID != f.ID() {
			return nil, errors.NewNotFoundError(fmt.Sprintf("list item %d not found for field %d", *p.DefaultItemID, f.ID()))
		}
	}

	if err := f.UpdateDetails(cmd.Name, cmd.Description, cmd.Required, cmd.Parameters); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		return uc.fields.Update(ctx, f)
	})
	if err != nil {
		uc.logger.Errorw("failed to update field", "field_id", cmd.FieldID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update field")
	}

	uc.logger.Infow("field updated", "field_id", f.ID())

	return &UpdateFieldResult{FieldID: f.ID()}, nil
}
