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

type CreateFieldCommand struct {
	StateID     uint       `json:"state_id" validate:"required"`
	Name        string     `json:"name" validate:"required,max=50"`
	Description string     `json:"description"`
	Type        field.Type `json:"type" validate:"required"`
	Required    bool       `json:"required"`
	Parameters  field.Parameters
	UserID      uint `json:"user_id" validate:"required"`
}

type CreateFieldResult struct {
	FieldID  uint
	Position int
}

type CreateFieldUseCase struct {
	fields    field.Repository
	states    state.Repository
	templates template.Repository
	users     security.UserRepository
	items     dictionary.ListItems
	gate      Gate
	tx        TransactionManager
	logger    logger.Interface
}

func NewCreateFieldUseCase(
	fields field.Repository,
	states state.Repository,
	templates template.Repository,
	users security.UserRepository,
	items dictionary.ListItems,
	gate Gate,
	tx TransactionManager,
	logger logger.Interface,
) *CreateFieldUseCase {
	return &CreateFieldUseCase{
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

func (uc *CreateFieldUseCase) Execute(ctx context.Context, cmd CreateFieldCommand) (*CreateFieldResult, error) {
	uc.logger.Infow("executing create field use case", "state_id", cmd.StateID, "name", cmd.Name, "type", cmd.Type)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}
	if !cmd.Type.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown field type %q", cmd.Type))
	}

	user, err := uc.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	st, err := uc.states.GetByID(ctx, cmd.StateID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("state %d not found", cmd.StateID))
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

	if existing, _ := uc.fields.FindByName(ctx, cmd.StateID, cmd.Name); existing != nil {
		return nil, errors.NewConflictError(fmt.Sprintf("field %q already exists in this state", cmd.Name))
	}

	// List defaults can only reference items of an existing field, so a
	// brand-new list field must start without one.
	if p, ok := cmd.Parameters.(field.ListParameters); ok && p.DefaultItemID != nil {
		return nil, errors.NewValidationError("a new list field cannot have a default item")
	}

	position, err := uc.fields.CountByState(ctx, cmd.StateID)
	if err != nil {
		return nil, errors.NewInternalError("failed to count state fields")
	}

	f, err := field.NewField(cmd.StateID, cmd.Name, cmd.Description, cmd.Type, position, cmd.Required, cmd.Parameters)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		return uc.fields.Save(ctx, f)
	})
	if err != nil {
		uc.logger.Errorw("failed to save field", "name", cmd.Name, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to save field")
	}

	uc.logger.Infow("field created", "field_id", f.ID(), "position", f.Position())

	return &CreateFieldResult{
		FieldID:  f.ID(),
		Position: f.Position(),
	}, nil
}
