package usecases

import (
	"context"
	"fmt"

	"etraxis/internal/domain/security"
	"etraxis/internal/domain/state"
	"etraxis/internal/domain/template"
	"etraxis/internal/shared/errors"
	"etraxis/internal/shared/logger"
	"etraxis/internal/shared/utils"
)

type CreateStateCommand struct {
	TemplateID  uint                 `json:"template_id" validate:"required"`
	Name        string               `json:"name" validate:"required,max=50"`
	Type        state.StateType      `json:"type" validate:"required"`
	Responsible state.Responsibility `json:"responsible" validate:"required"`
	NextStateID *uint                `json:"next_state_id"`
	UserID      uint                 `json:"user_id" validate:"required"`
}

type CreateStateResult struct {
	StateID uint
}

type CreateStateUseCase struct {
	states    state.Repository
	templates template.Repository
	users     security.UserRepository
	gate      Gate
	tx        TransactionManager
	logger    logger.Interface
}

func NewCreateStateUseCase(
	states state.Repository,
	templates template.Repository,
	users security.UserRepository,
	gate Gate,
	tx TransactionManager,
	logger logger.Interface,
) *CreateStateUseCase {
	return &CreateStateUseCase{
		states:    states,
		templates: templates,
		users:     users,
		gate:      gate,
		tx:        tx,
		logger:    logger,
	}
}

func (uc *CreateStateUseCase) Execute(ctx context.Context, cmd CreateStateCommand) (*CreateStateResult, error) {
	uc.logger.Infow("executing create state use case", "template_id", cmd.TemplateID, "name", cmd.Name, "type", cmd.Type)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	tmpl, err := uc.templates.GetByID(ctx, cmd.TemplateID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("template %d not found", cmd.TemplateID))
	}

	allowed, err := uc.gate.CanManage(user, tmpl)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError("workflow management requires a locked template and administrator rights")
	}

	siblings, err := uc.states.ListByTemplate(ctx, cmd.TemplateID)
	if err != nil {
		return nil, errors.NewInternalError("failed to list template states")
	}
	for _, sibling := range siblings {
		if sibling.Name() == cmd.Name {
			return nil, errors.NewConflictError(fmt.Sprintf("state %q already exists in this template", cmd.Name))
		}
	}

	// The "state after issue creation" hint must point inside the template.
	if cmd.NextStateID != nil {
		next, err := uc.states.GetByID(ctx, *cmd.NextStateID)
		if err != nil || next.TemplateID() != cmd.TemplateID {
			return nil, errors.NewNotFoundError(fmt.Sprintf("next state %d not found in template %d", *cmd.NextStateID, cmd.TemplateID))
		}
	}

	st, err := state.NewState(cmd.TemplateID, cmd.Name, cmd.Type, cmd.Responsible, cmd.NextStateID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.states.Save(ctx, st); err != nil {
			return err
		}
		// Creating an initial state demotes whichever state held that
		// type before; a template has at most one initial state.
		if st.IsInitial() {
			return uc.states.SetInitial(ctx, cmd.TemplateID, st.ID())
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to save state", "name", cmd.Name, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to save state")
	}

	uc.logger.Infow("state created", "state_id", st.ID())

	return &CreateStateResult{StateID: st.ID()}, nil
}
