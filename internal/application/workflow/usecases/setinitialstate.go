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

type SetInitialStateCommand struct {
	StateID uint `json:"state_id" validate:"required"`
	UserID  uint `json:"user_id" validate:"required"`
}

type SetInitialStateResult struct {
	StateID uint
	Changed bool
}

// SetInitialStateUseCase elects a state as the template's entry point. The
// previous initial state, if any, is demoted in the same statement, so the
// template never observably has zero or two initial states. Re-electing the
// current initial state changes nothing.
type SetInitialStateUseCase struct {
	states    state.Repository
	templates template.Repository
	users     security.UserRepository
	gate      Gate
	tx        TransactionManager
	logger    logger.Interface
}

func NewSetInitialStateUseCase(
	states state.Repository,
	templates template.Repository,
	users security.UserRepository,
	gate Gate,
	tx TransactionManager,
	logger logger.Interface,
) *SetInitialStateUseCase {
	return &SetInitialStateUseCase{
		states:    states,
		templates: templates,
		users:     users,
		gate:      gate,
		tx:        tx,
		logger:    logger,
	}
}

func (uc *SetInitialStateUseCase) Execute(ctx context.Context, cmd SetInitialStateCommand) (*SetInitialStateResult, error) {
	uc.logger.Infow("executing set initial state use case", "state_id", cmd.StateID)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
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
		return nil, errors.NewForbiddenError("workflow management requires a locked template and administrator rights")
	}

	// A final state ends issues; it cannot start them.
	if st.IsFinal() {
		return nil, errors.NewValidationError(fmt.Sprintf("final state %q cannot be the initial state", st.Name()))
	}

	if st.IsInitial() {
		return &SetInitialStateResult{StateID: st.ID(), Changed: false}, nil
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		return uc.states.SetInitial(ctx, st.TemplateID(), st.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to set initial state", "state_id", cmd.StateID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to set initial state")
	}

	uc.logger.Infow("initial state set", "state_id", st.ID(), "template_id", st.TemplateID())

	return &SetInitialStateResult{StateID: st.ID(), Changed: true}, nil
}
