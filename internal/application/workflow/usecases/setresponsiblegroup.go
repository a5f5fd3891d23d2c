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

type SetResponsibleGroupCommand struct {
	StateID uint `json:"state_id" validate:"required"`
	GroupID uint `json:"group_id" validate:"required"`
	UserID  uint `json:"user_id" validate:"required"`
}

type SetResponsibleGroupResult struct {
	StateID uint
	GroupID uint
}

// SetResponsibleGroupUseCase marks a group as a source of responsible
// candidates for an assigning state.
type SetResponsibleGroupUseCase struct {
	states    state.Repository
	templates template.Repository
	users     security.UserRepository
	groups    security.GroupRepository
	gate      Gate
	tx        TransactionManager
	logger    logger.Interface
}

func NewSetResponsibleGroupUseCase(
	states state.Repository,
	templates template.Repository,
	users security.UserRepository,
	groups security.GroupRepository,
	gate Gate,
	tx TransactionManager,
	logger logger.Interface,
) *SetResponsibleGroupUseCase {
	return &SetResponsibleGroupUseCase{
		states:    states,
		templates: templates,
		users:     users,
		groups:    groups,
		gate:      gate,
		tx:        tx,
		logger:    logger,
	}
}

func (uc *SetResponsibleGroupUseCase) Execute(ctx context.Context, cmd SetResponsibleGroupCommand) (*SetResponsibleGroupResult, error) {
	uc.logger.Infow("executing set responsible group use case", "state_id", cmd.StateID, "group_id", cmd.GroupID)

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

	if st.Responsibility() != state.ResponsibleAssign {
		return nil, errors.NewValidationError(fmt.Sprintf("state %q does not assign a responsible", st.Name()))
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

	if _, err := uc.groups.GetByID(ctx, cmd.GroupID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("group %d not found", cmd.GroupID))
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		return uc.states.SetResponsibleGroup(ctx, state.ResponsibleGroup{
			StateID: st.ID(),
			GroupID: cmd.GroupID,
		})
	})
	if err != nil {
		uc.logger.Errorw("failed to set responsible group", "state_id", cmd.StateID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to set responsible group")
	}

	uc.logger.Infow("responsible group set", "state_id", st.ID(), "group_id", cmd.GroupID)

	return &SetResponsibleGroupResult{StateID: st.ID(), GroupID: cmd.GroupID}, nil
}
