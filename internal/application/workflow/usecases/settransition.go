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

type SetTransitionCommand struct {
	FromStateID uint                 `json:"from_state_id" validate:"required"`
	ToStateID   uint                 `json:"to_state_id" validate:"required"`
	Role        *security.SystemRole `json:"role"`
	GroupID     *uint                `json:"group_id"`
	UserID      uint                 `json:"user_id" validate:"required"`
}

type SetTransitionResult struct {
	FromStateID uint
	ToStateID   uint
}

// SetTransitionUseCase declares a workflow edge: who may move issues from
// one state to another. Exactly one of Role and GroupID names the grantee.
// Both states must belong to the same template, and a final state has no
// outgoing edges.
type SetTransitionUseCase struct {
	states    state.Repository
	templates template.Repository
	users     security.UserRepository
	groups    security.GroupRepository
	gate      Gate
	tx        TransactionManager
	logger    logger.Interface
}

func NewSetTransitionUseCase(
	states state.Repository,
	templates template.Repository,
	users security.UserRepository,
	groups security.GroupRepository,
	gate Gate,
	tx TransactionManager,
	logger logger.Interface,
) *SetTransitionUseCase {
	return &SetTransitionUseCase{
		states:    states,
		templates: templates,
		users:     users,
		groups:    groups,
		gate:      gate,
		tx:        tx,
		logger:    logger,
	}
}

func (uc *SetTransitionUseCase) Execute(ctx context.Context, cmd SetTransitionCommand) (*SetTransitionResult, error) {
	uc.logger.Infow("executing set transition use case", "from_state_id", cmd.FromStateID, "to_state_id", cmd.ToStateID)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}
	if (cmd.Role == nil) == (cmd.GroupID == nil) {
		return nil, errors.NewValidationError("exactly one of role and group_id must be provided")
	}
	if cmd.Role != nil && !cmd.Role.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown system role %q", *cmd.Role))
	}

	user, err := uc.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	from, err := uc.states.GetByID(ctx, cmd.FromStateID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("state %d not found", cmd.FromStateID))
	}

	to, err := uc.states.GetByID(ctx, cmd.ToStateID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("state %d not found", cmd.ToStateID))
	}

	if from.TemplateID() != to.TemplateID() {
		return nil, errors.NewValidationError("transition states must belong to the same template")
	}
	if from.IsFinal() {
		return nil, errors.NewValidationError(fmt.Sprintf("final state %q cannot have outgoing transitions", from.Name()))
	}

	tmpl, err := uc.templates.GetByID(ctx, from.TemplateID())
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("template %d not found", from.TemplateID()))
	}

	allowed, err := uc.gate.CanManage(user, tmpl)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError("workflow management requires a locked template and administrator rights")
	}

	if cmd.GroupID != nil {
		if _, err := uc.groups.GetByID(ctx, *cmd.GroupID); err != nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("group %d not found", *cmd.GroupID))
		}
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if cmd.Role != nil {
			return uc.states.SetRoleTransition(ctx, state.RoleTransition{
				FromStateID: from.ID(),
				ToStateID:   to.ID(),
				Role:        *cmd.Role,
			})
		}
		return uc.states.SetGroupTransition(ctx, state.GroupTransition{
			FromStateID: from.ID(),
			ToStateID:   to.ID(),
			GroupID:     *cmd.GroupID,
		})
	})
	if err != nil {
		uc.logger.Errorw("failed to set transition", "from_state_id", cmd.FromStateID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to set transition")
	}

	uc.logger.Infow("transition set", "from_state_id", from.ID(), "to_state_id", to.ID())

	return &SetTransitionResult{FromStateID: from.ID(), ToStateID: to.ID()}, nil
}
