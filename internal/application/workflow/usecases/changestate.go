package usecases

import (
	"context"
	"fmt"

	"etraxis/internal/domain/field"
	"etraxis/internal/domain/issue"
	"etraxis/internal/domain/security"
	"etraxis/internal/domain/state"
	"etraxis/internal/shared/errors"
	"etraxis/internal/shared/i18n"
	"etraxis/internal/shared/logger"
	"etraxis/internal/shared/utils"
)

type ChangeStateCommand struct {
	IssueID       uint  `json:"issue_id" validate:"required"`
	StateID       uint  `json:"state_id" validate:"required"`
	ResponsibleID *uint `json:"responsible_id"`
	UserID        uint  `json:"user_id" validate:"required"`
}

type ChangeStateResult struct {
	IssueID uint
	StateID uint
	Closed  bool
}

// ChangeStateUseCase moves an issue along a workflow edge. The acting user
// must hold a matching role or group edge from the issue's current state to
// the target. The target state's responsible policy is applied: an assigning
// state requires a candidate drawn from its responsible groups, a final
// state drops the responsible and closes the issue. Fields of the target
// state are materialized with their defaults.
type ChangeStateUseCase struct {
	issues  issue.Repository
	events  issue.EventRepository
	states  state.Repository
	fields  field.Repository
	users   security.UserRepository
	groups  security.GroupRepository
	tracker *issue.Tracker
	tx      TransactionManager
	logger  logger.Interface
}

func NewChangeStateUseCase(
	issues issue.Repository,
	events issue.EventRepository,
	states state.Repository,
	fields field.Repository,
	users security.UserRepository,
	groups security.GroupRepository,
	tracker *issue.Tracker,
	tx TransactionManager,
	logger logger.Interface,
) *ChangeStateUseCase {
	return &ChangeStateUseCase{
		issues:  issues,
		events:  events,
		states:  states,
		fields:  fields,
		users:   users,
		groups:  groups,
		tracker: tracker,
		tx:      tx,
		logger:  logger,
	}
}

func (uc *ChangeStateUseCase) Execute(ctx context.Context, cmd ChangeStateCommand) (*ChangeStateResult, error) {
	uc.logger.Infow("executing change state use case", "issue_id", cmd.IssueID, "state_id", cmd.StateID)

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

	current, err := uc.states.GetByID(ctx, iss.StateID())
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("state %d not found", iss.StateID()))
	}

	target, err := uc.states.GetByID(ctx, cmd.StateID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("state %d not found", cmd.StateID))
	}

	// An issue never leaves its template's workflow.
	if target.TemplateID() != current.TemplateID() {
		return nil, errors.NewInternalError(fmt.Sprintf("state %d belongs to another template", target.ID()))
	}

	roleEdges, err := uc.states.ListRoleTransitions(ctx, current.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to list role transitions")
	}
	groupEdges, err := uc.states.ListGroupTransitions(ctx, current.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to list group transitions")
	}

	roles := user.RolesFor(iss.AuthorID(), iss.ResponsibleID())
	if !state.CanTransition(target.ID(), roles, user.GroupIDs(), roleEdges, groupEdges) {
		return nil, errors.NewForbiddenError(i18n.Trans(i18n.KeyStateNoTransition, i18n.Params{"name": target.Name()}))
	}

	if target.Responsibility() == state.ResponsibleAssign {
		if cmd.ResponsibleID == nil {
			return nil, errors.NewValidationError(fmt.Sprintf("state %q requires a responsible", target.Name()))
		}
		candidate, err := uc.users.GetByID(ctx, *cmd.ResponsibleID)
		if err != nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", *cmd.ResponsibleID))
		}
		ok, err := uc.isCandidate(ctx, target.ID(), candidate.ID())
		if err != nil {
			return nil, errors.NewInternalError("failed to list responsible groups")
		}
		if !ok {
			return nil, errors.NewValidationError(i18n.Trans(i18n.KeyStateBadCandidate, i18n.Params{"name": candidate.Fullname()}))
		}
	}

	targetFields, err := uc.fields.ListByState(ctx, target.ID(), false)
	if err != nil {
		return nil, errors.NewInternalError("failed to list state fields")
	}

	eventType := issue.EventStateChanged
	if target.IsFinal() {
		eventType = issue.EventIssueClosed
	} else if iss.IsClosed() {
		eventType = issue.EventIssueReopened
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		event, err := issue.NewEvent(iss.ID(), user.ID(), eventType)
		if err != nil {
			return err
		}
		if err := uc.events.Save(ctx, event); err != nil {
			return err
		}
		if err := iss.MoveTo(target, cmd.ResponsibleID); err != nil {
			return err
		}
		if err := uc.issues.Update(ctx, iss); err != nil {
			return err
		}
		return uc.tracker.MaterializeFields(ctx, iss, targetFields, user.Location())
	})
	if err != nil {
		uc.logger.Errorw("failed to change state", "issue_id", cmd.IssueID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to change state")
	}

	uc.logger.Infow("state changed", "issue_id", iss.ID(), "state_id", target.ID(), "closed", iss.IsClosed())

	return &ChangeStateResult{
		IssueID: iss.ID(),
		StateID: target.ID(),
		Closed:  iss.IsClosed(),
	}, nil
}

// isCandidate reports whether the user belongs to at least one of the
// state's responsible groups.
func (uc *ChangeStateUseCase) isCandidate(ctx context.Context, stateID, userID uint) (bool, error) {
	candidateGroups, err := uc.states.ListResponsibleGroups(ctx, stateID)
	if err != nil {
		return false, err
	}
	for _, cg := range candidateGroups {
		members, err := uc.groups.ListMembers(ctx, cg.GroupID)
		if err != nil {
			return false, err
		}
		for _, memberID := range members {
			if memberID == userID {
				return true, nil
			}
		}
	}
	return false, nil
}
