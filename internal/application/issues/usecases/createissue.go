package usecases

import (
	"context"
	"fmt"

	"etraxis/internal/domain/field"
	"etraxis/internal/domain/issue"
	"etraxis/internal/domain/security"
	"etraxis/internal/domain/state"
	"etraxis/internal/domain/template"
	"etraxis/internal/shared/errors"
	"etraxis/internal/shared/i18n"
	"etraxis/internal/shared/logger"
	"etraxis/internal/shared/utils"
)

type CreateIssueCommand struct {
	TemplateID    uint   `json:"template_id" validate:"required"`
	Subject       string `json:"subject" validate:"required,max=250"`
	ResponsibleID *uint  `json:"responsible_id"`
	UserID        uint   `json:"user_id" validate:"required"`
}

type CreateIssueResult struct {
	IssueID uint
	StateID uint
}

// CreateIssueUseCase records a new issue at its template's initial state,
// logs the creation event and materializes the initial state's fields with
// their defaults. Issues can only be created in unlocked templates.
type CreateIssueUseCase struct {
	issues    issue.Repository
	events    issue.EventRepository
	states    state.Repository
	fields    field.Repository
	templates template.Repository
	users     security.UserRepository
	groups    security.GroupRepository
	access    AccessResolver
	tracker   *issue.Tracker
	tx        TransactionManager
	logger    logger.Interface
}

func NewCreateIssueUseCase(
	issues issue.Repository,
	events issue.EventRepository,
	states state.Repository,
	fields field.Repository,
	templates template.Repository,
	users security.UserRepository,
	groups security.GroupRepository,
	access AccessResolver,
	tracker *issue.Tracker,
	tx TransactionManager,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issues:    issues,
		events:    events,
		states:    states,
		fields:    fields,
		templates: templates,
		users:     users,
		groups:    groups,
		access:    access,
		tracker:   tracker,
		tx:        tx,
		logger:    logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error) {
	uc.logger.Infow("executing create issue use case", "template_id", cmd.TemplateID, "subject", cmd.Subject)

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
	if tmpl.IsLocked() {
		return nil, errors.NewConflictError(fmt.Sprintf("template %q is locked", tmpl.Name()))
	}

	allowed, err := uc.access.HasTemplatePermission(ctx, user, nil, tmpl.ID(), template.PermissionCreateIssues)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError(fmt.Sprintf("no permission to create issues in template %q", tmpl.Name()))
	}

	initial, err := uc.states.GetInitial(ctx, tmpl.ID())
	if err != nil {
		return nil, errors.NewConflictError(fmt.Sprintf("template %q has no initial state", tmpl.Name()))
	}

	var responsibleID *uint
	if initial.Responsibility() == state.ResponsibleAssign {
		if cmd.ResponsibleID == nil {
			return nil, errors.NewValidationError(fmt.Sprintf("state %q requires a responsible", initial.Name()))
		}
		candidate, err := uc.users.GetByID(ctx, *cmd.ResponsibleID)
		if err != nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", *cmd.ResponsibleID))
		}
		ok, err := uc.isCandidate(ctx, initial.ID(), candidate.ID())
		if err != nil {
			return nil, errors.NewInternalError("failed to list responsible groups")
		}
		if !ok {
			return nil, errors.NewValidationError(i18n.Trans(i18n.KeyStateBadCandidate, i18n.Params{"name": candidate.Fullname()}))
		}
		responsibleID = cmd.ResponsibleID
	}

	initialFields, err := uc.fields.ListByState(ctx, initial.ID(), false)
	if err != nil {
		return nil, errors.NewInternalError("failed to list state fields")
	}

	iss, err := issue.NewIssue(cmd.Subject, initial, user.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.issues.Save(ctx, iss); err != nil {
			return err
		}
		if responsibleID != nil {
			if err := iss.AssignTo(*responsibleID); err != nil {
				return err
			}
			if err := uc.issues.Update(ctx, iss); err != nil {
				return err
			}
		}
		event, err := issue.NewEvent(iss.ID(), user.ID(), issue.EventIssueCreated)
		if err != nil {
			return err
		}
		if err := uc.events.Save(ctx, event); err != nil {
			return err
		}
		return uc.tracker.MaterializeFields(ctx, iss, initialFields, user.Location())
	})
	if err != nil {
		uc.logger.Errorw("failed to create issue", "subject", cmd.Subject, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create issue")
	}

	uc.logger.Infow("issue created", "issue_id", iss.ID(), "state_id", iss.StateID())

	return &CreateIssueResult{
		IssueID: iss.ID(),
		StateID: iss.StateID(),
	}, nil
}

func (uc *CreateIssueUseCase) isCandidate(ctx context.Context, stateID, userID uint) (bool, error) {
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
