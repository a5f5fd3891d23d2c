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

type SetFieldPermissionCommand struct {
	FieldID uint                 `json:"field_id" validate:"required"`
	Role    *security.SystemRole `json:"role"`
	GroupID *uint                `json:"group_id"`
	Access  security.AccessLevel `json:"access" validate:"min=0,max=2"`
	UserID  uint                 `json:"user_id" validate:"required"`
}

type SetFieldPermissionResult struct {
	FieldID uint
}

// SetFieldPermissionUseCase grants or adjusts the access level a system role
// or a group has on a field. Exactly one of Role and GroupID must be set.
type SetFieldPermissionUseCase struct {
	fields    field.Repository
	states    state.Repository
	templates template.Repository
	users     security.UserRepository
	groups    security.GroupRepository
	gate      Gate
	tx        TransactionManager
	logger    logger.Interface
}

func NewSetFieldPermissionUseCase(
	fields field.Repository,
	states state.Repository,
	templates template.Repository,
	users security.UserRepository,
	groups security.GroupRepository,
	gate Gate,
	tx TransactionManager,
	logger logger.Interface,
) *SetFieldPermissionUseCase {
	return &SetFieldPermissionUseCase{
		fields:    fields,
		states:    states,
		templates: templates,
		users:     users,
		groups:    groups,
		gate:      gate,
		tx:        tx,
		logger:    logger,
	}
}

func (uc *SetFieldPermissionUseCase) Execute(ctx context.Context, cmd SetFieldPermissionCommand) (*SetFieldPermissionResult, error) {
	uc.logger.Infow("executing set field permission use case", "field_id", cmd.FieldID, "access", cmd.Access)

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

	if cmd.GroupID != nil {
		if _, err := uc.groups.GetByID(ctx, *cmd.GroupID); err != nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("group %d not found", *cmd.GroupID))
		}
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if cmd.Role != nil {
			return uc.fields.SetRolePermission(ctx, field.RolePermission{
				FieldID: f.ID(),
				Role:    *cmd.Role,
				Access:  cmd.Access,
			})
		}
		return uc.fields.SetGroupPermission(ctx, field.GroupPermission{
			FieldID: f.ID(),
			GroupID: *cmd.GroupID,
			Access:  cmd.Access,
		})
	})
	if err != nil {
		uc.logger.Errorw("failed to set field permission", "field_id", cmd.FieldID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to set field permission")
	}

	uc.logger.Infow("field permission set", "field_id", f.ID(), "access", cmd.Access)

	return &SetFieldPermissionResult{FieldID: f.ID()}, nil
}
