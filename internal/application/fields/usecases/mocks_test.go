package usecases

import (
	"context"

	"etraxis/internal/domain/dictionary"
	"etraxis/internal/domain/field"
	"etraxis/internal/domain/issue"
	"etraxis/internal/domain/security"
	"etraxis/internal/domain/state"
	"etraxis/internal/domain/template"
	"etraxis/internal/shared/logger"
)

type mockFieldRepository struct {
	SaveFunc                 func(ctx context.Context, f *field.Field) error
	UpdateFunc               func(ctx context.Context, f *field.Field) error
	DeleteFunc               func(ctx context.Context, fieldID uint) error
	GetByIDFunc              func(ctx context.Context, fieldID uint) (*field.Field, error)
	FindByNameFunc           func(ctx context.Context, stateID uint, name string) (*field.Field, error)
	ListByStateFunc          func(ctx context.Context, stateID uint, includeRemoved bool) ([]*field.Field, error)
	CountByStateFunc         func(ctx context.Context, stateID uint) (int, error)
	ShiftPositionsFunc       func(ctx context.Context, stateID uint, lo, hi, delta int) error
	ListRolePermissionsFunc  func(ctx context.Context, fieldID uint) ([]field.RolePermission, error)
	ListGroupPermissionsFunc func(ctx context.Context, fieldID uint) ([]field.GroupPermission, error)
	SetRolePermissionFunc    func(ctx context.Context, perm field.RolePermission) error
	SetGroupPermissionFunc   func(ctx context.Context, perm field.GroupPermission) error
	DeletePermissionsFunc    func(ctx context.Context, fieldID uint) error
}

func (m *mockFieldRepository) Save(ctx context.Context, f *field.Field) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockFieldRepository) Update(ctx context.Context, f *field.Field) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockFieldRepository) Delete(ctx context.Context, fieldID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, fieldID)
	}
	return nil
}

func (m *mockFieldRepository) GetByID(ctx context.Context, fieldID uint) (*field.Field, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, fieldID)
	}
	return nil, nil
}

func (m *mockFieldRepository) FindByName(ctx context.Context, stateID uint, name string) (*field.Field, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, stateID, name)
	}
	return nil, nil
}

func (m *mockFieldRepository) ListByState(ctx context.Context, stateID uint, includeRemoved bool) ([]*field.Field, error) {
	if m.ListByStateFunc != nil {
		return m.ListByStateFunc(ctx, stateID, includeRemoved)
	}
	return nil, nil
}

func (m *mockFieldRepository) CountByState(ctx context.Context, stateID uint) (int, error) {
	if m.CountByStateFunc != nil {
		return m.CountByStateFunc(ctx, stateID)
	}
	return 0, nil
}

func (m *mockFieldRepository) ShiftPositions(ctx context.Context, stateID uint, lo, hi, delta int) error {
	if m.ShiftPositionsFunc != nil {
		return m.ShiftPositionsFunc(ctx, stateID, lo, hi, delta)
	}
	return nil
}

func (m *mockFieldRepository) ListRolePermissions(ctx context.Context, fieldID uint) ([]field.RolePermission, error) {
	if m.ListRolePermissionsFunc != nil {
		return m.ListRolePermissionsFunc(ctx, fieldID)
	}
	return nil, nil
}

func (m *mockFieldRepository) ListGroupPermissions(ctx context.Context, fieldID uint) ([]field.GroupPermission, error) {
	if m.ListGroupPermissionsFunc != nil {
		return m.ListGroupPermissionsFunc(ctx, fieldID)
	}
	return nil, nil
}

func (m *mockFieldRepository) SetRolePermission(ctx context.Context, perm field.RolePermission) error {
	if m.SetRolePermissionFunc != nil {
		return m.SetRolePermissionFunc(ctx, perm)
	}
	return nil
}

func (m *mockFieldRepository) SetGroupPermission(ctx context.Context, perm field.GroupPermission) error {
	if m.SetGroupPermissionFunc != nil {
		return m.SetGroupPermissionFunc(ctx, perm)
	}
	return nil
}

func (m *mockFieldRepository) DeletePermissions(ctx context.Context, fieldID uint) error {
	if m.DeletePermissionsFunc != nil {
		return m.DeletePermissionsFunc(ctx, fieldID)
	}
	return nil
}

type mockStateRepository struct {
	GetByIDFunc func(ctx context.Context, stateID uint) (*state.State, error)
}

func (m *mockStateRepository) Save(ctx context.Context, st *state.State) error   { return nil }
func (m *mockStateRepository) Update(ctx context.Context, st *state.State) error { return nil }
func (m *mockStateRepository) Delete(ctx context.Context, stateID uint) error    { return nil }

func (m *mockStateRepository) GetByID(ctx context.Context, stateID uint) (*state.State, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, stateID)
	}
	return nil, nil
}

func (m *mockStateRepository) ListByTemplate(ctx context.Context, templateID uint) ([]*state.State, error) {
	return nil, nil
}

func (m *mockStateRepository) GetInitial(ctx context.Context, templateID uint) (*state.State, error) {
	return nil, nil
}

func (m *mockStateRepository) SetInitial(ctx context.Context, templateID, stateID uint) error {
	return nil
}

func (m *mockStateRepository) ListRoleTransitions(ctx context.Context, fromStateID uint) ([]state.RoleTransition, error) {
	return nil, nil
}

func (m *mockStateRepository) ListGroupTransitions(ctx context.Context, fromStateID uint) ([]state.GroupTransition, error) {
	return nil, nil
}

func (m *mockStateRepository) SetRoleTransition(ctx context.Context, edge state.RoleTransition) error {
	return nil
}

func (m *mockStateRepository) SetGroupTransition(ctx context.Context, edge state.GroupTransition) error {
	return nil
}

func (m *mockStateRepository) ListResponsibleGroups(ctx context.Context, stateID uint) ([]state.ResponsibleGroup, error) {
	return nil, nil
}

func (m *mockStateRepository) SetResponsibleGroup(ctx context.Context, group state.ResponsibleGroup) error {
	return nil
}

type mockTemplateRepository struct {
	GetByIDFunc func(ctx context.Context, templateID uint) (*template.Template, error)
}

func (m *mockTemplateRepository) Save(ctx context.Context, tmpl *template.Template) error {
	return nil
}

func (m *mockTemplateRepository) Update(ctx context.Context, tmpl *template.Template) error {
	return nil
}

func (m *mockTemplateRepository) Delete(ctx context.Context, templateID uint) error { return nil }

func (m *mockTemplateRepository) GetByID(ctx context.Context, templateID uint) (*template.Template, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *mockTemplateRepository) FindByName(ctx context.Context, projectID uint, name string) (*template.Template, error) {
	return nil, nil
}

func (m *mockTemplateRepository) FindByPrefix(ctx context.Context, projectID uint, prefix string) (*template.Template, error) {
	return nil, nil
}

func (m *mockTemplateRepository) ListRolePermissions(ctx context.Context, templateID uint) ([]template.RolePermission, error) {
	return nil, nil
}

func (m *mockTemplateRepository) ListGroupPermissions(ctx context.Context, templateID uint) ([]template.GroupPermission, error) {
	return nil, nil
}

func (m *mockTemplateRepository) SetRolePermission(ctx context.Context, perm template.RolePermission) error {
	return nil
}

func (m *mockTemplateRepository) SetGroupPermission(ctx context.Context, perm template.GroupPermission) error {
	return nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, userID uint) (*security.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*security.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) Save(ctx context.Context, user *security.User) error { return nil }

type mockGroupRepository struct {
	GetByIDFunc func(ctx context.Context, groupID uint) (*security.Group, error)
}

func (m *mockGroupRepository) GetByID(ctx context.Context, groupID uint) (*security.Group, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, groupID)
	}
	return nil, nil
}

func (m *mockGroupRepository) Save(ctx context.Context, group *security.Group) error { return nil }

func (m *mockGroupRepository) ListMembers(ctx context.Context, groupID uint) ([]uint, error) {
	return nil, nil
}

func (m *mockGroupRepository) AddMember(ctx context.Context, groupID, userID uint) error {
	return nil
}

func (m *mockGroupRepository) RemoveMember(ctx context.Context, groupID, userID uint) error {
	return nil
}

type mockListItems struct {
	GetByIDFunc       func(ctx context.Context, itemID uint) (*dictionary.ListItem, error)
	FindByValueFunc   func(ctx context.Context, fieldID uint, value int) (*dictionary.ListItem, error)
	DeleteByFieldFunc func(ctx context.Context, fieldID uint) error
}

func (m *mockListItems) Save(ctx context.Context, item *dictionary.ListItem) error { return nil }

func (m *mockListItems) GetByID(ctx context.Context, id uint) (*dictionary.ListItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockListItems) FindByValue(ctx context.Context, fieldID uint, value int) (*dictionary.ListItem, error) {
	if m.FindByValueFunc != nil {
		return m.FindByValueFunc(ctx, fieldID, value)
	}
	return nil, nil
}

func (m *mockListItems) ListByField(ctx context.Context, fieldID uint) ([]dictionary.ListItem, error) {
	return nil, nil
}

func (m *mockListItems) DeleteByField(ctx context.Context, fieldID uint) error {
	if m.DeleteByFieldFunc != nil {
		return m.DeleteByFieldFunc(ctx, fieldID)
	}
	return nil
}

type mockFieldValues struct {
	CountByFieldFunc func(ctx context.Context, fieldID uint) (int64, error)
}

func (m *mockFieldValues) Save(ctx context.Context, value *issue.FieldValue) error   { return nil }
func (m *mockFieldValues) Update(ctx context.Context, value *issue.FieldValue) error { return nil }

func (m *mockFieldValues) FindByIssueAndField(ctx context.Context, issueID, fieldID uint) (*issue.FieldValue, error) {
	return nil, nil
}

func (m *mockFieldValues) ListByIssue(ctx context.Context, issueID uint) ([]*issue.FieldValue, error) {
	return nil, nil
}

func (m *mockFieldValues) CountByField(ctx context.Context, fieldID uint) (int64, error) {
	if m.CountByFieldFunc != nil {
		return m.CountByFieldFunc(ctx, fieldID)
	}
	return 0, nil
}

type mockGate struct {
	CanManageFunc func(user *security.User, tmpl *template.Template) (bool, error)
}

func (m *mockGate) CanManage(user *security.User, tmpl *template.Template) (bool, error) {
	if m.CanManageFunc != nil {
		return m.CanManageFunc(user, tmpl)
	}
	return true, nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
