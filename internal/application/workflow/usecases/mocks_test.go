package usecases

import (
	"context"

	"etraxis/internal/domain/field"
	"etraxis/internal/domain/issue"
	"etraxis/internal/domain/security"
	"etraxis/internal/domain/state"
	"etraxis/internal/domain/template"
	"etraxis/internal/shared/logger"
)

type mockStateRepository struct {
	SaveFunc                  func(ctx context.Context, st *state.State) error
	GetByIDFunc               func(ctx context.Context, stateID uint) (*state.State, error)
	ListByTemplateFunc        func(ctx context.Context, templateID uint) ([]*state.State, error)
	GetInitialFunc            func(ctx context.Context, templateID uint) (*state.State, error)
	SetInitialFunc            func(ctx context.Context, templateID, stateID uint) error
	ListRoleTransitionsFunc   func(ctx context.Context, fromStateID uint) ([]state.RoleTransition, error)
	ListGroupTransitionsFunc  func(ctx context.Context, fromStateID uint) ([]state.GroupTransition, error)
	SetRoleTransitionFunc     func(ctx context.Context, edge state.RoleTransition) error
	SetGroupTransitionFunc    func(ctx context.Context, edge state.GroupTransition) error
	ListResponsibleGroupsFunc func(ctx context.Context, stateID uint) ([]state.ResponsibleGroup, error)
	SetResponsibleGroupFunc   func(ctx context.Context, group state.ResponsibleGroup) error
}

func (m *mockStateRepository) Save(ctx context.Context, st *state.State) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, st)
	}
	return nil
}

func (m *mockStateRepository) Update(ctx context.Context, st *state.State) error { return nil }
func (m *mockStateRepository) Delete(ctx context.Context, stateID uint) error    { return nil }

func (m *mockStateRepository) GetByID(ctx context.Context, stateID uint) (*state.State, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, stateID)
	}
	return nil, nil
}

func (m *mockStateRepository) ListByTemplate(ctx context.Context, templateID uint) ([]*state.State, error) {
	if m.ListByTemplateFunc != nil {
		return m.ListByTemplateFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *mockStateRepository) GetInitial(ctx context.Context, templateID uint) (*state.State, error) {
	if m.GetInitialFunc != nil {
		return m.GetInitialFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *mockStateRepository) SetInitial(ctx context.Context, templateID, stateID uint) error {
	if m.SetInitialFunc != nil {
		return m.SetInitialFunc(ctx, templateID, stateID)
	}
	return nil
}

func (m *mockStateRepository) ListRoleTransitions(ctx context.Context, fromStateID uint) ([]state.RoleTransition, error) {
	if m.ListRoleTransitionsFunc != nil {
		return m.ListRoleTransitionsFunc(ctx, fromStateID)
	}
	return nil, nil
}

func (m *mockStateRepository) ListGroupTransitions(ctx context.Context, fromStateID uint) ([]state.GroupTransition, error) {
	if m.ListGroupTransitionsFunc != nil {
		return m.ListGroupTransitionsFunc(ctx, fromStateID)
	}
	return nil, nil
}

func (m *mockStateRepository) SetRoleTransition(ctx context.Context, edge state.RoleTransition) error {
	if m.SetRoleTransitionFunc != nil {
		return m.SetRoleTransitionFunc(ctx, edge)
	}
	return nil
}

func (m *mockStateRepository) SetGroupTransition(ctx context.Context, edge state.GroupTransition) error {
	if m.SetGroupTransitionFunc != nil {
		return m.SetGroupTransitionFunc(ctx, edge)
	}
	return nil
}

func (m *mockStateRepository) ListResponsibleGroups(ctx context.Context, stateID uint) ([]state.ResponsibleGroup, error) {
	if m.ListResponsibleGroupsFunc != nil {
		return m.ListResponsibleGroupsFunc(ctx, stateID)
	}
	return nil, nil
}

func (m *mockStateRepository) SetResponsibleGroup(ctx context.Context, group state.ResponsibleGroup) error {
	if m.SetResponsibleGroupFunc != nil {
		return m.SetResponsibleGroupFunc(ctx, group)
	}
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
	GetByIDFunc     func(ctx context.Context, groupID uint) (*security.Group, error)
	ListMembersFunc func(ctx context.Context, groupID uint) ([]uint, error)
}

func (m *mockGroupRepository) GetByID(ctx context.Context, groupID uint) (*security.Group, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, groupID)
	}
	return nil, nil
}

func (m *mockGroupRepository) Save(ctx context.Context, group *security.Group) error { return nil }

func (m *mockGroupRepository) ListMembers(ctx context.Context, groupID uint) ([]uint, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, groupID)
	}
	return nil, nil
}

func (m *mockGroupRepository) AddMember(ctx context.Context, groupID, userID uint) error {
	return nil
}

func (m *mockGroupRepository) RemoveMember(ctx context.Context, groupID, userID uint) error {
	return nil
}

type mockFieldRepository struct {
	ListByStateFunc func(ctx context.Context, stateID uint, includeRemoved bool) ([]*field.Field, error)
}

func (m *mockFieldRepository) Save(ctx context.Context, f *field.Field) error   { return nil }
func (m *mockFieldRepository) Update(ctx context.Context, f *field.Field) error { return nil }
func (m *mockFieldRepository) Delete(ctx context.Context, fieldID uint) error   { return nil }

func (m *mockFieldRepository) GetByID(ctx context.Context, fieldID uint) (*field.Field, error) {
	return nil, nil
}

func (m *mockFieldRepository) FindByName(ctx context.Context, stateID uint, name string) (*field.Field, error) {
	return nil, nil
}

func (m *mockFieldRepository) ListByState(ctx context.Context, stateID uint, includeRemoved bool) ([]*field.Field, error) {
	if m.ListByStateFunc != nil {
		return m.ListByStateFunc(ctx, stateID, includeRemoved)
	}
	return nil, nil
}

func (m *mockFieldRepository) CountByState(ctx context.Context, stateID uint) (int, error) {
	return 0, nil
}

func (m *mockFieldRepository) ShiftPositions(ctx context.Context, stateID uint, lo, hi, delta int) error {
	return nil
}

func (m *mockFieldRepository) ListRolePermissions(ctx context.Context, fieldID uint) ([]field.RolePermission, error) {
	return nil, nil
}

func (m *mockFieldRepository) ListGroupPermissions(ctx context.Context, fieldID uint) ([]field.GroupPermission, error) {
	return nil, nil
}

func (m *mockFieldRepository) SetRolePermission(ctx context.Context, perm field.RolePermission) error {
	return nil
}

func (m *mockFieldRepository) SetGroupPermission(ctx context.Context, perm field.GroupPermission) error {
	return nil
}

func (m *mockFieldRepository) DeletePermissions(ctx context.Context, fieldID uint) error {
	return nil
}

type mockIssueRepository struct {
	SaveFunc    func(ctx context.Context, iss *issue.Issue) error
	UpdateFunc  func(ctx context.Context, iss *issue.Issue) error
	GetByIDFunc func(ctx context.Context, issueID uint) (*issue.Issue, error)
}

func (m *mockIssueRepository) Save(ctx context.Context, iss *issue.Issue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, iss)
	}
	return nil
}

func (m *mockIssueRepository) Update(ctx context.Context, iss *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, iss)
	}
	return nil
}

func (m *mockIssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockIssueRepository) Exists(ctx context.Context, issueID uint) (bool, error) {
	return false, nil
}

type mockEventRepository struct {
	SaveFunc func(ctx context.Context, event *issue.Event) error
}

func (m *mockEventRepository) Save(ctx context.Context, event *issue.Event) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, event)
	}
	return event.SetID(1)
}

func (m *mockEventRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.Event, error) {
	return nil, nil
}

type mockFieldValueRepository struct {
	SaveFunc                func(ctx context.Context, value *issue.FieldValue) error
	FindByIssueAndFieldFunc func(ctx context.Context, issueID, fieldID uint) (*issue.FieldValue, error)
}

func (m *mockFieldValueRepository) Save(ctx context.Context, value *issue.FieldValue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, value)
	}
	return nil
}

func (m *mockFieldValueRepository) Update(ctx context.Context, value *issue.FieldValue) error {
	return nil
}

func (m *mockFieldValueRepository) FindByIssueAndField(ctx context.Context, issueID, fieldID uint) (*issue.FieldValue, error) {
	if m.FindByIssueAndFieldFunc != nil {
		return m.FindByIssueAndFieldFunc(ctx, issueID, fieldID)
	}
	return nil, nil
}

func (m *mockFieldValueRepository) ListByIssue(ctx context.Context, issueID uint) ([]*issue.FieldValue, error) {
	return nil, nil
}

func (m *mockFieldValueRepository) CountByField(ctx context.Context, fieldID uint) (int64, error) {
	return 0, nil
}

type mockChangeRepository struct {
	SaveFunc func(ctx context.Context, change *issue.Change) error
}

func (m *mockChangeRepository) Save(ctx context.Context, change *issue.Change) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, change)
	}
	return nil
}

func (m *mockChangeRepository) ListByEvent(ctx context.Context, eventID uint) ([]*issue.Change, error) {
	return nil, nil
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
