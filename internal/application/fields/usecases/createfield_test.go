package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etraxis/internal/domain/field"
	"etraxis/internal/domain/security"
	"etraxis/internal/domain/state"
	"etraxis/internal/domain/template"
	"etraxis/internal/shared/errors"
)

func adminUser(t *testing.T) *security.User {
	t.Helper()
	user, err := security.ReconstructUser(7, "Carol Admin", "UTC", true, nil)
	require.NoError(t, err)
	return user
}

func lockedTemplate(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := template.ReconstructTemplate(3, 1, "Support", "SUP", "", nil, nil, true)
	require.NoError(t, err)
	return tmpl
}

func intermediateState(t *testing.T) *state.State {
	t.Helper()
	st, err := state.ReconstructState(5, 3, "Assigned", state.TypeIntermediate, state.ResponsibleKeep, nil)
	require.NoError(t, err)
	return st
}

func newCreateFieldDeps(t *testing.T) (*mockFieldRepository, *mockStateRepository, *mockTemplateRepository, *mockUserRepository) {
	t.Helper()
	fields := &mockFieldRepository{}
	states := &mockStateRepository{
		GetByIDFunc: func(ctx context.Context, stateID uint) (*state.State, error) {
			return intermediateState(t), nil
		},
	}
	templates := &mockTemplateRepository{
		GetByIDFunc: func(ctx context.Context, templateID uint) (*template.Template, error) {
			return lockedTemplate(t), nil
		},
	}
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*security.User, error) {
			return adminUser(t), nil
		},
	}
	return fields, states, templates, users
}

func TestCreateFieldUseCase_Execute_Success(t *testing.T) {
	fields, states, templates, users := newCreateFieldDeps(t)

	fields.CountByStateFunc = func(ctx context.Context, stateID uint) (int, error) {
		return 2, nil
	}

	var saved *field.Field
	fields.SaveFunc = func(ctx context.Context, f *field.Field) error {
		saved = f
		return f.SetID(42)
	}

	uc := NewCreateFieldUseCase(fields, states, templates, users, &mockListItems{}, &mockGate{}, &mockTxManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateFieldCommand{
		StateID:    5,
		Name:       "Estimate",
		Type:       field.TypeNumber,
		Required:   true,
		Parameters: field.NumberParameters{Minimum: 0, Maximum: 100},
		UserID:     7,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), result.FieldID)
	assert.Equal(t, 2, result.Position)
	require.NotNil(t, saved)
	assert.Equal(t, field.TypeNumber, saved.Type())
	assert.True(t, saved.IsRequired())
}

func TestCreateFieldUseCase_Execute_DuplicateName(t *testing.T) {
	fields, states, templates, users := newCreateFieldDeps(t)

	fields.FindByNameFunc = func(ctx context.Context, stateID uint, name string) (*field.Field, error) {
		existing, err := field.ReconstructField(9, stateID, name, "", field.TypeString, 0, false, false, field.StringParameters{MaximumLength: 100})
		require.NoError(t, err)
		return existing, nil
	}

	uc := NewCreateFieldUseCase(fields, states, templates, users, &mockListItems{}, &mockGate{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateFieldCommand{
		StateID:    5,
		Name:       "Estimate",
		Type:       field.TypeNumber,
		Parameters: field.NumberParameters{Minimum: 0, Maximum: 100},
		UserID:     7,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestCreateFieldUseCase_Execute_GateDenied(t *testing.T) {
	fields, states, templates, users := newCreateFieldDeps(t)

	gate := &mockGate{
		CanManageFunc: func(user *security.User, tmpl *template.Template) (bool, error) {
			return false, nil
		},
	}

	uc := NewCreateFieldUseCase(fields, states, templates, users, &mockListItems{}, gate, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateFieldCommand{
		StateID:    5,
		Name:       "Estimate",
		Type:       field.TypeNumber,
		Parameters: field.NumberParameters{Minimum: 0, Maximum: 100},
		UserID:     7,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateFieldUseCase_Execute_ListDefaultRejected(t *testing.T) {
	fields, states, templates, users := newCreateFieldDeps(t)

	uc := NewCreateFieldUseCase(fields, states, templates, users, &mockListItems{}, &mockGate{}, &mockTxManager{}, &mockLogger{})

	itemID := uint(11)
	_, err := uc.Execute(context.Background(), CreateFieldCommand{
		StateID:    5,
		Name:       "Severity",
		Type:       field.TypeList,
		Parameters: field.ListParameters{DefaultItemID: &itemID},
		UserID:     7,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateFieldUseCase_Execute_InvalidParameters(t *testing.T) {
	fields, states, templates, users := newCreateFieldDeps(t)

	uc := NewCreateFieldUseCase(fields, states, templates, users, &mockListItems{}, &mockGate{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateFieldCommand{
		StateID:    5,
		Name:       "Estimate",
		Type:       field.TypeNumber,
		Parameters: field.NumberParameters{Minimum: 100, Maximum: 0},
		UserID:     7,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
