package issue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etraxis/internal/domain/state"
)

func finalState(t *testing.T) *state.State {
	t.Helper()
	st, err := state.ReconstructState(6, 3, "Resolved", state.TypeFinal, state.ResponsibleRemove, nil)
	require.NoError(t, err)
	return st
}

func intermediateState(t *testing.T, responsible state.Responsibility) *state.State {
	t.Helper()
	st, err := state.ReconstructState(7, 3, "Assigned", state.TypeIntermediate, responsible, nil)
	require.NoError(t, err)
	return st
}

func TestNewIssue(t *testing.T) {
	initial, err := state.ReconstructState(5, 3, "New", state.TypeInitial, state.ResponsibleKeep, nil)
	require.NoError(t, err)

	iss, err := NewIssue("Printer is on fire", initial, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(5), iss.StateID())
	assert.Equal(t, 1, iss.Version())
	assert.False(t, iss.IsClosed())

	_, err = NewIssue("Printer is on fire", intermediateState(t, state.ResponsibleKeep), 10)
	assert.Error(t, err)

	_, err = NewIssue("", initial, 10)
	assert.Error(t, err)
}

func TestIssue_MoveTo_Policies(t *testing.T) {
	responsible := uint(30)

	t.Run("keep leaves the responsible alone", func(t *testing.T) {
		iss, err := ReconstructIssue(100, "Subject", 5, 10, &responsible, 1, time.Now(), time.Now(), nil)
		require.NoError(t, err)

		require.NoError(t, iss.MoveTo(intermediateState(t, state.ResponsibleKeep), nil))
		require.NotNil(t, iss.ResponsibleID())
		assert.Equal(t, responsible, *iss.ResponsibleID())
	})

	t.Run("assign requires a responsible", func(t *testing.T) {
		iss, err := ReconstructIssue(100, "Subject", 5, 10, nil, 1, time.Now(), time.Now(), nil)
		require.NoError(t, err)

		assert.Error(t, iss.MoveTo(intermediateState(t, state.ResponsibleAssign), nil))

		newResponsible := uint(40)
		require.NoError(t, iss.MoveTo(intermediateState(t, state.ResponsibleAssign), &newResponsible))
		assert.Equal(t, newResponsible, *iss.ResponsibleID())
	})

	t.Run("final closes and clears the responsible", func(t *testing.T) {
		iss, err := ReconstructIssue(100, "Subject", 5, 10, &responsible, 1, time.Now(), time.Now(), nil)
		require.NoError(t, err)

		require.NoError(t, iss.MoveTo(finalState(t), nil))
		assert.True(t, iss.IsClosed())
		assert.Nil(t, iss.ResponsibleID())
	})

	t.Run("leaving a final state reopens", func(t *testing.T) {
		closedAt := time.Now()
		iss, err := ReconstructIssue(100, "Subject", 6, 10, nil, 2, time.Now(), time.Now(), &closedAt)
		require.NoError(t, err)
		require.True(t, iss.IsClosed())

		require.NoError(t, iss.MoveTo(intermediateState(t, state.ResponsibleKeep), nil))
		assert.False(t, iss.IsClosed())
	})
}

func TestIssue_Touch_BumpsVersion(t *testing.T) {
	iss, err := ReconstructIssue(100, "Subject", 5, 10, nil, 3, time.Now(), time.Now(), nil)
	require.NoError(t, err)

	iss.Touch()
	assert.Equal(t, 4, iss.Version())
}
