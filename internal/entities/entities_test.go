package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b@sub.domain.org", "x_1@host.io"}
	for _, email := range valid {
		require.NoError(t, ValidateEmail(email), "email %q", email)
	}

	invalid := []string{"", "   ", "plain", "no@dot", "two@@example.com", "has space@example.com"}
	for _, email := range invalid {
		require.ErrorIs(t, ValidateEmail(email), ErrInvalidEmail, "email %q", email)
	}
}

func TestParseProjectType(t *testing.T) {
	require.Equal(t, TypeSoftware, ParseProjectType("software"))
	require.Equal(t, TypeSoftware, ParseProjectType(" SOFTWARE "))
	require.Equal(t, TypeHardware, ParseProjectType("hardware"))
	require.Equal(t, TypeHardware, ParseProjectType("anything else"))
}

func TestParseTaskStatus(t *testing.T) {
	for name, want := range map[string]TaskStatus{
		"notstarted": StatusNotStarted,
		"InProgress": StatusInProgress,
		" DONE ":     StatusDone,
	} {
		got, ok := ParseTaskStatus(name)
		require.True(t, ok, "status %q", name)
		require.Equal(t, want, got)
	}

	_, ok := ParseTaskStatus("paused")
	require.False(t, ok)
}

func TestCompletionRatio(t *testing.T) {
	require.Equal(t, 0.0, CompletionRatio(nil))
	require.Equal(t, 0.0, CompletionRatio([]*Task{}))

	tasks := []*Task{
		{Status: StatusDone},
		{Status: StatusDone},
		{Status: StatusInProgress},
		{Status: StatusNotStarted},
	}
	require.Equal(t, 0.5, CompletionRatio(tasks))

	third := []*Task{
		{Status: StatusDone},
		{Status: StatusNotStarted},
		nil,
	}
	require.InDelta(t, 1.0/3.0, CompletionRatio(third), 1e-9)
}

func TestUserCanManageUsers(t *testing.T) {
	require.True(t, User{Role: RoleAdmin}.CanManageUsers())
	require.False(t, User{Role: RoleRegular}.CanManageUsers())
}

func TestTaskCompleted(t *testing.T) {
	require.True(t, Task{Status: StatusDone}.Completed())
	require.False(t, Task{Status: StatusInProgress}.Completed())
}
