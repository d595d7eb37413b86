package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibeloop/vibeloop/internal/model"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("STORAGE_DIR", t.TempDir())
	t.Setenv("SIMULATED_LATENCY", "0s")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	s := &session{}
	t.Cleanup(func() { _ = s.close() })

	root := s.root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestMembersCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "members")

	require.NoError(t, err)
	assert.Contains(t, out, "Alice Johnson")
	assert.Contains(t, out, "Complete API design document")
	assert.Contains(t, out, "no goals today")
}

func TestGoalCommands(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "members")
	require.NoError(t, err)

	out, err := run(t, "goal", "add", "3", "Plan", "the", "retro")
	require.NoError(t, err)
	assert.Contains(t, out, "Plan the retro")

	out, err = run(t, "goal", "done", "g1")
	require.NoError(t, err)
	assert.Contains(t, out, "[x] Complete API design document")

	out, err = run(t, "goal", "undo", "g1")
	require.NoError(t, err)
	assert.Contains(t, out, "[ ] Complete API design document")

	_, err = run(t, "goal", "rm", "g1")
	require.NoError(t, err)

	_, err = run(t, "goal", "rm", "g1")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = run(t, "goal", "add", "3", "ab")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestMoodCommand(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "members")
	require.NoError(t, err)

	out, err := run(t, "mood", "3", "good")
	require.NoError(t, err)
	assert.Contains(t, out, "Carol Davis is now")

	_, err = run(t, "mood", "3", "ecstatic")
	assert.Error(t, err)

	_, err = run(t, "mood", "99", "good")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStatsCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "stats")

	require.NoError(t, err)
	assert.Contains(t, out, "Completion: 29% (2/7 goals)")
}

func TestResetCommand(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "members")
	require.NoError(t, err)
	_, err = run(t, "goal", "rm", "g1")
	require.NoError(t, err)

	_, err = run(t, "reset")
	require.NoError(t, err)

	out, err := run(t, "members")
	require.NoError(t, err)
	assert.Contains(t, out, "Complete API design document")
}

func TestRenderStats_NoGoals(t *testing.T) {
	out := renderStats(model.TeamStats{
		CompletionPercentage: model.NoGoalsYet,
		MoodBreakdown:        model.MoodCount{model.MoodGood: 2},
	})

	assert.Contains(t, out, "Completion: No goals yet (0/0 goals)")
	assert.Contains(t, out, "good")
}
