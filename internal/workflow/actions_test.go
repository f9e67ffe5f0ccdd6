package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWorkflow struct {
	calls []string
}

func (w *recordingWorkflow) Open(context.Context) (Result, error) {
	w.calls = append(w.calls, "open")
	return Result{Outcome: OutcomeOpened}, nil
}

func (w *recordingWorkflow) Tally(context.Context) (Result, error) {
	w.calls = append(w.calls, "tally")
	return Result{Outcome: OutcomeAnnounced}, nil
}

func (w *recordingWorkflow) Remind(context.Context) (Result, error) {
	w.calls = append(w.calls, "remind")
	return Result{Outcome: OutcomeReminded}, nil
}

func TestParseAction(t *testing.T) {
	for _, value := range []string{"post", "check", "remind"} {
		action, err := ParseAction(value)
		require.NoError(t, err)
		assert.Equal(t, Action(value), action)
	}

	_, err := ParseAction("tally")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	pollWorkflow := &recordingWorkflow{}

	for _, action := range []Action{ActionPost, ActionCheck, ActionRemind} {
		_, err := Run(context.Background(), pollWorkflow, action)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"open", "tally", "remind"}, pollWorkflow.calls)

	_, err := Run(context.Background(), pollWorkflow, Action("bogus"))
	assert.Error(t, err)
}
