package workflow

import (
	"context"
	"fmt"
)

type Action string

const (
	ActionPost   Action = "post"
	ActionCheck  Action = "check"
	ActionRemind Action = "remind"
)

func ParseAction(value string) (Action, error) {
	switch action := Action(value); action {
	case ActionPost, ActionCheck, ActionRemind:
		return action, nil
	}
	return "", fmt.Errorf("unknown action %q, expected one of post, check, remind", value)
}

// Run dispatches action to the matching PollWorkflow operation.
func Run(ctx context.Context, pollWorkflow PollWorkflow, action Action) (Result, error) {
	switch action {
	case ActionPost:
		return pollWorkflow.Open(ctx)
	case ActionCheck:
		return pollWorkflow.Tally(ctx)
	case ActionRemind:
		return pollWorkflow.Remind(ctx)
	}
	return Result{}, fmt.Errorf("unknown action %q", action)
}
