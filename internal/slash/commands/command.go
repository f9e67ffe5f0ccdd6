package commands

import (
	"context"

	"github.com/slack-go/slack"
)

type Command interface {
	CanHandle(command string) bool
	Handle(ctx context.Context, command slack.SlashCommand) *slack.Msg
}

func ephemeral(text string) *slack.Msg {
	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: text}
}

func DefaultErrorMessage() *slack.Msg {
	return ephemeral("Something went wrong, please try again")
}
