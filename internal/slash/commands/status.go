package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"meal_poll_bot/internal/db/models"
	"meal_poll_bot/internal/db/repositories"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const statusCommandName = "/mealpoll"

type statusCommand struct {
	channelID      string
	pollRepository repositories.PollRepository
	logger         *zap.SugaredLogger
}

// NewStatusCommand reports the state of the latest poll in channelID.
func NewStatusCommand(channelID string, pollRepository repositories.PollRepository, logger *zap.SugaredLogger) Command {
	return &statusCommand{
		channelID:      channelID,
		pollRepository: pollRepository,
		logger:         logger,
	}
}

func (c *statusCommand) CanHandle(command string) bool {
	return command == statusCommandName
}

func (c *statusCommand) Handle(ctx context.Context, _ slack.SlashCommand) *slack.Msg {
	poll, err := c.pollRepository.GetLatest(ctx, c.channelID)
	if errors.Is(err, repositories.ErrPollNotFound) {
		return ephemeral(fmt.Sprintf("%s: no poll has been posted yet", models.PollStateUnopened.CapitalizedString()))
	}
	if err != nil {
		c.logger.Errorw("failed to get latest poll", "error", err)
		return DefaultErrorMessage()
	}

	lines := []string{
		fmt.Sprintf("%s poll of %s", poll.State().CapitalizedString(), poll.Date.Format(models.DateLayout)),
	}
	if poll.Choice != "" {
		lines = append(lines, fmt.Sprintf("Decided: :%s:", poll.Choice))
	}
	if poll.RemindedAt != nil {
		lines = append(lines, fmt.Sprintf("Reminded at %s", poll.RemindedAt.Format("15:04")))
	}

	return ephemeral(strings.Join(lines, "\n"))
}
