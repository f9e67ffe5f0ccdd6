package commands

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"meal_poll_bot/internal/db/models"
	"meal_poll_bot/internal/db/repositories"

	"github.com/google/uuid"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const (
	addLedgerUserCommandName = "/addwbwuser"

	addLedgerUserUsage = "Usage: /addwbwuser <uuid> <user> [comment]"
)

var mentionPattern = regexp.MustCompile(`^<@([A-Z0-9]+)(\|[^>]*)?>$`)

type addLedgerUserCommand struct {
	mappingRepository repositories.IdentityMappingRepository
	logger            *zap.SugaredLogger
}

func NewAddLedgerUserCommand(mappingRepository repositories.IdentityMappingRepository, logger *zap.SugaredLogger) Command {
	return &addLedgerUserCommand{
		mappingRepository: mappingRepository,
		logger:            logger,
	}
}

func (c *addLedgerUserCommand) CanHandle(command string) bool {
	return command == addLedgerUserCommandName
}

func (c *addLedgerUserCommand) Handle(ctx context.Context, command slack.SlashCommand) *slack.Msg {
	fields := strings.Fields(command.Text)
	if len(fields) < 2 {
		return ephemeral(addLedgerUserUsage)
	}

	ledgerID, err := uuid.Parse(fields[0])
	if err != nil {
		return ephemeral("First argument must be a uuid")
	}

	match := mentionPattern.FindStringSubmatch(fields[1])
	if match == nil || !strings.HasPrefix(match[1], "U") {
		return ephemeral("User should be an @ mention of a slack user")
	}

	mapping, err := c.mappingRepository.Save(ctx, &models.IdentityMapping{
		LedgerMemberID: ledgerID.String(),
		ChatUserID:     match[1],
		Comment:        strings.Join(fields[2:], " "),
	})
	if err != nil {
		c.logger.Errorw("failed to save identity mapping", "error", err, "ledger_id", ledgerID.String())
		return DefaultErrorMessage()
	}

	c.logger.Infow("identity mapping saved", "ledger_id", mapping.LedgerMemberID, "chat_user_id", mapping.ChatUserID, "by", command.UserID)

	return ephemeral(fmt.Sprintf(
		"Saved uuid %s, userid %s in the database with comment %s",
		mapping.LedgerMemberID, mapping.ChatUserID, mapping.Comment,
	))
}
