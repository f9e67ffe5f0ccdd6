package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"meal_poll_bot/configs"

	"github.com/bwmarrin/discordgo"
)

const discordReactionsLimit = 100

var slackLinkPattern = regexp.MustCompile(`<(https?://[^|>]+)\|([^>]+)>`)

type discordClient struct {
	session  *discordgo.Session
	emojis   map[string]string
	labels   map[string]string
	replacer *strings.Replacer
}

// NewDiscordClient translates the Slack flavoured labels and markup the
// workflow speaks into Discord emoji and mentions.
func NewDiscordClient(config configs.Discord, emojis map[string]string) (Client, error) {
	session, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.ShouldRetryOnRateLimit = false

	return newDiscordClient(session, emojis), nil
}

func newDiscordClient(session *discordgo.Session, emojis map[string]string) *discordClient {
	labels := make(map[string]string, len(emojis))
	pairs := []string{"<!everyone>", "@everyone", "<!channel>", "@here"}

	for label, emoji := range emojis {
		labels[emoji] = label
		pairs = append(pairs, ":"+label+":", emoji)
	}

	return &discordClient{
		session:  session,
		emojis:   emojis,
		labels:   labels,
		replacer: strings.NewReplacer(pairs...),
	}
}

func (c *discordClient) PostMessage(_ context.Context, channel, text string) (Message, error) {
	message, err := c.session.ChannelMessageSend(channel, c.render(text))
	if err != nil {
		return Message{}, discordError(err)
	}

	return Message{Channel: message.ChannelID, Timestamp: message.ID, PostedAt: message.Timestamp}, nil
}

func (c *discordClient) GetReactions(_ context.Context, channel, timestamp string) ([]Reaction, error) {
	message, err := c.session.ChannelMessage(channel, timestamp)
	if err != nil {
		return nil, discordError(err)
	}

	reactions := make([]Reaction, 0, len(message.Reactions))
	for _, messageReaction := range message.Reactions {
		if messageReaction.Emoji == nil {
			continue
		}

		users, err := c.session.MessageReactions(channel, timestamp, messageReaction.Emoji.APIName(), discordReactionsLimit, "", "")
		if err != nil {
			return nil, discordError(err)
		}

		userIDs := make([]string, 0, len(users))
		for _, user := range users {
			userIDs = append(userIDs, user.ID)
		}

		reactions = append(reactions, Reaction{
			Label:   c.label(messageReaction.Emoji.Name),
			UserIDs: userIDs,
			Count:   messageReaction.Count,
		})
	}

	return reactions, nil
}

func (c *discordClient) AddReaction(_ context.Context, channel, timestamp, label string) error {
	emoji, ok := c.emojis[label]
	if !ok {
		emoji = label
	}

	if err := c.session.MessageReactionAdd(channel, timestamp, emoji); err != nil {
		return discordError(err)
	}
	return nil
}

func (c *discordClient) render(text string) string {
	text = slackLinkPattern.ReplaceAllString(text, "[$2]($1)")
	return c.replacer.Replace(text)
}

func (c *discordClient) label(emoji string) string {
	if label, ok := c.labels[emoji]; ok {
		return label
	}
	return emoji
}

func discordError(err error) error {
	var rateLimitErr *discordgo.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return err
}
