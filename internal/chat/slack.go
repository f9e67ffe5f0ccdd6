package chat

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"meal_poll_bot/configs"

	"github.com/slack-go/slack"
)

type slackClient struct {
	api *slack.Client
}

func NewSlackClient(config configs.Slack) Client {
	var opts []slack.Option
	if config.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(config.APIURL))
	}

	return &slackClient{api: slack.New(config.Token, opts...)}
}

func (c *slackClient) PostMessage(ctx context.Context, channel, text string) (Message, error) {
	channelID, timestamp, err := c.api.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false))
	if err != nil {
		return Message{}, slackError(err)
	}

	postedAt, err := ParseSlackTimestamp(timestamp)
	if err != nil {
		return Message{}, err
	}

	return Message{Channel: channelID, Timestamp: timestamp, PostedAt: postedAt}, nil
}

func (c *slackClient) GetReactions(ctx context.Context, channel, timestamp string) ([]Reaction, error) {
	items, err := c.api.GetReactionsContext(ctx, slack.NewRefToMessage(channel, timestamp), slack.GetReactionsParameters{Full: true})
	if err != nil {
		return nil, slackError(err)
	}

	reactions := make([]Reaction, 0, len(items))
	for _, item := range items {
		reactions = append(reactions, Reaction{Label: item.Name, UserIDs: item.Users, Count: item.Count})
	}

	return reactions, nil
}

func (c *slackClient) AddReaction(ctx context.Context, channel, timestamp, label string) error {
	if err := c.api.AddReactionContext(ctx, label, slack.NewRefToMessage(channel, timestamp)); err != nil {
		return slackError(err)
	}
	return nil
}

func slackError(err error) error {
	var rateLimited *slack.RateLimitedError
	if errors.As(err, &rateLimited) {
		return fmt.Errorf("%w: retry after %s", ErrRateLimited, rateLimited.RetryAfter)
	}

	var response slack.SlackErrorResponse
	if errors.As(err, &response) && response.Err == "ratelimited" {
		return ErrRateLimited
	}

	return err
}

// ParseSlackTimestamp converts a message ts such as "1700000000.123456" to a time.
func ParseSlackTimestamp(timestamp string) (time.Time, error) {
	seconds, fraction, _ := strings.Cut(timestamp, ".")

	sec, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slack timestamp %q: %w", timestamp, err)
	}

	var micro int64
	if fraction != "" {
		if len(fraction) > 6 {
			fraction = fraction[:6]
		}
		fraction += strings.Repeat("0", 6-len(fraction))

		micro, err = strconv.ParseInt(fraction, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid slack timestamp %q: %w", timestamp, err)
		}
	}

	return time.Unix(sec, micro*int64(time.Microsecond)), nil
}
