package configs

import (
	"fmt"
	"time"
)

const (
	ChatPlatformSlack   = "slack"
	ChatPlatformDiscord = "discord"
)

type Chat struct {
	Platform         string        `env:"CHAT_PLATFORM" envDefault:"slack"`
	RetryMaxAttempts int           `env:"CHAT_MAX_RETRIES" envDefault:"5"`
	RetryUnit        time.Duration `env:"CHAT_RETRY_UNIT" envDefault:"2s"`
}

type Slack struct {
	Token             string `env:"SLACK_TOKEN"`
	VerificationToken string `env:"SLACK_VERIFICATION_TOKEN"`
	APIURL            string `env:"SLACK_API_URL"`
}

type Discord struct {
	Token string `env:"DISCORD_BOT_TOKEN"`
}

func (c Chat) validate(slack Slack, discord Discord) error {
	switch c.Platform {
	case ChatPlatformSlack:
		if slack.Token == "" {
			return fmt.Errorf("SLACK_TOKEN is required for platform %s", c.Platform)
		}
	case ChatPlatformDiscord:
		if discord.Token == "" {
			return fmt.Errorf("DISCORD_BOT_TOKEN is required for platform %s", c.Platform)
		}
	default:
		return fmt.Errorf("unknown CHAT_PLATFORM %q", c.Platform)
	}

	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("CHAT_MAX_RETRIES must be at least 1, got %d", c.RetryMaxAttempts)
	}

	return nil
}
