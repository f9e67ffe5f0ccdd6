package configs

import (
	"fmt"
	"time"
)

const (
	RemindPolicyFail     = "fail"
	RemindPolicyRedecide = "redecide"
)

type App struct {
	Environment           string        `env:"ENVIRONMENT" envDefault:"prod"`
	ChannelID             string        `env:"CHAT_CHANNEL,notEmpty"`
	Timezone              string        `env:"TIMEZONE" envDefault:"Europe/Amsterdam"`
	StalenessWindow       time.Duration `env:"STALENESS_WINDOW" envDefault:"24h"`
	OptionsFile           string        `env:"OPTIONS_FILE"`
	OperatorMention       string        `env:"OPERATOR_MENTION" envDefault:"<!channel>"`
	RemindUndecidedPolicy string        `env:"REMIND_UNDECIDED_POLICY" envDefault:"fail"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}

func (c App) Location() (*time.Location, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return location, nil
}

func (c App) validate() error {
	switch c.RemindUndecidedPolicy {
	case RemindPolicyFail, RemindPolicyRedecide:
	default:
		return fmt.Errorf("unknown REMIND_UNDECIDED_POLICY %q", c.RemindUndecidedPolicy)
	}

	if c.StalenessWindow <= 0 {
		return fmt.Errorf("STALENESS_WINDOW must be positive, got %s", c.StalenessWindow)
	}

	return nil
}
