package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type MealPollBotConfig struct {
	App      App
	Chat     Chat
	Slack    Slack
	Discord  Discord
	Ledger   Ledger
	DB       DB
	Logger   Logger
	Telegram Telegram
}

type MealPollServiceConfig struct {
	MealPollBotConfig
	Schedule Schedule
}

func LoadMealPollBotConfig() (MealPollBotConfig, error) {
	var config MealPollBotConfig

	if err := parse(&config); err != nil {
		return MealPollBotConfig{}, err
	}

	if err := config.validate(); err != nil {
		return MealPollBotConfig{}, err
	}

	return config, nil
}

func LoadMealPollServiceConfig() (MealPollServiceConfig, error) {
	var config MealPollServiceConfig

	if err := parse(&config); err != nil {
		return MealPollServiceConfig{}, err
	}

	if err := config.validate(); err != nil {
		return MealPollServiceConfig{}, err
	}

	return config, nil
}

func (c MealPollBotConfig) validate() error {
	if err := c.App.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := c.Chat.validate(c.Slack, c.Discord); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func parse(config any) error {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}
