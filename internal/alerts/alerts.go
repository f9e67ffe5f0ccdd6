package alerts

import (
	"context"
	"fmt"

	"meal_poll_bot/configs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Alerter tells the operator about failed runs.
type Alerter interface {
	Alert(ctx context.Context, text string) error
}

type telegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.SugaredLogger
}

type logAlerter struct {
	logger *zap.SugaredLogger
}

// NewAlerter sends alerts to the configured Telegram chat. Without a Telegram
// config the alerts only end up in the log.
func NewAlerter(config configs.Telegram, logger *zap.SugaredLogger) (Alerter, error) {
	if !config.Enabled() {
		logger.Info("telegram alerts disabled")
		return &logAlerter{logger: logger}, nil
	}

	return newTelegramAlerter(config, tgbotapi.APIEndpoint, logger)
}

func newTelegramAlerter(config configs.Telegram, endpoint string, logger *zap.SugaredLogger) (Alerter, error) {
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(config.Token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &telegramAlerter{
		bot:    bot,
		chatID: config.ChatID,
		logger: logger,
	}, nil
}

func (a *telegramAlerter) Alert(_ context.Context, text string) error {
	message := tgbotapi.NewMessage(a.chatID, text)
	message.DisableWebPagePreview = true

	if _, err := a.bot.Send(message); err != nil {
		a.logger.Errorw("could not send alert", "error", err)
		return err
	}

	return nil
}

func (a *logAlerter) Alert(_ context.Context, text string) error {
	a.logger.Warnw("alert", "text", text)
	return nil
}

// FailureText describes a failed action for the operator.
func FailureText(action string, err error) string {
	return fmt.Sprintf("Meal poll %s failed: %v", action, err)
}
