package di

import (
	"context"
	"fmt"
	"time"

	"meal_poll_bot/configs"
	"meal_poll_bot/internal/chat"
	"meal_poll_bot/internal/db"
	"meal_poll_bot/internal/db/repositories"
	"meal_poll_bot/internal/db/sqlite"
	"meal_poll_bot/internal/decision"
	"meal_poll_bot/internal/options"
	"meal_poll_bot/internal/services"
	"meal_poll_bot/internal/workflow"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

func NewLogger(config configs.Logger, environment string) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if environment == "dev" {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if config.URL == "" {
		return zap.Must(zapConfig.Build()).Sugar()
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName, "environment": environment},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zapConfig)).Sugar()
}

// Stores holds the repositories of whichever database is configured.
type Stores struct {
	Polls    repositories.PollRepository
	Mappings repositories.IdentityMappingRepository

	close func() error
}

func (s *Stores) Close() error {
	return s.close()
}

func NewStores(config configs.DB, logger *zap.SugaredLogger) (*Stores, error) {
	if config.IsPostgres() {
		database, err := db.StartDB(config, logger)
		if err != nil {
			return nil, err
		}

		return &Stores{
			Polls:    repositories.NewPollRepository(database),
			Mappings: repositories.NewIdentityMappingRepository(database),
			close:    database.Close,
		}, nil
	}

	logger.Infow("using sqlite store", "path", config.SQLitePath)
	database, err := sqlite.Open(config.SQLitePath)
	if err != nil {
		return nil, err
	}

	return &Stores{
		Polls:    sqlite.NewPollRepository(database),
		Mappings: sqlite.NewIdentityMappingRepository(database),
		close:    database.Close,
	}, nil
}

// NewChatClient returns the adapter for the configured platform wrapped in the retry policy.
func NewChatClient(config configs.MealPollBotConfig, logger *zap.SugaredLogger) (chat.Client, error) {
	var client chat.Client

	switch config.Chat.Platform {
	case configs.ChatPlatformSlack:
		client = chat.NewSlackClient(config.Slack)
	case configs.ChatPlatformDiscord:
		table, err := options.Load(config.App.OptionsFile, time.Now())
		if err != nil {
			return nil, err
		}

		client, err = chat.NewDiscordClient(config.Discord, table.Emojis())
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown chat platform %q", config.Chat.Platform)
	}

	policy := chat.RetryPolicy{
		MaxAttempts: config.Chat.RetryMaxAttempts,
		Unit:        config.Chat.RetryUnit,
	}

	return chat.WithRetry(client, policy, logger), nil
}

func NewPollWorkflow(
	config configs.MealPollBotConfig,
	chatClient chat.Client,
	stores *Stores,
	logger *zap.SugaredLogger,
) (workflow.PollWorkflow, error) {
	workflowConfig, err := workflow.NewConfig(config.App)
	if err != nil {
		return nil, err
	}

	return workflow.NewPollWorkflow(
		workflowConfig,
		chatClient,
		stores.Polls,
		stores.Mappings,
		services.NewLedgerService(config.Ledger, logger),
		decision.NewChooser(),
		logger,
	), nil
}
