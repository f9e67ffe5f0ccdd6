package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meal_poll_bot/configs"
	"meal_poll_bot/internal/alerts"
	"meal_poll_bot/internal/di"
	"meal_poll_bot/internal/slash/commands"
	"meal_poll_bot/internal/slash/handlers"
	"meal_poll_bot/internal/workflow"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadMealPollServiceConfig()
	logger := di.NewLogger(config.Logger, config.App.Environment)
	defer func() { _ = logger.Sync() }()

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	location, err := config.App.Location()
	if err != nil {
		logger.Fatalw("failed to load timezone", "error", err)
	}

	alerter, err := alerts.NewAlerter(config.Telegram, logger)
	if err != nil {
		logger.Fatalw("failed to create alerter", "error", err)
	}

	logger.Info("starting db")
	stores, err := di.NewStores(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer func() { _ = stores.Close() }()
	logger.Info("db started")

	chatClient, err := di.NewChatClient(config.MealPollBotConfig, logger)
	if err != nil {
		logger.Fatalw("failed to create chat client", "error", err)
	}

	pollWorkflow, err := di.NewPollWorkflow(config.MealPollBotConfig, chatClient, stores, logger)
	if err != nil {
		logger.Fatalw("failed to create workflow", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := newScheduler(location)

	err = registerJobs(s, config.Schedule, func(action workflow.Action) {
		runJob(ctx, action, pollWorkflow, alerter, logger)
	})
	if err != nil {
		logger.Fatalw("failed to schedule jobs", "error", err)
	}

	s.StartAsync()
	logger.Infow("scheduler started", "post", config.Schedule.Post, "check", config.Schedule.Check, "remind", config.Schedule.Remind)

	commandHandler := handlers.NewCommandHandler(config.Slack, logger, []commands.Command{
		commands.NewAddLedgerUserCommand(stores.Mappings, logger),
		commands.NewStatusCommand(config.App.ChannelID, stores.Polls, logger),
	})

	server := &http.Server{
		Addr:              config.Schedule.HTTPAddr,
		Handler:           handlers.NewRouter(commandHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infow("starting http server", "addr", server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("failed to start http server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	s.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shutdown http server", "error", err)
	}
}

// newScheduler runs at most one job at a time; a job due while another runs waits for it.
func newScheduler(location *time.Location) *gocron.Scheduler {
	s := gocron.NewScheduler(location)
	s.SingletonModeAll()
	s.SetMaxConcurrentJobs(1, gocron.WaitMode)
	return s
}

func registerJobs(s *gocron.Scheduler, schedule configs.Schedule, run func(action workflow.Action)) error {
	jobs := []struct {
		expression string
		action     workflow.Action
	}{
		{schedule.Post, workflow.ActionPost},
		{schedule.Check, workflow.ActionCheck},
		{schedule.Remind, workflow.ActionRemind},
	}

	for _, job := range jobs {
		action := job.action
		if _, err := s.Cron(job.expression).Tag(string(action)).Do(func() { run(action) }); err != nil {
			return err
		}
	}

	return nil
}

func runJob(
	ctx context.Context,
	action workflow.Action,
	pollWorkflow workflow.PollWorkflow,
	alerter alerts.Alerter,
	logger *zap.SugaredLogger,
) {
	logger.Infow("running job", "action", action)

	result, err := workflow.Run(ctx, pollWorkflow, action)
	if err != nil {
		logger.Errorw("job failed", "action", action, "outcome", result.Outcome, "error", err)

		if alertErr := alerter.Alert(ctx, alerts.FailureText(string(action), err)); alertErr != nil {
			logger.Errorw("failed to send alert", "error", alertErr)
		}
		return
	}

	logger.Infow("job finished", "action", action, "outcome", result.Outcome, "choice", result.Choice, "payer", result.Payer)
}
