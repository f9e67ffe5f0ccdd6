package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"meal_poll_bot/configs"
	"meal_poll_bot/internal/alerts"
	"meal_poll_bot/internal/di"
	"meal_poll_bot/internal/workflow"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s post|check|remind\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	action, err := workflow.ParseAction(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	config, err := configs.LoadMealPollBotConfig()
	logger := di.NewLogger(config.Logger, config.App.Environment)
	defer func() { _ = logger.Sync() }()

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

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

	chatClient, err := di.NewChatClient(config, logger)
	if err != nil {
		logger.Fatalw("failed to create chat client", "error", err)
	}

	pollWorkflow, err := di.NewPollWorkflow(config, chatClient, stores, logger)
	if err != nil {
		logger.Fatalw("failed to create workflow", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := workflow.Run(ctx, pollWorkflow, action)
	if err != nil {
		if alertErr := alerter.Alert(ctx, alerts.FailureText(string(action), err)); alertErr != nil {
			logger.Errorw("failed to send alert", "error", alertErr)
		}
		logger.Errorw("action failed", "action", action, "outcome", result.Outcome, "error", err)
		_ = stores.Close()
		_ = logger.Sync()
		os.Exit(1)
	}

	logger.Infow("action finished", "action", action, "outcome", result.Outcome, "choice", result.Choice, "payer", result.Payer)
}
