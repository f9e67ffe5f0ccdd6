package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"meal_poll_bot/configs"
	"meal_poll_bot/internal/slash/commands"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type commandHandler struct {
	verificationToken string
	logger            *zap.SugaredLogger

	commands []commands.Command
}

// NewCommandHandler serves Slack slash command requests.
func NewCommandHandler(config configs.Slack, logger *zap.SugaredLogger, commands []commands.Command) http.Handler {
	return &commandHandler{
		verificationToken: config.VerificationToken,
		logger:            logger,
		commands:          commands,
	}
}

func (h *commandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	command, err := slack.SlashCommandParse(r)
	if err != nil {
		h.logger.Warnw("failed to parse slash command", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if h.verificationToken == "" || !command.ValidateToken(h.verificationToken) {
		h.logger.Errorw("slash command token does not match", "command", command.Command, "user_id", command.UserID)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	h.logger.Infow("received slash command", "command", command.Command, "user_id", command.UserID)

	response := h.tryToHandleCommand(r.Context(), command)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Errorw("failed to write slash command response", "error", err)
	}
}

func (h *commandHandler) tryToHandleCommand(ctx context.Context, command slack.SlashCommand) *slack.Msg {
	for _, handler := range h.commands {
		if handler.CanHandle(command.Command) {
			return handler.Handle(ctx, command)
		}
	}

	h.logger.Errorf("received unknown command: %s", command.Command)
	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "Unknown command " + command.Command}
}

// NewRouter mounts the slash command endpoint and the health check.
func NewRouter(commandHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthcheck", healthCheckHandler)
	r.Method(http.MethodPost, "/slack/commands", commandHandler)

	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
