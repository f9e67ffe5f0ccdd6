package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"meal_poll_bot/configs"
	"meal_poll_bot/internal/slash/commands"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoCommand struct{}

func (echoCommand) CanHandle(command string) bool {
	return command == "/echo"
}

func (echoCommand) Handle(_ context.Context, command slack.SlashCommand) *slack.Msg {
	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: command.UserID + ": " + command.Text}
}

func newTestRouter() http.Handler {
	handler := NewCommandHandler(
		configs.Slack{VerificationToken: "secret"},
		zap.NewNop().Sugar(),
		[]commands.Command{echoCommand{}},
	)
	return NewRouter(handler)
}

func postCommand(t *testing.T, router http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestCommandHandler_Dispatches(t *testing.T) {
	recorder := postCommand(t, newTestRouter(), url.Values{
		"token":   {"secret"},
		"command": {"/echo"},
		"text":    {"hello"},
		"user_id": {"U1"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response slack.Msg
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "U1: hello", response.Text)
	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
}

func TestCommandHandler_RejectsWrongToken(t *testing.T) {
	recorder := postCommand(t, newTestRouter(), url.Values{
		"token":   {"guess"},
		"command": {"/echo"},
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCommandHandler_UnknownCommand(t *testing.T) {
	recorder := postCommand(t, newTestRouter(), url.Values{
		"token":   {"secret"},
		"command": {"/nope"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Unknown command /nope")
}

func TestRouter_HealthCheck(t *testing.T) {
	recorder := httptest.NewRecorder()
	newTestRouter().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "I'm alive", recorder.Body.String())
}
