package alerts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"meal_poll_bot/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewAlerter_DisabledWithoutConfig(t *testing.T) {
	alerter, err := NewAlerter(configs.Telegram{}, zap.NewNop().Sugar())
	require.NoError(t, err)

	assert.IsType(t, &logAlerter{}, alerter)
	assert.NoError(t, alerter.Alert(context.Background(), "nothing happens"))
}

func TestTelegramAlerter_Alert(t *testing.T) {
	var sent struct {
		chatID string
		text   string
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/bottoken/getMe", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"alerts","username":"alerts_bot"}}`))
	})
	mux.HandleFunc("/bottoken/sendMessage", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		sent.chatID = r.FormValue("chat_id")
		sent.text = r.FormValue("text")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"group"},"text":"ok"}}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	alerter, err := newTelegramAlerter(
		configs.Telegram{Token: "token", ChatID: 42},
		server.URL+"/bot%s/%s",
		zap.NewNop().Sugar(),
	)
	require.NoError(t, err)

	err = alerter.Alert(context.Background(), FailureText("tally", errors.New("latest poll is too old")))
	require.NoError(t, err)

	assert.Equal(t, "42", sent.chatID)
	assert.Equal(t, "Meal poll tally failed: latest poll is too old", sent.text)
}
