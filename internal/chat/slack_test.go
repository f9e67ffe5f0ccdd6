package chat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meal_poll_bot/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlackClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewSlackClient(configs.Slack{Token: "xoxb-test", APIURL: server.URL + "/"})
}

func TestSlackClient_PostMessage(t *testing.T) {
	client := newTestSlackClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat.postMessage", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "C123", r.FormValue("channel"))
		assert.Equal(t, "hello", r.FormValue("text"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1700000000.000200"}`))
	})

	message, err := client.PostMessage(context.Background(), "C123", "hello")
	require.NoError(t, err)
	assert.Equal(t, "C123", message.Channel)
	assert.Equal(t, "1700000000.000200", message.Timestamp)
	assert.Equal(t, time.Unix(1700000000, 200*int64(time.Microsecond)), message.PostedAt)
}

func TestSlackClient_GetReactions(t *testing.T) {
	client := newTestSlackClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reactions.get", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"type":"message","message":{"reactions":[
			{"name":"pizza","count":3,"users":["UBOT","U1","U2"]},
			{"name":"house","count":1,"users":["UBOT"]}
		]}}`))
	})

	reactions, err := client.GetReactions(context.Background(), "C123", "1700000000.000200")
	require.NoError(t, err)
	require.Len(t, reactions, 2)
	assert.Equal(t, Reaction{Label: "pizza", Count: 3, UserIDs: []string{"UBOT", "U1", "U2"}}, reactions[0])
}

func TestSlackClient_RateLimitedResponse(t *testing.T) {
	client := newTestSlackClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"ratelimited"}`))
	})

	err := client.AddReaction(context.Background(), "C123", "1700000000.000200", "pizza")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestSlackClient_TooManyRequests(t *testing.T) {
	client := newTestSlackClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.PostMessage(context.Background(), "C123", "hello")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestSlackClient_OtherErrorsAreNotRateLimits(t *testing.T) {
	client := newTestSlackClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	})

	_, err := client.PostMessage(context.Background(), "C123", "hello")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRateLimited))
}

func TestParseSlackTimestamp(t *testing.T) {
	parsed, err := ParseSlackTimestamp("1700000000.5")
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1700000000, int64(500*time.Millisecond)), parsed)

	parsed, err = ParseSlackTimestamp("1700000000")
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1700000000, 0), parsed)

	_, err = ParseSlackTimestamp("yesterday")
	assert.Error(t, err)
}
