package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type scriptedClient struct {
	errs  []error
	calls int
}

func (c *scriptedClient) next() error {
	c.calls++
	if len(c.errs) == 0 {
		return nil
	}
	err := c.errs[0]
	c.errs = c.errs[1:]
	return err
}

func (c *scriptedClient) PostMessage(context.Context, string, string) (Message, error) {
	if err := c.next(); err != nil {
		return Message{}, err
	}
	return Message{Channel: "C1", Timestamp: "1.0"}, nil
}

func (c *scriptedClient) GetReactions(context.Context, string, string) ([]Reaction, error) {
	if err := c.next(); err != nil {
		return nil, err
	}
	return []Reaction{{Label: "pizza", Count: 2}}, nil
}

func (c *scriptedClient) AddReaction(context.Context, string, string, string) error {
	return c.next()
}

func newTestRetryingClient(client Client, policy RetryPolicy) (*retryingClient, *[]time.Duration) {
	var waits []time.Duration
	retrying := WithRetry(client, policy, zap.NewNop().Sugar()).(*retryingClient)
	retrying.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	return retrying, &waits
}

func TestRetryPolicy_BackoffIsLinear(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 5, Unit: 2 * time.Second}
	assert.Equal(t, 2*time.Second, policy.Backoff(0))
	assert.Equal(t, 4*time.Second, policy.Backoff(1))
	assert.Equal(t, 10*time.Second, policy.Backoff(4))
}

func TestWithRetry_SucceedsWithoutRetry(t *testing.T) {
	client := &scriptedClient{}
	retrying, waits := newTestRetryingClient(client, RetryPolicy{MaxAttempts: 5, Unit: time.Second})

	message, err := retrying.PostMessage(context.Background(), "C1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "1.0", message.Timestamp)
	assert.Equal(t, 1, client.calls)
	assert.Empty(t, *waits)
}

func TestWithRetry_RetriesRateLimitedCalls(t *testing.T) {
	client := &scriptedClient{errs: []error{ErrRateLimited, ErrRateLimited}}
	retrying, waits := newTestRetryingClient(client, RetryPolicy{MaxAttempts: 5, Unit: time.Second})

	reactions, err := retrying.GetReactions(context.Background(), "C1", "1.0")
	require.NoError(t, err)
	assert.Len(t, reactions, 1)
	assert.Equal(t, 3, client.calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *waits)
}

func TestWithRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	client := &scriptedClient{errs: []error{ErrRateLimited, ErrRateLimited, ErrRateLimited}}
	retrying, waits := newTestRetryingClient(client, RetryPolicy{MaxAttempts: 3, Unit: time.Second})

	err := retrying.AddReaction(context.Background(), "C1", "1.0", "pizza")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCallFailed)
	assert.Equal(t, 3, client.calls)
	assert.Len(t, *waits, 2)
}

func TestWithRetry_FailsHardOnOtherErrors(t *testing.T) {
	boom := errors.New("channel_not_found")
	client := &scriptedClient{errs: []error{boom}}
	retrying, waits := newTestRetryingClient(client, RetryPolicy{MaxAttempts: 5, Unit: time.Second})

	_, err := retrying.PostMessage(context.Background(), "C1", "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCallFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, client.calls)
	assert.Empty(t, *waits)
}

func TestWithRetry_StopsWhenContextIsCancelled(t *testing.T) {
	client := &scriptedClient{errs: []error{ErrRateLimited, ErrRateLimited}}
	retrying := WithRetry(client, RetryPolicy{MaxAttempts: 5, Unit: time.Hour}, zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retrying.AddReaction(ctx, "C1", "1.0", "pizza")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCallFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, client.calls)
}
