package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type RetryPolicy struct {
	MaxAttempts int
	Unit        time.Duration
}

// Backoff grows linearly: the first retry waits one unit, the second two, and so on.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	return time.Duration(attempt+1) * p.Unit
}

type retryingClient struct {
	client Client
	policy RetryPolicy
	logger *zap.SugaredLogger
	sleep  func(ctx context.Context, d time.Duration) error
}

// WithRetry retries rate limited calls according to policy. Any other
// failure is returned immediately, wrapped in ErrCallFailed.
func WithRetry(client Client, policy RetryPolicy, logger *zap.SugaredLogger) Client {
	return &retryingClient{
		client: client,
		policy: policy,
		logger: logger,
		sleep:  sleepContext,
	}
}

func (c *retryingClient) PostMessage(ctx context.Context, channel, text string) (Message, error) {
	var message Message
	err := c.do(ctx, "postMessage", func() error {
		var err error
		message, err = c.client.PostMessage(ctx, channel, text)
		return err
	})
	return message, err
}

func (c *retryingClient) GetReactions(ctx context.Context, channel, timestamp string) ([]Reaction, error) {
	var reactions []Reaction
	err := c.do(ctx, "getReactions", func() error {
		var err error
		reactions, err = c.client.GetReactions(ctx, channel, timestamp)
		return err
	})
	return reactions, err
}

func (c *retryingClient) AddReaction(ctx context.Context, channel, timestamp, label string) error {
	return c.do(ctx, "addReaction", func() error {
		return c.client.AddReaction(ctx, channel, timestamp, label)
	})
}

func (c *retryingClient) do(ctx context.Context, method string, call func() error) error {
	for attempt := 0; attempt < c.policy.MaxAttempts; attempt++ {
		err := call()
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrRateLimited) {
			return fmt.Errorf("%s: %w: %w", method, ErrCallFailed, err)
		}

		if attempt == c.policy.MaxAttempts-1 {
			break
		}

		wait := c.policy.Backoff(attempt)
		c.logger.Warnw("chat api rate limited", "method", method, "attempt", attempt+1, "wait", wait)

		if err := c.sleep(ctx, wait); err != nil {
			return fmt.Errorf("%s: %w: %w", method, ErrCallFailed, err)
		}
	}

	return fmt.Errorf("%s: %w: still rate limited after %d attempts", method, ErrCallFailed, c.policy.MaxAttempts)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
