package chat

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrRateLimited is returned by adapters when the platform asks to slow down.
	ErrRateLimited = errors.New("rate limited")
	// ErrCallFailed wraps every chat failure that survives the retry policy.
	ErrCallFailed = errors.New("chat api call failed")
)

type Message struct {
	Channel   string
	Timestamp string
	PostedAt  time.Time
}

type Reaction struct {
	Label   string
	UserIDs []string
	Count   int
}

type Client interface {
	PostMessage(ctx context.Context, channel, text string) (Message, error)
	GetReactions(ctx context.Context, channel, timestamp string) ([]Reaction, error)
	AddReaction(ctx context.Context, channel, timestamp, label string) error
}
