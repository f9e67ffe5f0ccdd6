package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type PollState string

const (
	PollStateUnopened PollState = "unopened"
	PollStateOpen     PollState = "open"
	PollStateDecided  PollState = "decided"
	PollStateReminded PollState = "reminded"
)

func (s PollState) String() string {
	return string(s)
}

func (s PollState) CapitalizedString() string {
	return cases.Title(language.English).String(s.String())
}

const DateLayout = "2006-01-02"

type Poll struct {
	tableName struct{} `pg:"polls"`

	ID                 int64      `json:"id" pg:",pk"`
	ChannelID          string     `json:"channel_id" pg:",notnull"`
	Date               time.Time  `json:"date" pg:"type:date,notnull"`
	Timestamp          string     `json:"timestamp" pg:",notnull"`
	PostedAt           time.Time  `json:"posted_at" pg:",notnull"`
	SecondaryTimestamp string     `json:"secondary_timestamp"`
	Choice             string     `json:"choice"`
	DecidedAt          *time.Time `json:"decided_at"`
	RemindedAt         *time.Time `json:"reminded_at"`
	CreatedAt          time.Time  `json:"created_at" pg:"default:now()"`
}

func (p *Poll) State() PollState {
	switch {
	case p == nil:
		return PollStateUnopened
	case p.RemindedAt != nil && p.Choice != "":
		return PollStateReminded
	case p.Choice != "":
		return PollStateDecided
	default:
		return PollStateOpen
	}
}

// IsStale reports whether the poll message is older than window at now.
func (p *Poll) IsStale(now time.Time, window time.Duration) bool {
	return p.PostedAt.Before(now.Add(-window))
}

// Day truncates t to its calendar date in location, as stored in Poll.Date.
func Day(t time.Time, location *time.Location) time.Time {
	year, month, day := t.In(location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
