package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"meal_poll_bot/internal/db/models"
	"meal_poll_bot/internal/db/repositories"
)

type pollRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewPollRepository returns a PollRepository backed by SQLite.
func NewPollRepository(db *sql.DB) repositories.PollRepository {
	return &pollRepository{
		db:  db,
		now: time.Now,
	}
}

const pollColumns = `id, channel_id, date, timestamp, posted_at, secondary_timestamp, choice, decided_at, reminded_at, created_at`

func (r *pollRepository) Create(ctx context.Context, request *models.Poll) (*models.Poll, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO polls (channel_id, date, timestamp, posted_at, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (channel_id, date) DO NOTHING`,
		request.ChannelID,
		request.Date.Format(models.DateLayout),
		request.Timestamp,
		formatTime(request.PostedAt),
		formatTime(r.now()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert poll: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, repositories.ErrDuplicatePoll
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.getOneByID(ctx, id)
}

func (r *pollRepository) GetOne(ctx context.Context, channelID string, date time.Time) (*models.Poll, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+pollColumns+` FROM polls WHERE channel_id = ? AND date = ?`,
		channelID, date.Format(models.DateLayout),
	)
	return scanPoll(row)
}

func (r *pollRepository) GetLatest(ctx context.Context, channelID string) (*models.Poll, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+pollColumns+` FROM polls WHERE channel_id = ? ORDER BY date DESC, id DESC LIMIT 1`,
		channelID,
	)
	return scanPoll(row)
}

func (r *pollRepository) SetChoice(ctx context.Context, pollID int64, choice, secondaryTimestamp string) (*models.Poll, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE polls
		SET choice = ?, secondary_timestamp = ?, decided_at = ?
		WHERE id = ? AND choice IS NULL`,
		choice,
		nullString(secondaryTimestamp),
		formatTime(r.now()),
		pollID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update poll choice: %w", err)
	}

	return r.getOneByID(ctx, pollID)
}

func (r *pollRepository) MarkReminded(ctx context.Context, pollID int64, remindedAt time.Time) (*models.Poll, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE polls SET reminded_at = ? WHERE id = ?`,
		formatTime(remindedAt), pollID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mark poll reminded: %w", err)
	}

	return r.getOneByID(ctx, pollID)
}

func (r *pollRepository) getOneByID(ctx context.Context, pollID int64) (*models.Poll, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+pollColumns+` FROM polls WHERE id = ?`, pollID)
	return scanPoll(row)
}

func scanPoll(row *sql.Row) (*models.Poll, error) {
	var (
		poll               models.Poll
		date               string
		postedAt           string
		secondaryTimestamp sql.NullString
		choice             sql.NullString
		decidedAt          sql.NullString
		remindedAt         sql.NullString
		createdAt          string
	)

	err := row.Scan(
		&poll.ID,
		&poll.ChannelID,
		&date,
		&poll.Timestamp,
		&postedAt,
		&secondaryTimestamp,
		&choice,
		&decidedAt,
		&remindedAt,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrPollNotFound
	}
	if err != nil {
		return nil, err
	}

	poll.SecondaryTimestamp = secondaryTimestamp.String
	poll.Choice = choice.String

	if poll.Date, err = time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("failed to parse poll date %q: %w", date, err)
	}
	if poll.PostedAt, err = parseTime(postedAt); err != nil {
		return nil, err
	}
	if poll.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if poll.DecidedAt, err = parseNullTime(decidedAt); err != nil {
		return nil, err
	}
	if poll.RemindedAt, err = parseNullTime(remindedAt); err != nil {
		return nil, err
	}

	return &poll, nil
}
