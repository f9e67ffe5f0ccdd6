package repositories

import (
	"context"
	"errors"
	"time"

	"meal_poll_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type pollRepository struct {
	repository
}

type PollRepository interface {
	// Create fails with ErrDuplicatePoll when the channel already has a poll for that day.
	Create(ctx context.Context, poll *models.Poll) (*models.Poll, error)
	GetOne(ctx context.Context, channelID string, date time.Time) (*models.Poll, error)
	GetLatest(ctx context.Context, channelID string) (*models.Poll, error)
	// SetChoice stores the decision once. A poll that is already decided is returned unchanged.
	SetChoice(ctx context.Context, pollID int64, choice, secondaryTimestamp string) (*models.Poll, error)
	MarkReminded(ctx context.Context, pollID int64, remindedAt time.Time) (*models.Poll, error)
}

func NewPollRepository(db *pg.DB) PollRepository {
	return &pollRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pollRepository) Create(ctx context.Context, request *models.Poll) (*models.Poll, error) {
	result, err := r.db.ModelContext(ctx, request).
		OnConflict("(channel_id, date) DO NOTHING").
		Insert()
	if err != nil {
		return nil, err
	}

	if result.RowsAffected() == 0 {
		return nil, ErrDuplicatePoll
	}

	return r.getOneByID(ctx, request.ID)
}

func (r *pollRepository) GetOne(ctx context.Context, channelID string, date time.Time) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.ModelContext(ctx, poll).
		Where("channel_id = ?", channelID).
		Where("date = ?", date.Format(models.DateLayout)).
		Select()

	return poll, notFound(err)
}

func (r *pollRepository) GetLatest(ctx context.Context, channelID string) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.ModelContext(ctx, poll).
		Where("channel_id = ?", channelID).
		OrderExpr("date DESC, id DESC").
		Limit(1).
		Select()

	return poll, notFound(err)
}

func (r *pollRepository) SetChoice(ctx context.Context, pollID int64, choice, secondaryTimestamp string) (*models.Poll, error) {
	_, err := r.db.ModelContext(ctx, (*models.Poll)(nil)).
		Set("choice = ?", choice).
		Set("secondary_timestamp = NULLIF(?, '')", secondaryTimestamp).
		Set("decided_at = now()").
		Where("id = ?", pollID).
		Where("choice IS NULL").
		Update()
	if err != nil {
		return nil, err
	}

	return r.getOneByID(ctx, pollID)
}

func (r *pollRepository) MarkReminded(ctx context.Context, pollID int64, remindedAt time.Time) (*models.Poll, error) {
	_, err := r.db.ModelContext(ctx, (*models.Poll)(nil)).
		Set("reminded_at = ?", remindedAt).
		Where("id = ?", pollID).
		Update()
	if err != nil {
		return nil, err
	}

	return r.getOneByID(ctx, pollID)
}

func (r *pollRepository) getOneByID(ctx context.Context, pollID int64) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.ModelContext(ctx, poll).
		Where("id = ?", pollID).
		Select()

	return poll, notFound(err)
}

func notFound(err error) error {
	if errors.Is(err, pg.ErrNoRows) {
		return ErrPollNotFound
	}
	return err
}
