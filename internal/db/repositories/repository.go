package repositories

import (
	"errors"

	"github.com/go-pg/pg/v10"
)

var (
	ErrPollNotFound  = errors.New("poll not found")
	ErrDuplicatePoll = errors.New("a poll already exists for this channel and day")
)

type repository struct {
	db *pg.DB
}
