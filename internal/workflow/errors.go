package workflow

import "errors"

var (
	ErrStalePoll     = errors.New("latest poll is too old")
	ErrNotDecided    = errors.New("latest poll has no decision yet")
	ErrUnknownOption = errors.New("decided option is not in the option table")
)
