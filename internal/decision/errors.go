package decision

import "errors"

var (
	ErrNoQuorum        = errors.New("nobody voted for a food option")
	ErrNoEligiblePayer = errors.New("no voter maps to a ledger member")
)
