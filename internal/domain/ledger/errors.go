package ledger

import "errors"

var (
	ErrEntryNotFound = errors.New("ledger entry not found")
	ErrInvalidMonth  = errors.New("month must be formatted as YYYY-MM")
)
