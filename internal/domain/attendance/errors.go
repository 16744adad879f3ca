package attendance

import "errors"

// Attendance domain errors
var (
	ErrUnknownAction = errors.New("unknown attendance action")
	ErrEventNotFound = errors.New("attendance event not found")
	ErrInvalidMonth  = errors.New("month must be formatted as YYYY-MM")
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
)
