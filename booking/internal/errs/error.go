package errs

import (
	"errors"
)

// Every failure the core can produce is user-recoverable; the handler maps
// these to HTTP statuses and never retries on behalf of the caller.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidRange      = errors.New("start date must be before end date")
	ErrZeroLengthRange   = errors.New("same-day range is not allowed")
	ErrOverlapConflict   = errors.New("overlaps an existing availability window")
	ErrOutOfAvailability = errors.New("selected dates are not available")
	ErrDoubleBooked      = errors.New("conflict with an existing booking")
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrBusy              = errors.New("unit is busy, retry later")
)
