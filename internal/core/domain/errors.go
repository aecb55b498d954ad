package domain

import "errors"

var ErrNotAuthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidTimeRange = errors.New("end time must be after start time")

// ErrServiceUnreachable replaces any transport-level failure talking to a
// backend service. The raw cause is logged, never shown to the user.
var ErrServiceUnreachable = errors.New("connection error: backend service unreachable")
