package errors

import "errors"

// ErrTimeConflict is returned when a proposal overlaps an admitted
// booking for the same room and date.
var ErrTimeConflict = errors.New("booking time conflicts with existing booking")
