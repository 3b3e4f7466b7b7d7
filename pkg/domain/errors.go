package domain

import "errors"

// ErrUnknownCategory is returned when a category name is not one of Categories().
var ErrUnknownCategory = errors.New("unknown category")

// ErrSinkUnavailable is returned when the log file cannot be created or written.
var ErrSinkUnavailable = errors.New("log file unavailable")
