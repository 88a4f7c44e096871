package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrRunActive       = errors.New("a generation run is already in progress")
	ErrJobNotRetryable = errors.New("job is not in a retryable state")
)
