package services

import "errors"

// ErrInvalidInput marks validation failures of caller supplied data.
var ErrInvalidInput = errors.New("invalid input")
