package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Round errors
	ErrInvalidDigitCount = errors.New("digit count must be between 2 and 10")
	ErrRoundFinished     = errors.New("round is already finished")
)
