package model

import "time"

// RoundID uniquely identifies a round (used for log correlation)
type RoundID string

// RoundState represents the current phase of a round
type RoundState string

const (
	RoundStateAwaitingInput RoundState = "awaiting_input" // Waiting for the next guess
	RoundStateWon           RoundState = "won"            // Secret fully matched
	RoundStateCancelled     RoundState = "cancelled"      // Player quit mid-round
)

// Digit counts for the three difficulty levels
const (
	DigitsEasy   = 3
	DigitsMedium = 4
	DigitsHard   = 5
)

// Score is the feedback for a single guess
type Score struct {
	Bulls int // Right digit, right position
	Cows  int // Right digit, wrong position
}

// RoundOutcome is the result of a won round. Cancelled rounds produce
// no outcome.
type RoundOutcome struct {
	Attempts int
	Duration time.Duration
}
