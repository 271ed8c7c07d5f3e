package model

import "time"

// StatRecord is one completed round in a player's history.
// Duration is in seconds; Timestamp marshals as RFC 3339 so the stored
// document round-trips.
type StatRecord struct {
	Attempts  int       `json:"attempts"`
	Duration  float64   `json:"duration"`
	Timestamp time.Time `json:"timestamp"`
}
