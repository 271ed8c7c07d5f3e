package stats

import (
	"context"
	"log/slog"

	"github.com/mcrae/bullscows/internal/dependencies/clock"
	"github.com/mcrae/bullscows/internal/model"
	"github.com/mcrae/bullscows/internal/storage"
)

// Service records round outcomes and answers time-windowed queries over
// a player's history. Callers are responsible for not recording guest
// or cancelled rounds.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new stats Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// RecordOutcome appends a stat record for a won round, stamped with the
// current time. The storage layer persists the updated history before
// this returns.
func (s *Service) RecordOutcome(ctx context.Context, username string, outcome model.RoundOutcome) error {
	record := model.StatRecord{
		Attempts:  outcome.Attempts,
		Duration:  outcome.Duration.Seconds(),
		Timestamp: s.clock.Now(),
	}

	if err := s.storage.AppendStat(ctx, username, record); err != nil {
		s.logger.Error("failed to record outcome",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.logger.Info("outcome recorded",
		slog.String("username", username),
		slog.Int("attempts", record.Attempts),
		slog.Float64("duration_seconds", record.Duration),
	)

	return nil
}

// QueryRecent returns the player's records in insertion order. A
// windowDays of 0 returns the full history; a positive window keeps
// only records strictly newer than now minus that many days. Unknown
// players yield an empty history, not an error.
func (s *Service) QueryRecent(ctx context.Context, username string, windowDays int) ([]model.StatRecord, error) {
	records, err := s.storage.GetStats(ctx, username)
	if err != nil {
		return nil, err
	}

	if windowDays <= 0 {
		return records, nil
	}

	cutoff := s.clock.Now().AddDate(0, 0, -windowDays)
	recent := make([]model.StatRecord, 0, len(records))
	for _, record := range records {
		if record.Timestamp.After(cutoff) {
			recent = append(recent, record)
		}
	}
	return recent, nil
}
