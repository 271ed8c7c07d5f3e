package storage

import (
	"context"

	"github.com/mcrae/bullscows/internal/model"
)

// Storage defines the interface for data persistence.
//
// Implementations are write-through: every mutating call completes its
// durable write before returning.
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, username string) (*model.Account, error)

	// Stat operations. GetStats returns records in insertion order;
	// an unknown username yields an empty slice, not an error.
	AppendStat(ctx context.Context, username string, record model.StatRecord) error
	GetStats(ctx context.Context, username string) ([]model.StatRecord, error)
}
