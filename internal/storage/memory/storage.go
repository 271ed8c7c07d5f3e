package memory

import (
	"context"
	"sync"

	"github.com/mcrae/bullscows/internal/model"
	"github.com/mcrae/bullscows/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts map[string]*model.Account
	stats    map[string][]model.StatRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts: make(map[string]*model.Account),
		stats:    make(map[string][]model.StatRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *account
	s.accounts[account.Username] = &copied
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

// Stat operations

func (s *Storage) AppendStat(ctx context.Context, username string, record model.StatRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[username] = append(s.stats[username], record)
	return nil
}

func (s *Storage) GetStats(ctx context.Context, username string) ([]model.StatRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.stats[username]
	result := make([]model.StatRecord, len(records))
	copy(result, records)
	return result, nil
}
