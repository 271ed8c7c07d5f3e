package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/mcrae/bullscows/internal/model"
	"github.com/mcrae/bullscows/internal/storage"
)

// Storage persists accounts and stats as two whole-document JSON files,
// mirroring their in-memory maps. Both documents are read fully at
// construction and rewritten fully on every mutation, so the files are
// always a complete snapshot of the store.
type Storage struct {
	mu sync.Mutex

	accountsPath string
	statsPath    string

	accounts map[string]accountDoc
	stats    map[string][]model.StatRecord
}

// accountDoc is the stored shape of one account, keyed by username in
// the accounts document.
type accountDoc struct {
	Password string   `json:"password"`
	Games    []string `json:"games"`
}

// New creates a JSON file storage backed by the given paths. Missing
// files are initialized to empty documents rather than reported as
// errors.
func New(accountsPath, statsPath string) (*Storage, error) {
	s := &Storage{
		accountsPath: accountsPath,
		statsPath:    statsPath,
		accounts:     make(map[string]accountDoc),
		stats:        make(map[string][]model.StatRecord),
	}

	if err := loadDocument(accountsPath, &s.accounts); err != nil {
		return nil, err
	}
	if err := loadDocument(statsPath, &s.stats); err != nil {
		return nil, err
	}

	return s, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := accountDoc{
		Password: account.Password,
		Games:    account.Games,
	}
	if doc.Games == nil {
		doc.Games = []string{}
	}
	s.accounts[account.Username] = doc

	return writeDocument(s.accountsPath, s.accounts)
}

func (s *Storage) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.accounts[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}

	return &model.Account{
		Username: username,
		Password: doc.Password,
		Games:    doc.Games,
	}, nil
}

// Stat operations

func (s *Storage) AppendStat(ctx context.Context, username string, record model.StatRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats[username] = append(s.stats[username], record)

	return writeDocument(s.statsPath, s.stats)
}

func (s *Storage) GetStats(ctx context.Context, username string) ([]model.StatRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.stats[username]
	result := make([]model.StatRecord, len(records))
	copy(result, records)
	return result, nil
}

// loadDocument reads a whole JSON document into target, creating an
// empty document first if the file does not exist.
func loadDocument(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		if err := writeDocument(path, target); err != nil {
			return err
		}
		return nil
	}
	return json.Unmarshal(data, target)
}

// writeDocument rewrites the whole JSON document at path
func writeDocument(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0o644)
}
