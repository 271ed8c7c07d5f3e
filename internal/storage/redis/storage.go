package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcrae/bullscows/internal/model"
	"github.com/mcrae/bullscows/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Accounts are stored as JSON values; stat histories are append-only
// Redis lists, which preserves insertion order without rewriting the
// whole history on every round.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, accountKey(account.Username), data, 0).Err()
}

func (s *Storage) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	account.Username = username
	return &account, nil
}

// Stat operations

func (s *Storage) AppendStat(ctx context.Context, username string, record model.StatRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return s.client.RPush(ctx, statsKey(username), data).Err()
}

func (s *Storage) GetStats(ctx context.Context, username string) ([]model.StatRecord, error) {
	entries, err := s.client.LRange(ctx, statsKey(username), 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []model.StatRecord{}, nil
		}
		return nil, err
	}

	records := make([]model.StatRecord, 0, len(entries))
	for _, entry := range entries {
		var record model.StatRecord
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
