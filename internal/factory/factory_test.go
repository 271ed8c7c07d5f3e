package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcrae/bullscows/internal/storage/jsonfile"
	"github.com/mcrae/bullscows/internal/storage/memory"
)

func TestNewDefaultsToJSONFileStorage(t *testing.T) {
	dir := t.TempDir()

	app, err := New(Config{
		AccountsPath: filepath.Join(dir, "users.json"),
		StatsPath:    filepath.Join(dir, "stats.json"),
	})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.IsType(t, &jsonfile.Storage{}, app.Storage)
	assert.NotNil(t, app.RoundController)
	assert.NotNil(t, app.StatsService)
	assert.NotNil(t, app.AccountService)
}

func TestNewMemoryStorage(t *testing.T) {
	app, err := New(Config{StorageType: StorageTypeMemory})
	require.NoError(t, err)

	assert.IsType(t, &memory.Storage{}, app.Storage)
}

func TestNewJSONFileRequiresPaths(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeJSONFile})
	assert.Error(t, err)
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "cassette-tape"})
	assert.Error(t, err)
}

func TestWiredServicesShareStorage(t *testing.T) {
	app, err := New(Config{StorageType: StorageTypeMemory})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, app.AccountService.SignUp(ctx, "player01", "pass123"))

	account, err := app.Storage.GetAccount(ctx, "player01")
	require.NoError(t, err)
	assert.Equal(t, "pass123", account.Password)
}
