package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mcrae/bullscows/internal/factory"
	"github.com/mcrae/bullscows/internal/model"
)

// Config holds CLI configuration
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Storage selects the backend: jsonfile, memory, redis.
	Storage string `koanf:"storage"`

	// DataDir is where the JSON documents live by default.
	DataDir string `koanf:"data_dir"`

	// AccountsFile and StatsFile name the two documents; relative
	// paths resolve under DataDir.
	AccountsFile string `koanf:"accounts_file"`
	StatsFile    string `koanf:"stats_file"`

	// RedisURL configures the redis backend.
	RedisURL string `koanf:"redis_url"`

	// DefaultDigits is the difficulty a session starts with.
	DefaultDigits int `koanf:"default_digits"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "warn",
		Storage:       factory.StorageTypeJSONFile,
		DataDir:       defaultDataDir(),
		AccountsFile:  "users.json",
		StatsFile:     "stats.json",
		RedisURL:      "redis://localhost:6379",
		DefaultDigits: model.DigitsMedium,
	}
}

// LoadConfig builds a Config by layering defaults, an optional YAML
// file, and environment variables.
// Order of precedence (low -> high):
//  1. defaults
//  2. file (YAML), from the --config flag or BNC_CONFIG
//  3. env (prefix BNC_, e.g. BNC_DATA_DIR, BNC_LOG_LEVEL)
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("BNC_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Map env keys like BNC_DATA_DIR -> data_dir (flat keys, keeping
	// underscores to match the koanf tags on the struct)
	envProvider := env.Provider("BNC_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "bnc_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AccountsPath returns the resolved location of the accounts document
func (c *Config) AccountsPath() string {
	return resolveUnder(c.DataDir, c.AccountsFile)
}

// StatsPath returns the resolved location of the stats document
func (c *Config) StatsPath() string {
	return resolveUnder(c.DataDir, c.StatsFile)
}

func resolveUnder(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bullscows"
	}
	return filepath.Join(home, ".bullscows")
}
