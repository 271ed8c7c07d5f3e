package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcrae/bullscows/internal/factory"
	redisstorage "github.com/mcrae/bullscows/internal/storage/redis"
)

var (
	cfgPath string
	cfg     *Config
	logger  *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bullscows",
		Short: "Terminal Bulls and Cows number-guessing game",
		Long: `bullscows is a terminal number-guessing game with local accounts and
per-player statistics.

Guess the secret number one attempt at a time: a bull is a correct digit
in the correct position, a cow is a correct digit in the wrong position.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			logger = newLogger(cfg.LogLevel)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (env: BNC_CONFIG)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the application logger. Logs go to stderr so they
// never interleave with the interactive surface on stdout.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newApp wires the application from the loaded config
func newApp() (*factory.App, error) {
	factoryCfg := factory.Config{
		StorageType:  cfg.Storage,
		AccountsPath: cfg.AccountsPath(),
		StatsPath:    cfg.StatsPath(),
		Logger:       logger,
	}

	if cfg.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	return factory.New(factoryCfg)
}
