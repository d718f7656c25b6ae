// Package main is the entry point for the arena command line
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/logging"
)

var (
	configPath string
	logLevel   string
	storage    string
	redisAddr  string
)

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Turn-based monster battles with a shared reward pool",
	Long: `Arena runs the battle game: players fight catalog monsters, earn coins
from a shared daily-capped reward pool and climb the rating table.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&storage, "storage", "", "storage backend (memory, redis)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "redis address for the redis backend")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(poolCmd)
}

// loadConfig layers command line flags over the file and environment
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("storage") {
		cfg.Storage.Backend = storage
	}
	if flags.Changed("redis-addr") {
		cfg.Storage.RedisAddr = redisAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logging.Setup(os.Stderr, cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}
