// Package logging builds the process-wide slog logger
package logging

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// New returns a logger writing to w in the configured format and level
func New(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid log level %q", cfg.Level)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.Format {
	case config.FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case config.FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, errors.InvalidArgumentf("invalid log format %q", cfg.Format)
	}
}

// Setup installs the logger as the slog default
func Setup(w io.Writer, cfg config.LogConfig) error {
	logger, err := New(w, cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}
