// Package logging builds the CLI's logrus logger from configuration.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/spath/internal/config"
)

// New builds a logrus.Logger configured according to the provided logging
// config. Output goes to out, or to stderr when out is nil, so that the
// program's results on stdout stay machine-readable.
func New(cfg config.LoggingConfig, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(out)
	// Unparseable levels are rejected by config.Validate; fall back to info
	// for configs that skipped it.
	level, err := parseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return logger
}

// parseLevel accepts every logrus level name, case-insensitively.
func parseLevel(level string) (logrus.Level, error) {
	return logrus.ParseLevel(strings.TrimSpace(level))
}
