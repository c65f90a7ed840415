package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-term/internal/config"
)

// Setup configures log for the game. The board owns stdout, so when a log
// path is configured every entry goes to a rotated file instead of stderr.
func Setup(log *logrus.Logger, cfg *config.Config) error {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	if cfg.Log.Path == "" {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Development()})
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.Path,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      logLevel,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", cfg.Log.Path, err)
	}
	log.AddHook(hook)
	log.SetOutput(io.Discard)
	return nil
}
