package bficonfigs

import (
	"os"
	"path/filepath"

	"github.com/alape/bfi/configs"
	"github.com/alape/bfi/logs"
)

type HistoryFile string

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if path := configs.First[string](loader, "history_file"); path != "" {
		return HistoryFile(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return HistoryFile(filepath.Join(home, ".bfi_history"))
}

// LogLevel is the configured log level. Providing it applies it, unless a level flag was given.
type LogLevel string

func (Module) LogLevel(
	loader configs.Loader,
	logger logs.Logger,
) LogLevel {
	level := configs.First[string](loader, "log_level")
	if level == "" || logs.LevelFromFlags() {
		return LogLevel(level)
	}
	if err := logs.SetLevel(level); err != nil {
		logger.Warn("bad log level", "level", level, "error", err)
	}
	return LogLevel(level)
}
