// Package config loads runtime configuration from the environment, with an
// optional .env file for local runs. Keys use dots ("log.level") and map to
// underscored environment variables (LOG_LEVEL).
package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Init wires viper to the environment. Call once, before anything reads a
// setting. A missing .env file is the normal case, not an error.
func Init(logger *slog.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using environment and defaults")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	initDefaults()
	viper.AutomaticEnv()
}

// LogLevel translates the configured log level name to a slog level.
// Unknown names fall back to info rather than failing startup.
func LogLevel() slog.Level {
	switch strings.ToLower(viper.GetString("log.level")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
