package config

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging configures the global zerolog logger: a human-readable
// console writer when dev is true, structured JSON otherwise, replacing
// the original's env_logger. level, if non-empty, overrides the
// dev/production default ("debug" vs "info") that mirrors
// original_source/src/main.rs's DEFAULT_LOG_LEVEL cfg-gate.
func SetupLogging(dev bool, level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	if dev {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	defaultLevel := zerolog.InfoLevel
	if dev {
		defaultLevel = zerolog.DebugLevel
	}
	if level == "" {
		zerolog.SetGlobalLevel(defaultLevel)
		return
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("config: unrecognized log level, keeping default")
		zerolog.SetGlobalLevel(defaultLevel)
		return
	}
	zerolog.SetGlobalLevel(parsed)
}
