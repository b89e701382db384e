package config

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging applies the configured level to the global zerolog logger.
// Interactive front ends pass human=true to get a console writer on stderr,
// keeping stdout for the game itself.
func SetupLogging(c *Config, human bool) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if human {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
	if err != nil {
		log.Warn().Str("level", c.LogLevel).Msg("unknown log level, using info")
	}
}
