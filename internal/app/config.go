package app

import (
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/event-planner/internal/config"
)

func MustReadEnv() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("timezone", cfg.Planner.Timezone).
		Bool("digest", cfg.Digest.Enabled).
		Msg("read env")

	config.SetGlobal(cfg)
}

// plannerLocation is validated by the env reader, so it only fails if the
// config was never read.
func plannerLocation() *time.Location {
	loc, err := config.Global().Planner.Location()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to load planner timezone")
		panic(err)
	}
	return loc
}
