package app

import (
	"context"

	"github.com/adanyl0v/event-planner/internal/config"
	"github.com/adanyl0v/event-planner/internal/digest"
)

var globalDigest *digest.Service

func MustStartDigest(ctx context.Context) {
	cfg := config.Global().Digest
	if !cfg.Enabled {
		globalLogger.Info().Msg("digest disabled")
		return
	}

	logger := componentLogger("digest")
	globalDigest = digest.NewService(digest.Params{
		Logger:   logger,
		Source:   globalBookingService,
		Planner:  globalPlanner,
		Notifier: digest.NewLogNotifier(logger),
		Location: plannerLocation(),
		Schedule: cfg.Schedule,
	})

	err := globalDigest.Start(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to start digest")
		panic(err)
	}
}

func StopDigest() {
	if globalDigest == nil {
		return
	}
	globalDigest.Stop()
}
