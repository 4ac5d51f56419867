package app

import (
	"github.com/adanyl0v/event-planner/internal/config"
	"github.com/adanyl0v/event-planner/internal/planner"
	"github.com/adanyl0v/event-planner/internal/services"
)

var (
	globalPlanner          *planner.Planner
	globalAuthService      services.AuthService
	globalSessionService   services.SessionService
	globalBookingService   services.BookingService
	globalChecklistService services.ChecklistService
)

func InitServices() {
	jwtCfg := config.Global().JWT
	location := plannerLocation()

	globalPlanner = planner.New(planner.RealClock{})
	globalAuthService = services.NewAuthService(
		componentLogger("auth"),
		globalPostgresPool,
		jwtCfg.Issuer,
		[]byte(jwtCfg.SigningKey),
		jwtCfg.AccessTokenTTL,
		jwtCfg.RefreshTokenTTL,
	)
	globalSessionService = services.NewSessionService(componentLogger("sessions"), globalPostgresPool)
	globalBookingService = services.NewBookingService(componentLogger("bookings"), globalPostgresPool)
	globalChecklistService = services.NewChecklistService(
		componentLogger("checklists"),
		globalBookingService,
		globalPlanner,
		location,
	)

	globalLogger.Info().
		Str("location", location.String()).
		Msg("initialized services")
}
