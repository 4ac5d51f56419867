package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/event-planner/internal/services"
)

type Handler interface {
	HandleLogin(c *gin.Context)
	HandleRefresh(c *gin.Context)
	HandleRegister(c *gin.Context)
	HandleLogout(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleCreateBooking(c *gin.Context)
	HandleGetBookings(c *gin.Context)
	HandleGetBooking(c *gin.Context)

	HandleGetChecklist(c *gin.Context)
	HandleToggleChecklistTask(c *gin.Context)
}

type handlerImpl struct {
	logger     zerolog.Logger
	auth       services.AuthService
	sessions   services.SessionService
	bookings   services.BookingService
	checklists services.ChecklistService
	// location anchors event dates sent by clients.
	location *time.Location
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	sessionService services.SessionService,
	bookingService services.BookingService,
	checklistService services.ChecklistService,
	location *time.Location,
) Handler {
	if location == nil {
		location = time.UTC
	}
	return &handlerImpl{
		logger:     logger,
		auth:       authService,
		sessions:   sessionService,
		bookings:   bookingService,
		checklists: checklistService,
		location:   location,
	}
}

// RegisterRoutes mounts the v1 API on router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router = router.Group("/api/v1")

	authRouter := router.Group("/auth")
	authRouter.POST("/login", h.HandleLogin)
	authRouter.POST("/refresh", h.HandleRefresh)
	authRouter.POST("/register", h.HandleRegister)
	authRouter.POST("/logout", h.HandleAuthMiddleware, h.HandleLogout)

	bookingsRouter := router.Group("/bookings", h.HandleAuthMiddleware)
	bookingsRouter.POST("", h.HandleCreateBooking)
	bookingsRouter.GET("", h.HandleGetBookings)
	bookingsRouter.GET("/:id", h.HandleGetBooking)
	bookingsRouter.GET("/:id/checklist", h.HandleGetChecklist)
	bookingsRouter.PUT("/:id/checklist/:task_id", h.HandleToggleChecklistTask)
}
