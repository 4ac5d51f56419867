package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/event-planner/internal/models"
	"github.com/adanyl0v/event-planner/internal/planner"
	"github.com/adanyl0v/event-planner/internal/services"
)

type getBookingResponse struct {
	ID               string    `json:"id"`
	EventType        string    `json:"event_type"`
	EventDate        string    `json:"event_date"`
	Venue            string    `json:"venue"`
	Notes            string    `json:"notes"`
	CompletedTaskIDs []string  `json:"completed_task_ids"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newGetBookingResponse(booking *models.Booking) getBookingResponse {
	completed := booking.CompletedTaskIDs
	if completed == nil {
		completed = []string{}
	}
	return getBookingResponse{
		ID:               booking.ID,
		EventType:        booking.EventType,
		EventDate:        booking.EventDate.Format(planner.EventDateLayout),
		Venue:            booking.Venue,
		Notes:            booking.Notes,
		CompletedTaskIDs: completed,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}
}

type createBookingRequest struct {
	EventType string  `json:"event_type" binding:"required,oneof=wedding party corporate other"`
	EventDate string  `json:"event_date" binding:"required"`
	Venue     *string `json:"venue,omitempty" binding:"omitempty,max=255"`
	Notes     *string `json:"notes,omitempty" binding:"omitempty,max=4096"`
}

func (h *handlerImpl) HandleCreateBooking(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req createBookingRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	eventDate, err := planner.ParseEventDate(req.EventDate, h.location)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("event_date", req.EventDate).
			Msg("invalid event date")
		abort(c, newBadRequestError(errInvalidEventDate.Error()))
		return
	}

	booking := models.Booking{
		UserID:    userID,
		EventType: req.EventType,
		EventDate: eventDate,
	}
	if req.Venue != nil {
		booking.Venue = *req.Venue
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}

	created, err := h.bookings.CreateBooking(c, &booking)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create booking")
		switch {
		case errors.Is(err, services.ErrInvalidEventType):
			abort(c, newBadRequestError(services.ErrInvalidEventType.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	h.logger.Info().
		Str("booking_id", created.ID).
		Msg("created booking")
	c.JSON(http.StatusCreated, newGetBookingResponse(created))
}

type getBookingsQuery struct {
	Offset uint32 `form:"offset"`
	Limit  uint32 `form:"limit" binding:"max=100"`
}

func (h *handlerImpl) HandleGetBookings(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var query getBookingsQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind query")
		abort(c, newBadRequestError(errInvalidPagination.Error()))
		return
	}

	bookings, err := h.bookings.GetBookingsByUserID(c, userID, query.Offset, query.Limit)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get bookings")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]getBookingResponse, len(bookings))
	for i, booking := range bookings {
		response[i] = newGetBookingResponse(booking)
	}

	h.logger.Info().
		Int("count", len(response)).
		Msg("fetched bookings")
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetBooking(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	bookingID := c.Param("id")
	booking, err := h.bookings.GetBooking(c, userID, bookingID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("booking_id", bookingID).
			Msg("failed to get booking")
		abortBookingError(c, err)
		return
	}

	h.logger.Info().
		Str("booking_id", booking.ID).
		Msg("fetched booking")
	c.JSON(http.StatusOK, newGetBookingResponse(booking))
}

func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		abort(c, newNotFoundError(services.ErrBookingNotFound.Error()))
	case errors.Is(err, planner.ErrUnknownTask):
		abort(c, newBadRequestError(planner.ErrUnknownTask.Error()))
	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}
