package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/event-planner/internal/models"
	"github.com/adanyl0v/event-planner/internal/planner"
)

type checklistServiceImpl struct {
	logger   zerolog.Logger
	bookings BookingService
	planner  *planner.Planner
	location *time.Location
}

// NewChecklistService evaluates checklists of stored bookings. Event dates
// are anchored at midnight in location.
func NewChecklistService(
	logger zerolog.Logger,
	bookingService BookingService,
	p *planner.Planner,
	location *time.Location,
) ChecklistService {
	if location == nil {
		location = time.UTC
	}
	return &checklistServiceImpl{
		logger:   logger,
		bookings: bookingService,
		planner:  p,
		location: location,
	}
}

func (s *checklistServiceImpl) GetChecklist(ctx context.Context, userID, bookingID string) (*planner.Checklist, error) {
	booking, err := s.bookings.GetBooking(ctx, userID, bookingID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("booking_id", bookingID).
			Msg("failed to get booking")
		return nil, err
	}

	checklist := s.planner.Evaluate(ChecklistInput(booking, s.location))
	s.logger.Debug().
		Str("booking_id", booking.ID).
		Int("days_until_event", checklist.DaysUntilEvent).
		Int("overdue", len(checklist.Groups.Overdue)).
		Int("urgent", len(checklist.Groups.Urgent)).
		Msg("evaluated checklist")

	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("user_id", userID).
		Msg("checklist computed")
	return &checklist, nil
}

func (s *checklistServiceImpl) ToggleTask(ctx context.Context, userID, bookingID string, toggle planner.Toggle) (*planner.Checklist, error) {
	err := s.bookings.SetTaskCompletion(ctx, SetTaskCompletionParams{
		UserID:    userID,
		BookingID: bookingID,
		TaskID:    toggle.TaskID,
		Completed: toggle.Completed,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("booking_id", bookingID).
			Str("task_id", toggle.TaskID).
			Msg("failed to set task completion")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", bookingID).
		Str("task_id", toggle.TaskID).
		Bool("completed", toggle.Completed).
		Msg("toggled task")
	return s.GetChecklist(ctx, userID, bookingID)
}

// ChecklistInput converts a stored booking into planner input.
func ChecklistInput(booking *models.Booking, location *time.Location) planner.Input {
	return planner.Input{
		EventDate:        planner.EventDateIn(booking.EventDate, location),
		EventType:        booking.EventType,
		CompletedTaskIDs: booking.CompletedTaskIDs,
	}
}
