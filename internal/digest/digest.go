// Package digest periodically reports bookings with overdue or urgent
// checklist tasks.
package digest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	rcron "github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/event-planner/internal/models"
	"github.com/adanyl0v/event-planner/internal/planner"
	"github.com/adanyl0v/event-planner/internal/services"
)

// DefaultSchedule runs the digest every day at 08:00.
const DefaultSchedule = "0 0 8 * * *"

var ErrAlreadyStarted = errors.New("digest already started")

type BookingSource interface {
	GetUpcomingBookings(ctx context.Context, from time.Time) ([]*models.Booking, error)
}

type Report struct {
	BookingID      string                `json:"booking_id"`
	UserID         string                `json:"user_id"`
	EventType      string                `json:"event_type"`
	EventDate      time.Time             `json:"event_date"`
	DaysUntilEvent int                   `json:"days_until_event"`
	Overdue        []planner.RuntimeTask `json:"overdue"`
	Urgent         []planner.RuntimeTask `json:"urgent"`
}

type Notifier interface {
	Notify(ctx context.Context, report Report) error
}

type Service struct {
	logger   zerolog.Logger
	source   BookingSource
	planner  *planner.Planner
	notifier Notifier
	location *time.Location
	schedule string

	mu   sync.Mutex
	cron *rcron.Cron
	stop chan struct{}
}

type Params struct {
	Logger   zerolog.Logger
	Source   BookingSource
	Planner  *planner.Planner
	Notifier Notifier
	// Location anchors event dates and the schedule.
	Location *time.Location
	Schedule string
}

func NewService(params Params) *Service {
	if params.Location == nil {
		params.Location = time.UTC
	}
	if params.Schedule == "" {
		params.Schedule = DefaultSchedule
	}
	if params.Planner == nil {
		params.Planner = planner.New(nil)
	}
	if params.Notifier == nil {
		params.Notifier = NewLogNotifier(params.Logger)
	}
	return &Service{
		logger:   params.Logger,
		source:   params.Source,
		planner:  params.Planner,
		notifier: params.Notifier,
		location: params.Location,
		schedule: params.Schedule,
	}
}

// Start schedules RunOnce. The schedule is stopped when ctx is done.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return ErrAlreadyStarted
	}

	c := rcron.New(rcron.WithSeconds(), rcron.WithLocation(s.location))
	_, err := c.AddFunc(s.schedule, func() {
		_, err := s.RunOnce(ctx)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("digest run failed")
		}
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("schedule", s.schedule).
			Msg("failed to schedule digest")
		return fmt.Errorf("invalid digest schedule %q: %w", s.schedule, err)
	}

	c.Start()
	s.cron = c
	stop := make(chan struct{})
	s.stop = stop
	s.logger.Info().
		Str("schedule", s.schedule).
		Str("location", s.location.String()).
		Msg("digest scheduled")

	go func() {
		select {
		case <-ctx.Done():
			s.stopRun(stop)
		case <-stop:
		}
	}()
	return nil
}

// Stop waits for a running digest to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	stop := s.stop
	s.mu.Unlock()
	s.stopRun(stop)
}

// stopRun stops the schedule only if it is still the one started with stop.
func (s *Service) stopRun(stop chan struct{}) {
	s.mu.Lock()
	if stop == nil || s.stop != stop {
		s.mu.Unlock()
		return
	}
	c := s.cron
	s.cron = nil
	s.stop = nil
	close(stop)
	s.mu.Unlock()

	<-c.Stop().Done()
	s.logger.Info().Msg("digest stopped")
}

func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron != nil
}

// RunOnce evaluates every upcoming booking and notifies about those with
// overdue or urgent tasks. It returns the number of reports delivered.
func (s *Service) RunOnce(ctx context.Context) (int, error) {
	now := s.planner.Now().In(s.location)
	bookings, err := s.source.GetUpcomingBookings(ctx, planner.EventDateIn(now, s.location))
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to get upcoming bookings")
		return 0, fmt.Errorf("failed to get upcoming bookings: %w", err)
	}
	s.logger.Debug().
		Int("bookings", len(bookings)).
		Msg("evaluating upcoming bookings")

	var (
		sent int
		errs []error
	)
	for _, booking := range bookings {
		err = ctx.Err()
		if err != nil {
			errs = append(errs, err)
			break
		}

		report, ok := s.report(booking, now)
		if !ok {
			continue
		}

		err = s.notifier.Notify(ctx, report)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("booking_id", booking.ID).
				Msg("failed to notify")
			errs = append(errs, fmt.Errorf("booking %s: %w", booking.ID, err))
			continue
		}
		sent++
	}

	s.logger.Info().
		Int("bookings", len(bookings)).
		Int("reports", sent).
		Msg("digest finished")
	return sent, errors.Join(errs...)
}

func (s *Service) report(booking *models.Booking, now time.Time) (Report, bool) {
	checklist := planner.Evaluate(services.ChecklistInput(booking, s.location), now)
	if checklist.Phase == planner.PhaseEventPassed {
		return Report{}, false
	}
	if len(checklist.Groups.Overdue) == 0 && len(checklist.Groups.Urgent) == 0 {
		return Report{}, false
	}

	return Report{
		BookingID:      booking.ID,
		UserID:         booking.UserID,
		EventType:      checklist.EventType,
		EventDate:      planner.EventDateIn(booking.EventDate, s.location),
		DaysUntilEvent: checklist.DaysUntilEvent,
		Overdue:        checklist.Groups.Overdue,
		Urgent:         checklist.Groups.Urgent,
	}, true
}
