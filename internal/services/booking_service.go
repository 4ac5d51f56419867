package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/event-planner/internal/models"
	"github.com/adanyl0v/event-planner/internal/planner"
)

// Columns shared by every booking select. Completed task ids are
// aggregated in completion order.
const selectBookingsQuery = `
SELECT b.id,
       b.user_id,
       b.event_type,
       b.event_date,
       b.venue,
       b.notes,
       b.created_at,
       b.updated_at,
       COALESCE(array_agg(bt.task_id ORDER BY bt.completed_at)
                FILTER (WHERE bt.task_id IS NOT NULL), '{}') AS completed_task_ids
FROM bookings b
LEFT JOIN booking_tasks bt ON bt.booking_id = b.id
`

type bookingServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewBookingService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) BookingService {
	return &bookingServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *bookingServiceImpl) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if !models.IsValidEventType(booking.EventType) {
		s.logger.Error().
			Str("event_type", booking.EventType).
			Msg("invalid event type")
		return nil, ErrInvalidEventType
	}

	now := time.Now()
	booking = &models.Booking{
		UserID:           booking.UserID,
		EventType:        booking.EventType,
		EventDate:        planner.EventDateIn(booking.EventDate, time.UTC),
		Venue:            booking.Venue,
		Notes:            booking.Notes,
		CompletedTaskIDs: []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	bookingUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate booking uuid")
		return nil, err
	}
	booking.ID = bookingUUID.String()

	const insertBookingQuery = `
INSERT INTO bookings (id,
                      user_id,
                      event_type,
                      event_date,
                      venue,
                      notes,
                      created_at,
                      updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err = s.pgPool.Exec(
		ctx,
		insertBookingQuery,
		booking.ID,
		booking.UserID,
		booking.EventType,
		pgtype.Date{Time: booking.EventDate, Valid: true},
		booking.Venue,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", booking.UserID).
			Msg("failed to insert booking")
		return nil, err
	}
	s.logger.Debug().
		Str("booking_id", booking.ID).
		Msg("inserted booking")

	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("user_id", booking.UserID).
		Str("event_type", booking.EventType).
		Msg("created booking")
	return booking, nil
}

func (s *bookingServiceImpl) GetBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	const selectBookingByIDQuery = selectBookingsQuery + `
WHERE b.id = $1 AND b.user_id = $2
GROUP BY b.id
`
	booking, err := scanBooking(s.pgPool.QueryRow(
		ctx,
		selectBookingByIDQuery,
		bookingID,
		userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			s.logger.Error().
				Str("booking_id", bookingID).
				Str("user_id", userID).
				Msg("booking not found")
			return nil, ErrBookingNotFound
		}

		s.logger.Error().
			Err(err).
			Str("booking_id", bookingID).
			Msg("failed to select booking by id")
		return nil, err
	}
	s.logger.Debug().
		Str("booking_id", booking.ID).
		Int("completed", len(booking.CompletedTaskIDs)).
		Msg("selected booking by id")

	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("user_id", userID).
		Msg("booking found")
	return booking, nil
}

func (s *bookingServiceImpl) GetBookingsByUserID(ctx context.Context, userID string, offset, limit uint32) ([]*models.Booking, error) {
	if limit == 0 {
		limit = 32
	}

	const selectBookingsByUserIDQuery = selectBookingsQuery + `
WHERE b.user_id = $1
GROUP BY b.id
ORDER BY b.event_date, b.created_at
LIMIT $2 OFFSET $3
`
	rows, err := s.pgPool.Query(
		ctx,
		selectBookingsByUserIDQuery,
		userID,
		limit,
		offset,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select bookings by user id")
		return nil, err
	}

	bookings, err := s.collectBookings(rows, int(limit))
	if err != nil {
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(bookings)).
		Str("user_id", userID).
		Msg("selected bookings by user id")

	s.logger.Info().
		Int("count", len(bookings)).
		Str("user_id", userID).
		Msg("bookings found")
	return bookings, nil
}

func (s *bookingServiceImpl) GetUpcomingBookings(ctx context.Context, from time.Time) ([]*models.Booking, error) {
	const selectUpcomingBookingsQuery = selectBookingsQuery + `
WHERE b.event_date >= $1
GROUP BY b.id
ORDER BY b.event_date
`
	rows, err := s.pgPool.Query(
		ctx,
		selectUpcomingBookingsQuery,
		pgtype.Date{Time: planner.EventDateIn(from, time.UTC), Valid: true},
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select upcoming bookings")
		return nil, err
	}

	bookings, err := s.collectBookings(rows, 0)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("count", len(bookings)).
		Time("from", from).
		Msg("upcoming bookings found")
	return bookings, nil
}

func (s *bookingServiceImpl) SetTaskCompletion(ctx context.Context, params SetTaskCompletionParams) error {
	toggle := planner.Toggle{TaskID: params.TaskID, Completed: params.Completed}
	err := toggle.Validate()
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", params.TaskID).
			Msg("unknown task")
		return err
	}

	err = inTx(ctx, s.pgPool, s.logger, func(tx pgx.Tx) error {
		return s.setTaskCompletion(ctx, tx, params)
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("booking_id", params.BookingID).
		Str("task_id", params.TaskID).
		Bool("completed", params.Completed).
		Msg("set task completion")
	return nil
}

// setTaskCompletion locks the booking, checking ownership, and writes the
// booking_tasks row.
func (s *bookingServiceImpl) setTaskCompletion(ctx context.Context, tx pgx.Tx, params SetTaskCompletionParams) error {
	const lockBookingQuery = `
SELECT id
FROM bookings
WHERE id = $1 AND user_id = $2
FOR UPDATE
`
	var bookingID string
	err := tx.QueryRow(
		ctx,
		lockBookingQuery,
		params.BookingID,
		params.UserID,
	).Scan(&bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			s.logger.Error().
				Str("booking_id", params.BookingID).
				Str("user_id", params.UserID).
				Msg("booking not found")
			return ErrBookingNotFound
		}

		s.logger.Error().
			Err(err).
			Str("booking_id", params.BookingID).
			Msg("failed to lock booking")
		return err
	}

	var tag pgconn.CommandTag
	if params.Completed {
		const insertBookingTaskQuery = `
INSERT INTO booking_tasks (booking_id,
                           task_id,
                           completed_at)
VALUES ($1, $2, $3)
ON CONFLICT (booking_id, task_id) DO NOTHING
`
		tag, err = tx.Exec(
			ctx,
			insertBookingTaskQuery,
			bookingID,
			params.TaskID,
			time.Now(),
		)
	} else {
		const deleteBookingTaskQuery = `
DELETE FROM booking_tasks
WHERE booking_id = $1 AND task_id = $2
`
		tag, err = tx.Exec(
			ctx,
			deleteBookingTaskQuery,
			bookingID,
			params.TaskID,
		)
	}
	if err != nil {
		if hasPgCode(err, pgerrcode.ForeignKeyViolation) {
			s.logger.Error().
				Str("booking_id", bookingID).
				Msg("booking removed while toggling task")
			return ErrBookingNotFound
		}

		s.logger.Error().
			Err(err).
			Str("booking_id", bookingID).
			Str("task_id", params.TaskID).
			Msg("failed to write booking task")
		return err
	}
	s.logger.Debug().
		Str("booking_id", bookingID).
		Str("task_id", params.TaskID).
		Int64("affected", tag.RowsAffected()).
		Msg("wrote booking task")

	const touchBookingQuery = `
UPDATE bookings
SET updated_at = $1
WHERE id = $2
`
	_, err = tx.Exec(ctx, touchBookingQuery, time.Now(), bookingID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("booking_id", bookingID).
			Msg("failed to update booking")
		return err
	}
	return nil
}

func (s *bookingServiceImpl) collectBookings(rows pgx.Rows, capacity int) ([]*models.Booking, error) {
	defer rows.Close()

	bookings := make([]*models.Booking, 0, capacity)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan booking")
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	err := rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	return bookings, nil
}

func scanBooking(row pgx.Row) (*models.Booking, error) {
	booking := new(models.Booking)
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.EventType,
		&booking.EventDate,
		&booking.Venue,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.CompletedTaskIDs,
	)
	if err != nil {
		return nil, err
	}
	return booking, nil
}
