package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/event-planner/internal/models"
	"github.com/adanyl0v/event-planner/internal/planner"
)

type fakeBookingService struct {
	bookings map[string]*models.Booking
	calls    []SetTaskCompletionParams
}

func newFakeBookingService(bookings ...*models.Booking) *fakeBookingService {
	f := &fakeBookingService{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		f.bookings[b.ID] = b
	}
	return f
}

func (f *fakeBookingService) CreateBooking(_ context.Context, booking *models.Booking) (*models.Booking, error) {
	f.bookings[booking.ID] = booking
	return booking, nil
}

func (f *fakeBookingService) GetBooking(_ context.Context, userID, bookingID string) (*models.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok || b.UserID != userID {
		return nil, ErrBookingNotFound
	}
	copied := *b
	copied.CompletedTaskIDs = append([]string(nil), b.CompletedTaskIDs...)
	return &copied, nil
}

func (f *fakeBookingService) GetBookingsByUserID(_ context.Context, userID string, _, _ uint32) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingService) GetUpcomingBookings(_ context.Context, from time.Time) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		if !b.EventDate.Before(planner.EventDateIn(from, time.UTC)) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingService) SetTaskCompletion(_ context.Context, params SetTaskCompletionParams) error {
	f.calls = append(f.calls, params)
	if err := (planner.Toggle{TaskID: params.TaskID}).Validate(); err != nil {
		return err
	}
	b, ok := f.bookings[params.BookingID]
	if !ok || b.UserID != params.UserID {
		return ErrBookingNotFound
	}

	ids := make([]string, 0, len(b.CompletedTaskIDs)+1)
	for _, id := range b.CompletedTaskIDs {
		if id != params.TaskID {
			ids = append(ids, id)
		}
	}
	if params.Completed {
		ids = append(ids, params.TaskID)
	}
	b.CompletedTaskIDs = ids
	return nil
}

func newTestChecklistService(t *testing.T, now time.Time, bookings ...*models.Booking) (ChecklistService, *fakeBookingService) {
	t.Helper()
	fake := newFakeBookingService(bookings...)
	svc := NewChecklistService(zerolog.Nop(), fake, planner.New(planner.NewFakeClock(now)), time.UTC)
	return svc, fake
}

func TestChecklistService_GetChecklist(t *testing.T) {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	booking := &models.Booking{
		ID:               "b1",
		UserID:           "u1",
		EventType:        models.EventTypeWedding,
		EventDate:        now.AddDate(0, 0, 200),
		CompletedTaskIDs: []string{"book-venue"},
	}
	svc, _ := newTestChecklistService(t, now, booking)

	checklist, err := svc.GetChecklist(context.Background(), "u1", "b1")
	require.NoError(t, err)

	assert.Equal(t, models.EventTypeWedding, checklist.EventType)
	assert.Equal(t, 200, checklist.DaysUntilEvent)
	require.Len(t, checklist.Groups.Completed, 1)
	assert.Equal(t, "book-venue", checklist.Groups.Completed[0].ID)
	assert.Len(t, checklist.Groups.Overdue, 3)
}

func TestChecklistService_GetChecklistOtherUser(t *testing.T) {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	svc, _ := newTestChecklistService(t, now, &models.Booking{ID: "b1", UserID: "u1", EventDate: now})

	_, err := svc.GetChecklist(context.Background(), "u2", "b1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestChecklistService_ToggleTaskRecomputes(t *testing.T) {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	booking := &models.Booking{
		ID:        "b1",
		UserID:    "u1",
		EventType: models.EventTypeWedding,
		EventDate: now.AddDate(0, 0, 200),
	}
	svc, fake := newTestChecklistService(t, now, booking)
	ctx := context.Background()

	checklist, err := svc.ToggleTask(ctx, "u1", "b1", planner.Toggle{TaskID: "book-dj", Completed: true})
	require.NoError(t, err)
	require.Len(t, checklist.Groups.Completed, 1)
	assert.Equal(t, "book-dj", checklist.Groups.Completed[0].ID)

	checklist, err = svc.ToggleTask(ctx, "u1", "b1", planner.Toggle{TaskID: "book-dj", Completed: false})
	require.NoError(t, err)
	assert.Empty(t, checklist.Groups.Completed)

	require.Len(t, fake.calls, 2)
	assert.Equal(t, SetTaskCompletionParams{UserID: "u1", BookingID: "b1", TaskID: "book-dj", Completed: true}, fake.calls[0])
}

func TestChecklistService_ToggleUnknownTask(t *testing.T) {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	svc, _ := newTestChecklistService(t, now, &models.Booking{ID: "b1", UserID: "u1", EventDate: now})

	_, err := svc.ToggleTask(context.Background(), "u1", "b1", planner.Toggle{TaskID: "feed-the-swans", Completed: true})
	assert.ErrorIs(t, err, planner.ErrUnknownTask)
}

func TestChecklistInput_AnchorsDateInLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	booking := &models.Booking{
		EventType:        models.EventTypeParty,
		EventDate:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		CompletedTaskIDs: []string{"book-dj"},
	}

	in := ChecklistInput(booking, tokyo)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, tokyo), in.EventDate)
	assert.Equal(t, models.EventTypeParty, in.EventType)
	assert.Equal(t, []string{"book-dj"}, in.CompletedTaskIDs)
}
