package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adanyl0v/event-planner/internal/models"
	"github.com/adanyl0v/event-planner/internal/planner"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrUserPasswordMismatch = errors.New("user password mismatch")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionExpired       = errors.New("session expired")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidEventType     = errors.New("invalid event type")
)

type AuthService interface {
	// Login authenticates the user by email and password.
	//
	// It deletes all sessions with the same user ID and creates
	// a new session and generates a new JWT token pair.
	//
	// It returns ErrUserNotFound if the user with the given
	// email doesn't exist or ErrUserPasswordMismatch if the
	// given password doesn't match the user's password.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// Refresh updates the session with the given refresh token.
	//
	// It returns ErrSessionNotFound if the session with the
	// given refresh token doesn't exist or ErrSessionExpired
	// if the session is expired.
	Refresh(ctx context.Context, params RefreshParams) (*LoginResult, error)

	// Register a user with the given email and password.
	//
	// It hashes the password, generates a unique ID and creates a
	// session with the given fingerprint and a fresh JWT token pair.
	//
	// It returns ErrUserAlreadyExists if the user
	// with the given email already exists.
	Register(ctx context.Context, params LoginParams) (*LoginResult, error)

	// Logout invalidates all sessions with the given user ID.
	Logout(ctx context.Context, userID string) error

	// ParseJWTToken parses the given JWT token and returns the registered
	// claims or jwt.ErrTokenExpired if the token is expired.
	ParseJWTToken(token string) (*jwt.RegisteredClaims, error)
}

type SessionService interface {
	GetSessionByID(ctx context.Context, sessionID string) (*models.Session, error)
}

type BookingService interface {
	// CreateBooking stores a new booking owned by booking.UserID.
	//
	// It returns ErrInvalidEventType if the event type is not one
	// of the known models.EventType* values.
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)

	// GetBooking returns the booking together with its completed task ids.
	//
	// It returns ErrBookingNotFound if the booking doesn't exist
	// or belongs to another user.
	GetBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error)

	// GetBookingsByUserID returns the user's bookings ordered by event date.
	GetBookingsByUserID(ctx context.Context, userID string, offset, limit uint32) ([]*models.Booking, error)

	// GetUpcomingBookings returns every booking whose event date is on or
	// after from, including completed task ids.
	GetUpcomingBookings(ctx context.Context, from time.Time) ([]*models.Booking, error)

	// SetTaskCompletion marks a checklist task of the booking complete or
	// incomplete. Repeating the same call is a no-op.
	//
	// It returns planner.ErrUnknownTask for task ids outside the catalog
	// and ErrBookingNotFound if the booking isn't the user's.
	SetTaskCompletion(ctx context.Context, params SetTaskCompletionParams) error
}

type ChecklistService interface {
	// GetChecklist evaluates the planning checklist of the booking now.
	GetChecklist(ctx context.Context, userID, bookingID string) (*planner.Checklist, error)

	// ToggleTask persists the toggle and returns the recomputed checklist.
	ToggleTask(ctx context.Context, userID, bookingID string, toggle planner.Toggle) (*planner.Checklist, error)
}

type LoginParams struct {
	Email       string
	Password    string
	Fingerprint string
}

type LoginResult struct {
	UserID                string
	SessionID             string
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

type RefreshParams struct {
	RefreshToken string
	Fingerprint  string
}

type SetTaskCompletionParams struct {
	UserID    string
	BookingID string
	TaskID    string
	Completed bool
}
