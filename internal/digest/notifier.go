package digest

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/event-planner/internal/planner"
)

// LogNotifier writes reports to the log.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, report Report) error {
	n.logger.Warn().
		Str("booking_id", report.BookingID).
		Str("user_id", report.UserID).
		Str("event_date", report.EventDate.Format(planner.EventDateLayout)).
		Int("days_until_event", report.DaysUntilEvent).
		Strs("overdue", taskIDs(report.Overdue)).
		Strs("urgent", taskIDs(report.Urgent)).
		Msg("checklist needs attention")
	return nil
}

func taskIDs(tasks []planner.RuntimeTask) []string {
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}
