package planner

type UrgencyStatus string

const (
	UrgencyCompleted UrgencyStatus = "completed"
	UrgencyOverdue   UrgencyStatus = "overdue"
	UrgencyUrgent    UrgencyStatus = "urgent"
	UrgencySoon      UrgencyStatus = "soon"
	UrgencyUpcoming  UrgencyStatus = "upcoming"
)

const (
	urgentWithinDays = 7
	soonWithinDays   = 14
)

// Severity orders open statuses from least to most pressing.
// Completed tasks have no severity.
func (s UrgencyStatus) Severity() int {
	switch s {
	case UrgencyOverdue:
		return 4
	case UrgencyUrgent:
		return 3
	case UrgencySoon:
		return 2
	case UrgencyUpcoming:
		return 1
	default:
		return 0
	}
}

// Classify labels a task. Completion always wins over timing.
func Classify(def TaskDefinition, completed bool, daysUntilEvent int) UrgencyStatus {
	if completed {
		return UrgencyCompleted
	}

	n := DaysUntilDeadline(def, daysUntilEvent)
	switch {
	case n < 0:
		return UrgencyOverdue
	case n <= urgentWithinDays:
		return UrgencyUrgent
	case n <= soonWithinDays:
		return UrgencySoon
	default:
		return UrgencyUpcoming
	}
}
