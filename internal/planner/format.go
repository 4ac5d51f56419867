package planner

import "fmt"

// FormatDeadline renders how far def's deadline is from today.
func FormatDeadline(def TaskDefinition, daysUntilEvent int) string {
	return FormatDaysUntil(DaysUntilDeadline(def, daysUntilEvent))
}

func FormatDaysUntil(n int) string {
	switch {
	case n < 0:
		return fmt.Sprintf("%d days overdue", -n)
	case n == 0:
		return "Due today"
	case n == 1:
		return "Due tomorrow"
	case n <= 7:
		return fmt.Sprintf("Due in %d days", n)
	case n <= 30:
		return "Due in " + Pluralize(n/7, "week")
	default:
		return "Due in " + Pluralize(n/30, "month")
	}
}

// Pluralize renders n with unit, adding an s unless n is 1.
func Pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
