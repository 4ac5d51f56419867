package planner

import "slices"

// RelevanceWindowDays is how far ahead the checklist looks.
const RelevanceWindowDays = 60

// DaysUntilDeadline is the number of days left before def is due.
// Negative values mean the deadline has passed.
func DaysUntilDeadline(def TaskDefinition, daysUntilEvent int) int {
	return daysUntilEvent - def.DeadlineOffsetDays
}

// SelectRelevantTasks returns the definitions that are due within the
// relevance window or already overdue, soonest first. Ties keep catalog order.
func SelectRelevantTasks(defs []TaskDefinition, daysUntilEvent int) []TaskDefinition {
	relevant := make([]TaskDefinition, 0, len(defs))
	for _, def := range defs {
		n := DaysUntilDeadline(def, daysUntilEvent)
		if n <= RelevanceWindowDays || n < 0 {
			relevant = append(relevant, def)
		}
	}

	slices.SortStableFunc(relevant, func(a, b TaskDefinition) int {
		return DaysUntilDeadline(a, daysUntilEvent) - DaysUntilDeadline(b, daysUntilEvent)
	})
	return relevant
}
