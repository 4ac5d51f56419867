package planner

// RuntimeTask is a catalog entry evaluated against one booking at one instant.
type RuntimeTask struct {
	TaskDefinition `yaml:",inline"`

	Completed         bool          `json:"completed" yaml:"completed"`
	DaysUntilDeadline int           `json:"days_until_deadline" yaml:"days_until_deadline"`
	UrgencyStatus     UrgencyStatus `json:"urgency_status" yaml:"urgency_status"`
	DeadlineText      string        `json:"deadline_text" yaml:"deadline_text"`
}

// Groups are the display buckets of a checklist. Tasks classified as soon
// are shown with the upcoming ones.
type Groups struct {
	Overdue   []RuntimeTask `json:"overdue" yaml:"overdue"`
	Urgent    []RuntimeTask `json:"urgent" yaml:"urgent"`
	Upcoming  []RuntimeTask `json:"upcoming" yaml:"upcoming"`
	Completed []RuntimeTask `json:"completed" yaml:"completed"`
}

func (g Groups) Len() int {
	return len(g.Overdue) + len(g.Urgent) + len(g.Upcoming) + len(g.Completed)
}

// GroupTasks buckets tasks by their urgency status, keeping input order
// inside each bucket.
func GroupTasks(tasks []RuntimeTask) Groups {
	groups := Groups{
		Overdue:   []RuntimeTask{},
		Urgent:    []RuntimeTask{},
		Upcoming:  []RuntimeTask{},
		Completed: []RuntimeTask{},
	}

	for _, task := range tasks {
		switch task.UrgencyStatus {
		case UrgencyCompleted:
			groups.Completed = append(groups.Completed, task)
		case UrgencyOverdue:
			groups.Overdue = append(groups.Overdue, task)
		case UrgencyUrgent:
			groups.Urgent = append(groups.Urgent, task)
		default:
			groups.Upcoming = append(groups.Upcoming, task)
		}
	}
	return groups
}
