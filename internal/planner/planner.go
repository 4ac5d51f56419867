// Package planner derives the planning checklist of an event.
//
// Everything here is a pure function of the event date, the completed task
// ids and the current instant. Nothing is cached between calls: callers
// re-supply the completed ids after every toggle and get a fresh checklist.
package planner

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownTask = errors.New("unknown task")

type Input struct {
	EventDate        time.Time
	EventType        string
	CompletedTaskIDs []string
}

type Checklist struct {
	EventType        string `json:"event_type" yaml:"event_type"`
	DaysUntilEvent   int    `json:"days_until_event" yaml:"days_until_event"`
	MonthsUntilEvent int    `json:"months_until_event" yaml:"months_until_event"`
	Phase            Phase  `json:"phase" yaml:"phase"`
	Groups           Groups `json:"groups" yaml:"groups"`
}

// Evaluate builds the checklist for in as seen at now.
func Evaluate(in Input, now time.Time) Checklist {
	countdown := ComputeCountdown(now, in.EventDate)

	completed := make(map[string]struct{}, len(in.CompletedTaskIDs))
	for _, id := range in.CompletedTaskIDs {
		completed[id] = struct{}{}
	}

	relevant := SelectRelevantTasks(Catalog(), countdown.DaysUntilEvent)
	tasks := make([]RuntimeTask, 0, len(relevant))
	for _, def := range relevant {
		_, done := completed[def.ID]
		tasks = append(tasks, RuntimeTask{
			TaskDefinition:    def,
			Completed:         done,
			DaysUntilDeadline: DaysUntilDeadline(def, countdown.DaysUntilEvent),
			UrgencyStatus:     Classify(def, done, countdown.DaysUntilEvent),
			DeadlineText:      FormatDeadline(def, countdown.DaysUntilEvent),
		})
	}

	return Checklist{
		EventType:        in.EventType,
		DaysUntilEvent:   countdown.DaysUntilEvent,
		MonthsUntilEvent: countdown.MonthsUntilEvent,
		Phase:            countdown.Phase(),
		Groups:           GroupTasks(tasks),
	}
}

// Planner evaluates checklists against its clock.
type Planner struct {
	clock Clock
}

func New(clock Clock) *Planner {
	if clock == nil {
		clock = RealClock{}
	}
	return &Planner{clock: clock}
}

func (p *Planner) Evaluate(in Input) Checklist {
	return Evaluate(in, p.clock.Now())
}

func (p *Planner) Now() time.Time {
	return p.clock.Now()
}

// Toggle is a request to mark one task complete or incomplete. Persisting it
// is up to the caller.
type Toggle struct {
	TaskID    string `json:"task_id"`
	Completed bool   `json:"completed"`
}

func (t Toggle) Validate() error {
	if _, ok := LookupTask(t.TaskID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTask, t.TaskID)
	}
	return nil
}
