package planner

import "time"

type Phase string

const (
	PhaseCountingDown Phase = "counting_down"
	PhaseEventDay     Phase = "event_day"
	PhaseEventPassed  Phase = "event_passed"
)

type Countdown struct {
	DaysUntilEvent   int
	MonthsUntilEvent int
}

// Phase picks the countdown display state from the day count.
func (c Countdown) Phase() Phase {
	switch {
	case c.DaysUntilEvent > 0:
		return PhaseCountingDown
	case c.DaysUntilEvent == 0:
		return PhaseEventDay
	default:
		return PhaseEventPassed
	}
}

// ComputeCountdown returns the whole days and whole calendar months between
// now and eventDate, truncated toward zero. Both values are negative once the
// event is in the past. Calendar arithmetic happens in eventDate's location.
func ComputeCountdown(now, eventDate time.Time) Countdown {
	now = now.In(eventDate.Location())
	return Countdown{
		DaysUntilEvent:   differenceInDays(eventDate, now),
		MonthsUntilEvent: differenceInMonths(eventDate, now),
	}
}

func differenceInDays(left, right time.Time) int {
	sign := compare(left, right)
	if sign == 0 {
		return 0
	}

	diff := abs(calendarDays(left, right))
	shifted := left.AddDate(0, 0, -sign*diff)
	// The last day only counts once the time of day has been reached.
	if compare(shifted, right) == -sign {
		diff--
	}
	return sign * diff
}

func differenceInMonths(left, right time.Time) int {
	sign := compare(left, right)
	if sign == 0 {
		return 0
	}

	diff := abs(calendarMonths(left, right))
	if diff == 0 {
		return 0
	}

	shifted := addMonthsClamped(left, -sign*diff)
	if compare(shifted, right) == -sign {
		diff--
	}
	return sign * diff
}

// calendarDays counts midnights between the two dates, ignoring time of day
// and DST transitions.
func calendarDays(left, right time.Time) int {
	ly, lm, ld := left.Date()
	ry, rm, rd := right.Date()
	l := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	r := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)
	const secondsPerDay = 24 * 60 * 60
	return int((l.Unix() - r.Unix()) / secondsPerDay)
}

func calendarMonths(left, right time.Time) int {
	return (left.Year()-right.Year())*12 + int(left.Month()) - int(right.Month())
}

// addMonthsClamped moves t by n months and clamps the day to the last day of
// the target month, so Jan 31 minus one month is Dec 31 and Mar 31 minus one
// month is Feb 28/29.
func addMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := daysIn(first.Year(), first.Month())
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func compare(a, b time.Time) int {
	switch {
	case a.After(b):
		return 1
	case a.Before(b):
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
