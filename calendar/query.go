package calendar

import (
	"time"

	"github.com/cyp0633/textcal/event"
)

// TimeRange is a closed interval [Start, End].
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Day returns the range covering every instant of d's calendar date.
func Day(d time.Time) TimeRange {
	y, m, dd := d.Date()
	start := time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	return TimeRange{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

// EventsIn returns the events overlapping r, end points included.
func (s *Store) EventsIn(r TimeRange) []event.Event {
	var out []event.Event
	for _, e := range s.events {
		if e.Overlaps(r.Start, r.End) {
			out = append(out, e)
		}
	}
	s.logger.Debug("queried events",
		"from", r.Start,
		"to", r.End,
		"matched", len(out))
	return out
}

// EventsBetween returns every event with end >= from and start <= to.
func (s *Store) EventsBetween(from, to time.Time) []event.Event {
	return s.EventsIn(TimeRange{Start: from, End: to})
}

// EventsOn returns every event overlapping the calendar date of d.
func (s *Store) EventsOn(d time.Time) []event.Event {
	return s.EventsIn(Day(d))
}

// IsTimeSlotOccupied reports whether some event has start <= t < end.
func (s *Store) IsTimeSlotOccupied(t time.Time) bool {
	for _, e := range s.events {
		if e.Occupies(t) {
			return true
		}
	}
	return false
}
