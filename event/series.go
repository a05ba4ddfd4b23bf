package event

import (
	"fmt"
	"time"

	"github.com/cyp0633/textcal/recurrence"
)

// TimeOfDay is an hour and minute on an unspecified date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ClockOf returns the time of day of t.
func ClockOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// On returns the instant at this time of day on d's date, in UTC.
func (c TimeOfDay) On(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, c.Hour, c.Minute, 0, 0, time.UTC)
}

// Before reports whether c is earlier in the day than o.
func (c TimeOfDay) Before(o TimeOfDay) bool {
	return c.Hour < o.Hour || (c.Hour == o.Hour && c.Minute < o.Minute)
}

func (c TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// SeriesSpec describes a recurring event. Every occurrence runs from
// StartTime to EndTime on one day; the walk begins at StartDate.
type SeriesSpec struct {
	Subject   string
	StartTime TimeOfDay
	EndTime   TimeOfDay
	StartDate time.Time
	Weekdays  string // Weekday codes such as "MWF"
	Details   Details
}

// SeriesBuilder generates recurring events and applies group edits.
type SeriesBuilder struct {
	*Builder
	engine *recurrence.Engine
}

// NewSeriesBuilder returns a SeriesBuilder expanding patterns with engine.
// A nil engine means recurrence.NewEngine().
func NewSeriesBuilder(engine *recurrence.Engine) *SeriesBuilder {
	if engine == nil {
		engine = recurrence.NewEngine()
	}
	return &SeriesBuilder{Builder: NewBuilder(), engine: engine}
}

// CreateByOccurrences returns count occurrences of spec, all sharing one new
// series identifier. A count of zero or less yields an empty series.
func (b *SeriesBuilder) CreateByOccurrences(spec SeriesSpec, count int) ([]Event, error) {
	weekdays, err := b.checkSpec(spec)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, nil
	}
	return b.generate(spec, recurrence.Pattern{Weekdays: weekdays, Count: count})
}

// CreateUntil returns every occurrence of spec dated on or before until.
func (b *SeriesBuilder) CreateUntil(spec SeriesSpec, until time.Time) ([]Event, error) {
	weekdays, err := b.checkSpec(spec)
	if err != nil {
		return nil, err
	}
	return b.generate(spec, recurrence.Pattern{Weekdays: weekdays, Until: until})
}

func (b *SeriesBuilder) checkSpec(spec SeriesSpec) ([]time.Weekday, error) {
	if spec.EndTime.Before(spec.StartTime) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTimeSpan, spec.StartTime, spec.EndTime)
	}
	weekdays, err := recurrence.ParseWeekdays(spec.Weekdays)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, spec.Weekdays)
	}
	return weekdays, nil
}

func (b *SeriesBuilder) generate(spec SeriesSpec, p recurrence.Pattern) ([]Event, error) {
	starts, err := b.engine.Expand(spec.StartTime.On(spec.StartDate), p)
	if err != nil {
		return nil, fmt.Errorf("expanding series %q: %w", spec.Subject, err)
	}

	id := b.newID()
	series := make([]Event, 0, len(starts))
	for _, occ := range starts {
		series = append(series, New(spec.Subject, spec.StartTime.On(occ), id).
			WithEnd(spec.EndTime.On(occ)).
			WithDetails(spec.Details))
	}
	return series, nil
}

// find returns the first event with exactly this subject and start.
func find(events []Event, subject string, start time.Time) (Event, bool) {
	for _, e := range events {
		if e.subject == subject && e.start.Equal(start) {
			return e, true
		}
	}
	return Event{}, false
}

// EditFromDate edits the event matching subject and from, and every later
// event of the same series. The first result holds the untouched events in
// their original order followed by the edited copies, the second only the
// edited copies. Editing start or end moves the edited copies into one new
// series, splitting them from earlier events. events is not modified.
func (b *SeriesBuilder) EditFromDate(events []Event, subject string, from time.Time, property, value string) ([]Event, []Event, error) {
	target, ok := find(events, subject, from)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s at %s", ErrEventNotFound, subject, from.Format(Layout))
	}

	return b.rewrite(events, property, value, func(e Event) bool {
		return e.series == target.series && !e.start.Before(from)
	}, false)
}

// EditEntireSeries edits every event sharing the series of the event matching
// subject and start, returning the rewritten collection and the edited
// copies. Positions are preserved. Editing start or end moves the whole group
// into one new series.
func (b *SeriesBuilder) EditEntireSeries(events []Event, subject string, start time.Time, property, value string) ([]Event, []Event, error) {
	target, ok := find(events, subject, start)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s at %s", ErrEventNotFound, subject, start.Format(Layout))
	}

	return b.rewrite(events, property, value, func(e Event) bool {
		return e.series == target.series
	}, true)
}

// rewrite applies the edit to every selected event and returns the new
// collection along with the edited copies. With inPlace set the edited copies
// keep their positions, otherwise they are appended after the untouched events.
func (b *SeriesBuilder) rewrite(events []Event, property, value string, selected func(Event) bool, inPlace bool) ([]Event, []Event, error) {
	var id SeriesID
	moves := IsTimeProperty(property)
	if moves {
		id = b.newID()
	}

	out := make([]Event, 0, len(events))
	var edited []Event
	for _, e := range events {
		if !selected(e) {
			out = append(out, e)
			continue
		}
		updated, err := setProperty(e, property, value)
		if err != nil {
			return nil, nil, err
		}
		if moves {
			updated = updated.WithSeries(id)
		}
		edited = append(edited, updated)
		if inPlace {
			out = append(out, updated)
		}
	}
	if !inPlace {
		out = append(out, edited...)
	}
	return out, edited, nil
}
