package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
)

// SeriesID groups events created by one recurrence request or one
// identity-preserving edit batch. A single event carries its own SeriesID.
type SeriesID = uuid.UUID

// NewSeriesID returns a fresh series identifier.
func NewSeriesID() SeriesID {
	return uuid.New()
}

// Event is an immutable calendar entry. Derive changed copies with the With* methods.
//
// Times are wall-clock values stored in time.UTC; no zone conversion is applied.
type Event struct {
	subject     string
	start       time.Time
	end         mo.Option[time.Time]
	description mo.Option[string]
	location    mo.Option[string]
	status      mo.Option[string]
	series      SeriesID
}

// New starts an event with no end and no optional properties. Stored events
// must get an end through WithEnd.
func New(subject string, start time.Time, series SeriesID) Event {
	return Event{
		subject: subject,
		start:   start,
		series:  series,
	}
}

func (e Event) Subject() string { return e.subject }
func (e Event) Start() time.Time { return e.start }
func (e Event) Series() SeriesID { return e.series }

// End returns the end time, or the zero time if none was set.
func (e Event) End() time.Time { return e.end.OrEmpty() }

// HasEnd reports whether an end time was set.
func (e Event) HasEnd() bool { return e.end.IsPresent() }

func (e Event) Description() mo.Option[string] { return e.description }
func (e Event) Location() mo.Option[string] { return e.location }
func (e Event) Status() mo.Option[string] { return e.status }

func (e Event) WithSubject(s string) Event {
	e.subject = s
	return e
}

func (e Event) WithStart(t time.Time) Event {
	e.start = t
	return e
}

func (e Event) WithEnd(t time.Time) Event {
	e.end = mo.Some(t)
	return e
}

func (e Event) WithSeries(id SeriesID) Event {
	e.series = id
	return e
}

// WithDescription sets the description. An empty string clears it.
func (e Event) WithDescription(s string) Event {
	e.description = mo.EmptyableToOption(s)
	return e
}

// WithLocation sets the location. An empty string clears it.
func (e Event) WithLocation(s string) Event {
	e.location = mo.EmptyableToOption(s)
	return e
}

// WithStatus sets the status. An empty string clears it.
func (e Event) WithStatus(s string) Event {
	e.status = mo.EmptyableToOption(s)
	return e
}

// WithDetails applies every optional property in d.
func (e Event) WithDetails(d Details) Event {
	return e.WithDescription(d.Description).WithLocation(d.Location).WithStatus(d.Status)
}

// Details returns the optional properties, with absent ones as empty strings.
func (e Event) Details() Details {
	return Details{
		Description: e.description.OrEmpty(),
		Location:    e.location.OrEmpty(),
		Status:      e.status.OrEmpty(),
	}
}

// SameSlot reports whether both events have the same subject, start and end.
// This is the duplicate key used by the store.
func (e Event) SameSlot(o Event) bool {
	return e.subject == o.subject && e.start.Equal(o.start) && e.End().Equal(o.End())
}

// Equal reports whether every property of both events matches.
func (e Event) Equal(o Event) bool {
	return e.SameSlot(o) &&
		e.HasEnd() == o.HasEnd() &&
		e.Details() == o.Details() &&
		e.series == o.series
}

// Overlaps reports whether the event intersects [from, to], both ends inclusive.
func (e Event) Overlaps(from, to time.Time) bool {
	return !e.End().Before(from) && !e.start.After(to)
}

// Occupies reports whether t falls in [start, end).
func (e Event) Occupies(t time.Time) bool {
	return !t.Before(e.start) && t.Before(e.End())
}

func (e Event) String() string {
	s := fmt.Sprintf("%s %s", e.subject, e.start.Format(Layout))
	if e.HasEnd() {
		s += " - " + e.End().Format(Layout)
	}
	if loc, ok := e.location.Get(); ok {
		s += " @ " + loc
	}
	return s
}

// Details holds the optional properties given when an event is created.
type Details struct {
	Description string
	Location    string
	Status      string
}
