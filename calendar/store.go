package calendar

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cyp0633/textcal/event"
	"github.com/cyp0633/textcal/recurrence"
)

// Store holds the events of one calendar in insertion order. It is not safe
// for concurrent use.
type Store struct {
	events  []event.Event
	builder *event.SeriesBuilder
	allDay  Window
	logger  *slog.Logger
}

// Window is the time span given to events created with a date only.
type Window struct {
	Start event.TimeOfDay
	End   event.TimeOfDay
}

// DefaultAllDay is the all-day window used unless WithAllDayWindow is given.
var DefaultAllDay = Window{
	Start: event.TimeOfDay{Hour: 8},
	End:   event.TimeOfDay{Hour: 17},
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		builder: event.NewSeriesBuilder(nil),
		allDay:  DefaultAllDay,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Option represents a configuration option for the Store
type Option func(*Store)

// WithLogger sets the logger for the store
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEngine sets the recurrence engine used to expand series. The default
// engine does not cap the number of occurrences.
func WithEngine(engine *recurrence.Engine) Option {
	return func(s *Store) {
		if engine != nil {
			s.builder = event.NewSeriesBuilder(engine)
		}
	}
}

// WithAllDayWindow sets the span used for date-only events
func WithAllDayWindow(w Window) Option {
	return func(s *Store) {
		if !w.End.Before(w.Start) {
			s.allDay = w
		}
	}
}

// Events returns a copy of the stored events in insertion order.
func (s *Store) Events() []event.Event {
	out := make([]event.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	return len(s.events)
}

// AllDay returns the window used for date-only events.
func (s *Store) AllDay() Window {
	return s.allDay
}

// AddSingleEvent creates an event and stores it, unless an event with the
// same subject, start and end already exists.
func (s *Store) AddSingleEvent(subject string, start, end time.Time, d event.Details) (event.Event, error) {
	e := s.builder.Create(subject, start, end, d)
	for _, existing := range s.events {
		if existing.SameSlot(e) {
			s.logger.Warn("failed to add event: duplicate",
				"subject", subject,
				"start", start)
			return event.Event{}, fmt.Errorf("%w: %s", ErrDuplicateEvent, e)
		}
	}

	s.events = append(s.events, e)
	s.logger.Info("event added",
		"subject", subject,
		"start", start,
		"series", e.Series())
	return e, nil
}

// EditSingleEvent replaces orig with a copy whose property is set to value.
// The store is unchanged when orig is not stored or the edit fails.
func (s *Store) EditSingleEvent(orig event.Event, property, value string) (event.Event, error) {
	idx := -1
	for i, e := range s.events {
		if e.Equal(orig) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Warn("failed to edit event: not found",
			"subject", orig.Subject(),
			"start", orig.Start())
		return event.Event{}, fmt.Errorf("%w: %s", event.ErrEventNotFound, orig)
	}

	updated, err := s.builder.Edit(orig, property, value)
	if err != nil {
		s.logger.Warn("failed to edit event",
			"subject", orig.Subject(),
			"property", property,
			"error", err)
		return event.Event{}, err
	}

	s.events[idx] = updated
	s.logger.Info("event edited",
		"subject", updated.Subject(),
		"property", property,
		"series", updated.Series())
	return updated, nil
}

// AddEventSeriesByOccurrences generates count occurrences and appends them.
func (s *Store) AddEventSeriesByOccurrences(spec event.SeriesSpec, count int) ([]event.Event, error) {
	series, err := s.builder.CreateByOccurrences(spec, count)
	return s.appendSeries(spec, series, err)
}

// AddEventSeriesUntilDate generates every occurrence up to until and appends them.
func (s *Store) AddEventSeriesUntilDate(spec event.SeriesSpec, until time.Time) ([]event.Event, error) {
	series, err := s.builder.CreateUntil(spec, until)
	return s.appendSeries(spec, series, err)
}

func (s *Store) appendSeries(spec event.SeriesSpec, series []event.Event, err error) ([]event.Event, error) {
	if err != nil {
		s.logger.Warn("failed to add series",
			"subject", spec.Subject,
			"weekdays", spec.Weekdays,
			"error", err)
		return nil, err
	}

	s.events = append(s.events, series...)
	s.logger.Info("series added",
		"subject", spec.Subject,
		"occurrences", len(series))
	return series, nil
}

// EditSeriesFromDate edits the event at (subject, from) and every later event
// of its series. It returns the edited events.
func (s *Store) EditSeriesFromDate(subject string, from time.Time, property, value string) ([]event.Event, error) {
	updated, edited, err := s.builder.EditFromDate(s.events, subject, from, property, value)
	return s.replace(subject, property, updated, edited, err)
}

// EditEntireSeries edits every event in the series of the event at
// (subject, start). It returns the edited events.
func (s *Store) EditEntireSeries(subject string, start time.Time, property, value string) ([]event.Event, error) {
	updated, edited, err := s.builder.EditEntireSeries(s.events, subject, start, property, value)
	return s.replace(subject, property, updated, edited, err)
}

// replace swaps in a rewritten collection.
func (s *Store) replace(subject, property string, updated, edited []event.Event, err error) ([]event.Event, error) {
	if err != nil {
		s.logger.Warn("failed to edit series",
			"subject", subject,
			"property", property,
			"error", err)
		return nil, err
	}

	s.events = updated
	s.logger.Info("series edited",
		"subject", subject,
		"property", property,
		"edited", len(edited))
	return edited, nil
}

// Find returns the first event whose subject matches case-insensitively and
// whose start and end are equal to the given times.
func (s *Store) Find(subject string, start, end time.Time) (event.Event, bool) {
	for _, e := range s.events {
		if strings.EqualFold(e.Subject(), subject) && e.Start().Equal(start) && e.End().Equal(end) {
			return e, true
		}
	}
	return event.Event{}, false
}
