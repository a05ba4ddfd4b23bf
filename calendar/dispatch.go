package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cyp0633/textcal/command"
	"github.com/cyp0633/textcal/event"
)

// Result is the outcome of applying one command.
type Result struct {
	Command command.Command
	// Events holds the events created, edited or matched by the command.
	Events []event.Event
	// Busy is set by status queries.
	Busy bool
	// Exit is set when the command asks the caller to stop.
	Exit bool
}

// Apply carries out cmd against the store. Field positions follow the
// descriptor contract of each command type.
func (s *Store) Apply(cmd command.Command) (Result, error) {
	res := Result{Command: cmd}
	var err error

	switch cmd.Type {
	case command.TypeExit:
		res.Exit = true
	case command.TypeList:
		res.Events = s.Events()

	case command.TypeCreateEvent:
		res.Events, err = s.applyCreate(cmd)
	case command.TypeCreateSeriesCount, command.TypeCreateSeriesUntil:
		res.Events, err = s.applyCreateSeries(cmd)
	case command.TypeCreateAllDay:
		res.Events, err = s.applyCreateAllDay(cmd)
	case command.TypeCreateAllDaySeriesCount, command.TypeCreateAllDaySeriesUntil:
		res.Events, err = s.applyCreateAllDaySeries(cmd)

	case command.TypeEditEventSpan:
		res.Events, err = s.applyEditSpan(cmd)
	case command.TypeEditEventsFrom, command.TypeEditSeries:
		res.Events, err = s.applyEditSeries(cmd)

	case command.TypePrintOn:
		var d time.Time
		if d, err = parseDate(cmd.Field(0)); err == nil {
			res.Events = s.EventsOn(d)
		}
	case command.TypePrintBetween:
		var from, to time.Time
		if from, to, err = parseSpan(cmd.Field(0), cmd.Field(1)); err == nil {
			res.Events = s.EventsBetween(from, to)
		}
	case command.TypeShowStatus:
		var t time.Time
		if t, err = parseDateTime(cmd.Field(0)); err == nil {
			res.Busy = s.IsTimeSlotOccupied(t)
		}

	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedCommand, cmd.Type)
	}

	if err != nil {
		return Result{Command: cmd}, err
	}
	return res, nil
}

// create event <subject> from <start> to <end>
func (s *Store) applyCreate(cmd command.Command) ([]event.Event, error) {
	start, end, err := parseSpan(cmd.Field(1), cmd.Field(2))
	if err != nil {
		return nil, err
	}
	e, err := s.AddSingleEvent(cmd.Field(0), start, end, event.Details{})
	if err != nil {
		return nil, err
	}
	return []event.Event{e}, nil
}

// create event <subject> from <start> to <end> repeats <w> (for <n> times | until <date>)
func (s *Store) applyCreateSeries(cmd command.Command) ([]event.Event, error) {
	start, end, err := parseSpan(cmd.Field(1), cmd.Field(2))
	if err != nil {
		return nil, err
	}
	spec := event.SeriesSpec{
		Subject:   cmd.Field(0),
		StartTime: event.ClockOf(start),
		EndTime:   event.ClockOf(end),
		StartDate: start,
		Weekdays:  cmd.Field(3),
	}
	return s.addSeries(cmd, spec, cmd.Field(4))
}

// create event <subject> on <date>
func (s *Store) applyCreateAllDay(cmd command.Command) ([]event.Event, error) {
	d, err := parseDate(cmd.Field(1))
	if err != nil {
		return nil, err
	}
	e, err := s.AddSingleEvent(cmd.Field(0), s.allDay.Start.On(d), s.allDay.End.On(d), event.Details{})
	if err != nil {
		return nil, err
	}
	return []event.Event{e}, nil
}

// create event <subject> on <date> repeats <w> (for <n> times | until <date>)
func (s *Store) applyCreateAllDaySeries(cmd command.Command) ([]event.Event, error) {
	d, err := parseDate(cmd.Field(1))
	if err != nil {
		return nil, err
	}
	spec := event.SeriesSpec{
		Subject:   cmd.Field(0),
		StartTime: s.allDay.Start,
		EndTime:   s.allDay.End,
		StartDate: d,
		Weekdays:  cmd.Field(2),
	}
	return s.addSeries(cmd, spec, cmd.Field(3))
}

// addSeries reads bound as an occurrence count or an until date depending on cmd.Type.
func (s *Store) addSeries(cmd command.Command, spec event.SeriesSpec, bound string) ([]event.Event, error) {
	switch cmd.Type {
	case command.TypeCreateSeriesCount, command.TypeCreateAllDaySeriesCount:
		n, err := strconv.Atoi(bound)
		if err != nil {
			return nil, fmt.Errorf("invalid occurrence count %q: %w", bound, err)
		}
		return s.AddEventSeriesByOccurrences(spec, n)
	default:
		until, err := parseDate(bound)
		if err != nil {
			return nil, err
		}
		return s.AddEventSeriesUntilDate(spec, until)
	}
}

// edit event <property> <subject> from <start> to <end> with <value>
func (s *Store) applyEditSpan(cmd command.Command) ([]event.Event, error) {
	start, end, err := parseSpan(cmd.Field(2), cmd.Field(3))
	if err != nil {
		return nil, err
	}
	orig, ok := s.Find(cmd.Field(1), start, end)
	if !ok {
		s.logger.Warn("failed to edit event: not found",
			"subject", cmd.Field(1),
			"start", start)
		return nil, fmt.Errorf("%w: %s at %s", event.ErrEventNotFound, cmd.Field(1), cmd.Field(2))
	}
	updated, err := s.EditSingleEvent(orig, cmd.Field(0), cmd.Field(4))
	if err != nil {
		return nil, err
	}
	return []event.Event{updated}, nil
}

// edit event <property> <subject> from <start> with <value> edits the whole
// series; edit series ... edits from <start> forward.
func (s *Store) applyEditSeries(cmd command.Command) ([]event.Event, error) {
	from, err := parseDateTime(cmd.Field(2))
	if err != nil {
		return nil, err
	}
	if cmd.Type == command.TypeEditSeries {
		return s.EditSeriesFromDate(cmd.Field(1), from, cmd.Field(0), cmd.Field(3))
	}
	return s.EditEntireSeries(cmd.Field(1), from, cmd.Field(0), cmd.Field(3))
}

func parseDate(tok string) (time.Time, error) {
	d, err := command.ParseDate(tok)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", event.ErrInvalidDateTime, tok)
	}
	return d, nil
}

func parseDateTime(tok string) (time.Time, error) {
	t, err := command.ParseDateTime(tok)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", event.ErrInvalidDateTime, tok)
	}
	return t, nil
}

func parseSpan(from, to string) (time.Time, time.Time, error) {
	start, err := parseDateTime(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateTime(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
