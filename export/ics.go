package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cyp0633/textcal/event"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// ToCalendar builds a VCALENDAR holding one VEVENT per event. Start and end
// are written as floating times since events carry no zone.
func ToCalendar(events []event.Event, opts Options) *ical.Calendar {
	opts = opts.normalize()

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, opts.ProductID)

	for _, r := range sorted(events) {
		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, r.uid)
		ev.Props.SetDateTime(ical.PropDateTimeStamp, opts.Now)
		ev.Props.SetText(ical.PropSummary, r.summary)
		ev.Props.Set(floating(ical.PropDateTimeStart, r.start))
		if r.hasEnd {
			ev.Props.Set(floating(ical.PropDateTimeEnd, r.end))
		}
		if r.description != "" {
			ev.Props.SetText(ical.PropDescription, r.description)
		}
		if r.location != "" {
			ev.Props.SetText(ical.PropLocation, r.location)
		}
		if r.class != "" {
			ev.Props.SetText(ical.PropClass, r.class)
		}
		ev.Props.SetText(ical.PropRelatedTo, r.related)

		cal.Children = append(cal.Children, ev.Component)
	}
	return cal
}

func floating(name string, t time.Time) *ical.Prop {
	p := ical.NewProp(name)
	p.Value = t.Format(floatingLayout)
	return p
}

// WriteICS encodes events as an iCalendar stream.
func WriteICS(w io.Writer, events []event.Event, opts Options) error {
	if err := ical.NewEncoder(w).Encode(ToCalendar(events, opts)); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

// ReadICS decodes the VEVENTs of an iCalendar stream. RELATED-TO is taken
// as the series identifier; events without one get a fresh series.
func ReadICS(r io.Reader) ([]event.Event, error) {
	cal, err := ical.NewDecoder(r).Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode calendar: %w", err)
	}

	var out []event.Event
	for _, ev := range cal.Events() {
		e, err := fromICal(ev)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func fromICal(ev ical.Event) (event.Event, error) {
	summary, err := ev.Props.Text(ical.PropSummary)
	if err != nil {
		return event.Event{}, fmt.Errorf("failed to read SUMMARY: %w", err)
	}
	start, err := ev.DateTimeStart(time.UTC)
	if err != nil {
		return event.Event{}, fmt.Errorf("failed to read DTSTART of %q: %w", summary, err)
	}

	series := event.NewSeriesID()
	if p := ev.Props.Get(ical.PropRelatedTo); p != nil {
		if id, err := uuid.Parse(p.Value); err == nil {
			series = id
		}
	}

	e := event.New(summary, start, series)
	if ev.Props.Get(ical.PropDateTimeEnd) != nil {
		end, err := ev.DateTimeEnd(time.UTC)
		if err != nil {
			return event.Event{}, fmt.Errorf("failed to read DTEND of %q: %w", summary, err)
		}
		e = e.WithEnd(end)
	}

	var d event.Details
	d.Description, _ = ev.Props.Text(ical.PropDescription)
	d.Location, _ = ev.Props.Text(ical.PropLocation)
	if p := ev.Props.Get(ical.PropClass); p != nil {
		d.Status = strings.ToLower(p.Value)
	}
	return e.WithDetails(d), nil
}
