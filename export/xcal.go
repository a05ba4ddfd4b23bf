package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/cyp0633/textcal/event"
	"github.com/google/uuid"
)

// NamespaceXCal is the RFC 6321 namespace.
const NamespaceXCal = "urn:ietf:params:xml:ns:icalendar-2.0"

const (
	xcalFloating = "2006-01-02T15:04:05"
	xcalUTC      = "2006-01-02T15:04:05Z"
)

// ToXCal builds an xCal document with the same content as ToCalendar.
func ToXCal(events []event.Event, opts Options) *etree.Document {
	opts = opts.normalize()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("icalendar")
	root.CreateAttr("xmlns", NamespaceXCal)

	vcal := root.CreateElement("vcalendar")
	props := vcal.CreateElement("properties")
	addValue(props, "prodid", "text", opts.ProductID)
	addValue(props, "version", "text", "2.0")

	components := vcal.CreateElement("components")
	for _, r := range sorted(events) {
		vevent := components.CreateElement("vevent")
		p := vevent.CreateElement("properties")

		addValue(p, "uid", "text", r.uid)
		addValue(p, "dtstamp", "date-time", opts.Now.Format(xcalUTC))
		addValue(p, "summary", "text", r.summary)
		addValue(p, "dtstart", "date-time", r.start.Format(xcalFloating))
		if r.hasEnd {
			addValue(p, "dtend", "date-time", r.end.Format(xcalFloating))
		}
		if r.description != "" {
			addValue(p, "description", "text", r.description)
		}
		if r.location != "" {
			addValue(p, "location", "text", r.location)
		}
		if r.class != "" {
			addValue(p, "class", "text", r.class)
		}
		addValue(p, "related-to", "text", r.related)
	}

	doc.Indent(2)
	return doc
}

// addValue appends <name><kind>value</kind></name> to parent.
func addValue(parent *etree.Element, name, kind, value string) {
	parent.CreateElement(name).CreateElement(kind).SetText(value)
}

// WriteXCal writes events as an xCal document.
func WriteXCal(w io.Writer, events []event.Event, opts Options) error {
	if _, err := ToXCal(events, opts).WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xCal: %w", err)
	}
	return nil
}

// ReadXCal parses the VEVENTs of an xCal document written by WriteXCal.
func ReadXCal(r io.Reader) ([]event.Event, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to read xCal: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "icalendar" {
		return nil, fmt.Errorf("invalid xCal root element")
	}

	var out []event.Event
	for _, vevent := range root.FindElements("./vcalendar/components/vevent") {
		props := vevent.SelectElement("properties")
		if props == nil {
			continue
		}
		e, err := fromXCal(props)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func fromXCal(props *etree.Element) (event.Event, error) {
	value := func(name string) (string, bool) {
		el := props.SelectElement(name)
		if el == nil || len(el.ChildElements()) == 0 {
			return "", false
		}
		return el.ChildElements()[0].Text(), true
	}

	summary, _ := value("summary")
	raw, ok := value("dtstart")
	if !ok {
		return event.Event{}, fmt.Errorf("event %q has no dtstart", summary)
	}
	start, err := parseXCalTime(raw)
	if err != nil {
		return event.Event{}, fmt.Errorf("failed to read dtstart of %q: %w", summary, err)
	}

	series := event.NewSeriesID()
	if related, ok := value("related-to"); ok {
		if id, err := uuid.Parse(related); err == nil {
			series = id
		}
	}

	e := event.New(summary, start, series)
	if raw, ok := value("dtend"); ok {
		end, err := parseXCalTime(raw)
		if err != nil {
			return event.Event{}, fmt.Errorf("failed to read dtend of %q: %w", summary, err)
		}
		e = e.WithEnd(end)
	}

	var d event.Details
	d.Description, _ = value("description")
	d.Location, _ = value("location")
	if class, ok := value("class"); ok {
		d.Status = strings.ToLower(class)
	}
	return e.WithDetails(d), nil
}

// parseXCalTime reads a floating or UTC xCal date-time as a wall-clock UTC time.
func parseXCalTime(s string) (time.Time, error) {
	if t, err := time.Parse(xcalUTC, s); err == nil {
		return t, nil
	}
	return time.Parse(xcalFloating, s)
}
