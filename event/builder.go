package event

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the date-time literal format accepted for start and end edits.
const Layout = "2006-01-02T15:04"

// Property names accepted by Edit, matched case-insensitively.
const (
	PropSubject     = "subject"
	PropDescription = "description"
	PropLocation    = "location"
	PropStatus      = "status"
	PropStart       = "start"
	PropEnd         = "end"
)

// IsTimeProperty reports whether editing property moves the event in time.
func IsTimeProperty(property string) bool {
	return strings.EqualFold(property, PropStart) || strings.EqualFold(property, PropEnd)
}

// Builder creates and edits single events.
type Builder struct {
	newID func() SeriesID
}

// NewBuilder returns a Builder that draws series identifiers from uuid.New.
func NewBuilder() *Builder {
	return &Builder{newID: NewSeriesID}
}

// Create returns a new event with a fresh series identifier. It does not
// check for duplicates.
func (b *Builder) Create(subject string, start, end time.Time, d Details) Event {
	return New(subject, start, b.newID()).WithEnd(end).WithDetails(d)
}

// Edit returns a copy of e with property set to value. Editing start or end
// detaches the copy from its series by giving it a fresh identifier.
func (b *Builder) Edit(e Event, property, value string) (Event, error) {
	updated, err := setProperty(e, property, value)
	if err != nil {
		return Event{}, err
	}
	if IsTimeProperty(property) {
		updated = updated.WithSeries(b.newID())
	}
	return updated, nil
}

// setProperty applies one property change and keeps the series identifier.
func setProperty(e Event, property, value string) (Event, error) {
	switch strings.ToLower(property) {
	case PropSubject:
		return e.WithSubject(value), nil
	case PropDescription:
		return e.WithDescription(value), nil
	case PropLocation:
		return e.WithLocation(value), nil
	case PropStatus:
		return e.WithStatus(value), nil
	case PropStart, PropEnd:
		t, err := time.Parse(Layout, value)
		if err != nil {
			return Event{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, value)
		}
		if strings.EqualFold(property, PropStart) {
			return e.WithStart(t), nil
		}
		return e.WithEnd(t), nil
	default:
		return Event{}, fmt.Errorf("%w: %s", ErrUnknownProperty, property)
	}
}
