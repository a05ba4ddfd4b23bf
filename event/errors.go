package event

import "errors"

var (
	// ErrUnknownProperty is returned when an edit names a property outside
	// subject, description, location, status, start and end.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrInvalidDateTime is returned when a start or end edit value is not a
	// YYYY-MM-DDTHH:MM literal.
	ErrInvalidDateTime = errors.New("invalid date-time")
	// ErrEventNotFound is returned when no event matches the given subject and start.
	ErrEventNotFound = errors.New("event not found")
	// ErrInvalidWeekday is returned for weekday codes outside M T W R F S U.
	ErrInvalidWeekday = errors.New("invalid weekday code")
	// ErrInvalidTimeSpan is returned when a recurring event would end before it starts.
	ErrInvalidTimeSpan = errors.New("event cannot span multiple days")
)
