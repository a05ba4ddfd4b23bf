package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidPattern is returned when a pattern has no weekdays or no bound.
	ErrInvalidPattern = errors.New("invalid recurrence pattern")
	// ErrInvalidWeekday is returned for a character outside the weekday alphabet.
	ErrInvalidWeekday = errors.New("invalid weekday code")
	// ErrTooManyOccurrences is returned when an expansion would exceed the configured cap.
	ErrTooManyOccurrences = errors.New("too many occurrences")
)

// weekdayCodes maps the single-letter weekday alphabet to time.Weekday.
// Thursday is R and Sunday is U so that every day has a distinct letter.
var weekdayCodes = map[byte]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'R': time.Thursday,
	'F': time.Friday,
	'S': time.Saturday,
	'U': time.Sunday,
}

// WeekdayOf decodes one weekday letter, case-insensitively.
func WeekdayOf(c byte) (time.Weekday, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	wd, ok := weekdayCodes[c]
	return wd, ok
}

// ParseWeekdays decodes a string such as "MWF" into distinct weekdays in
// first-seen order. Any character outside the alphabet is an error.
func ParseWeekdays(codes string) ([]time.Weekday, error) {
	var (
		days []time.Weekday
		seen = make(map[time.Weekday]bool)
	)
	for i := 0; i < len(codes); i++ {
		wd, ok := WeekdayOf(codes[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, codes[i])
		}
		if !seen[wd] {
			seen[wd] = true
			days = append(days, wd)
		}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no weekdays in %q", ErrInvalidPattern, codes)
	}
	return days, nil
}

// Pattern describes a weekly recurrence on a fixed set of weekdays, bounded
// either by a number of occurrences or by a last date.
type Pattern struct {
	Weekdays []time.Weekday
	Count    int       // Stop after Count occurrences when > 0
	Until    time.Time // Last date (inclusive) when Count is 0; only the date part is used
}

// rule renders the pattern as an RRULE value (without the "RRULE:" prefix).
func (p Pattern) rule() string {
	days := make([]string, len(p.Weekdays))
	for i, wd := range p.Weekdays {
		days[i] = byDay[wd]
	}
	r := "FREQ=WEEKLY;BYDAY=" + strings.Join(days, ",")
	if p.Count > 0 {
		return fmt.Sprintf("%s;COUNT=%d", r, p.Count)
	}
	y, m, d := p.Until.Date()
	last := time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
	return r + ";UNTIL=" + last.Format(icalUTC)
}

func (p Pattern) validate() error {
	if len(p.Weekdays) == 0 {
		return fmt.Errorf("%w: no weekdays", ErrInvalidPattern)
	}
	if p.Count <= 0 && p.Until.IsZero() {
		return fmt.Errorf("%w: neither count nor until date", ErrInvalidPattern)
	}
	return nil
}

var byDay = map[time.Weekday]string{
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
	time.Sunday:    "SU",
}

// ExpansionOptions controls how recurrence expansion behaves
type ExpansionOptions struct {
	MaxOccurrences int // Maximum number of occurrences to expand (0 = unlimited)
}

// DefaultExpansionOptions expands every occurrence. Callers that accept
// untrusted patterns opt into a cap with NewEngineWithOptions.
var DefaultExpansionOptions = ExpansionOptions{
	MaxOccurrences: 0,
}
