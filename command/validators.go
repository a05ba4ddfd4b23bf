package command

import (
	"strconv"
	"strings"
	"time"

	"github.com/cyp0633/textcal/event"
	"github.com/cyp0633/textcal/recurrence"
)

const (
	// DateLayout is the only accepted date literal format. Date-times use event.Layout.
	DateLayout = "2006-01-02"

	dateLen     = len(DateLayout)
	dateTimeLen = len(event.Layout)
)

// daysInMonth is indexed by month-1. February is widened to 29 in leap years.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// EditableProperties are the event properties accepted by edit commands.
var EditableProperties = []string{
	event.PropSubject,
	event.PropDescription,
	event.PropLocation,
	event.PropStatus,
	event.PropStart,
	event.PropEnd,
}

// CalendarProperties are the calendar properties accepted by "edit calendar".
var CalendarProperties = []string{"timezone", "name"}

// IsPositiveInteger reports whether tok is a base-10 32-bit integer greater than zero.
// "0" and "00" are rejected, which also rejects zero-padded hour and minute
// fields such as "00" inside a date-time literal.
func IsPositiveInteger(tok string) bool {
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return false
	}
	return n > 0
}

// IsValidDate reports whether tok is a YYYY-MM-DD literal naming an existing day.
// The leap rule is "divisible by 4 and not by 100"; years divisible by 400 are
// not treated as leap years.
func IsValidDate(tok string) bool {
	if len(tok) != dateLen || tok[4] != '-' || tok[7] != '-' {
		return false
	}
	yearStr, monthStr, dayStr := tok[0:4], tok[5:7], tok[8:10]
	if !IsPositiveInteger(yearStr) || !IsPositiveInteger(monthStr) || !IsPositiveInteger(dayStr) {
		return false
	}
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	if month > 12 {
		return false
	}

	limit := daysInMonth[month-1]
	if month == 2 && isLeapYear(year) {
		limit = 29
	}
	return day <= limit
}

func isLeapYear(year int) bool {
	return year%4 == 0 && year%100 != 0
}

// IsValidDateTime reports whether tok is a YYYY-MM-DDTHH:MM literal.
// The hour must be in 1..24 and the minute in 1..60.
func IsValidDateTime(tok string) bool {
	if len(tok) != dateTimeLen {
		return false
	}
	if !IsValidDate(tok[:dateLen]) || tok[10] != 'T' || tok[13] != ':' {
		return false
	}
	hourStr, minuteStr := tok[11:13], tok[14:16]
	if !IsPositiveInteger(hourStr) || !IsPositiveInteger(minuteStr) {
		return false
	}
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minuteStr)
	return hour < 25 && minute < 61
}

// IsWeekdayCode reports whether tok is exactly one letter of M T W R F S U,
// in either case.
func IsWeekdayCode(tok string) bool {
	if len(tok) != 1 {
		return false
	}
	_, ok := WeekdayOf(tok[0])
	return ok
}

// WeekdayOf decodes one weekday letter, case-insensitively.
func WeekdayOf(c byte) (time.Weekday, bool) {
	return recurrence.WeekdayOf(c)
}

// IsPropertyName reports whether tok names an editable event property.
func IsPropertyName(tok string) bool {
	return containsFold(EditableProperties, tok)
}

// IsCalendarPropertyName reports whether tok names an editable calendar property.
func IsCalendarPropertyName(tok string) bool {
	return containsFold(CalendarProperties, tok)
}

func containsFold(bank []string, tok string) bool {
	for _, s := range bank {
		if strings.EqualFold(s, tok) {
			return true
		}
	}
	return false
}

// ParseDate parses a YYYY-MM-DD literal into midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseDateTime parses a YYYY-MM-DDTHH:MM literal as a wall-clock time in UTC.
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(event.Layout, s)
}
