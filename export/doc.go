// Package export renders events as iCalendar (RFC 5545) and xCal (RFC 6321).
package export
