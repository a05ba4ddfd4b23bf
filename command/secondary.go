package command

import "github.com/cyp0633/textcal/event"

// Secondary validators receive the full token list of a line whose slots all
// matched, so every index they are built with points at an already-typed token.

func all(vs ...Validator) Validator {
	return func(tokens []string) bool {
		for _, v := range vs {
			if !v(tokens) {
				return false
			}
		}
		return true
	}
}

// ordered requires the date-time at start to precede the one at end.
func ordered(start, end int) Validator {
	return func(tokens []string) bool {
		s, err := ParseDateTime(tokens[start])
		if err != nil {
			return false
		}
		e, err := ParseDateTime(tokens[end])
		if err != nil {
			return false
		}
		return s.Before(e)
	}
}

// sameDay requires two date-time tokens to fall on one calendar date.
func sameDay(a, b int) Validator {
	return func(tokens []string) bool {
		return tokens[a][:dateLen] == tokens[b][:dateLen]
	}
}

// weekdayOf requires the weekday letter at code to name the day of week of
// the date (or date-time) at date.
func weekdayOf(code, date int) Validator {
	return func(tokens []string) bool {
		want, ok := WeekdayOf(tokens[code][0])
		if !ok {
			return false
		}
		d, err := ParseDate(tokens[date][:dateLen])
		if err != nil {
			return false
		}
		return d.Weekday() == want
	}
}

// notBeforeDate requires the date at later to be on or after the date at earlier.
func notBeforeDate(later, earlier int) Validator {
	return func(tokens []string) bool {
		l, err := ParseDate(tokens[later][:dateLen])
		if err != nil {
			return false
		}
		e, err := ParseDate(tokens[earlier][:dateLen])
		if err != nil {
			return false
		}
		return !l.Before(e)
	}
}

// untilBound joins the until date with the start's time of day; the result
// must itself be a valid date-time and must not precede the start.
func untilBound(until, start int) Validator {
	return func(tokens []string) bool {
		bound := tokens[until] + tokens[start][dateLen:]
		if !IsValidDateTime(bound) {
			return false
		}
		b, err := ParseDateTime(bound)
		if err != nil {
			return false
		}
		s, err := ParseDateTime(tokens[start])
		if err != nil {
			return false
		}
		return !b.Before(s)
	}
}

// timeValue requires the new value to be a date-time when the property at
// prop is start or end.
func timeValue(prop, value int) Validator {
	return func(tokens []string) bool {
		if !event.IsTimeProperty(tokens[prop]) {
			return true
		}
		return IsValidDateTime(tokens[value])
	}
}
