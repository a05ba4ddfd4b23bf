package command

import "strings"

// Type selects one of the fixed command shapes.
type Type int

const (
	TypeUnrecognized Type = -1

	TypeExit                    Type = 0
	TypeList                    Type = 1
	TypeExe                     Type = 2
	TypeCreateEvent             Type = 3
	TypeCreateSeriesCount       Type = 4
	TypeCreateSeriesUntil       Type = 5
	TypeCreateAllDay            Type = 6
	TypeCreateAllDaySeriesCount Type = 7
	TypeCreateAllDaySeriesUntil Type = 8
	TypeEditEventSpan           Type = 9
	TypeEditEventsFrom          Type = 10 // applied to the entire series
	TypeEditSeries              Type = 11 // applied from the given start forward
	TypePrintOn                 Type = 12
	TypePrintBetween            Type = 13
	TypeShowStatus              Type = 14
	TypeCreateCalendar          Type = 15
	TypeEditCalendar            Type = 16
	TypeUseCalendar             Type = 17
	TypeCopyEvent               Type = 18
	TypeCopyEventsOn            Type = 19
	TypeCopyEventsBetween       Type = 20
)

var typeNames = map[Type]string{
	TypeExit:                    "exit",
	TypeList:                    "list",
	TypeExe:                     "exe",
	TypeCreateEvent:             "create-event",
	TypeCreateSeriesCount:       "create-series-count",
	TypeCreateSeriesUntil:       "create-series-until",
	TypeCreateAllDay:            "create-all-day",
	TypeCreateAllDaySeriesCount: "create-all-day-series-count",
	TypeCreateAllDaySeriesUntil: "create-all-day-series-until",
	TypeEditEventSpan:           "edit-event",
	TypeEditEventsFrom:          "edit-events-from",
	TypeEditSeries:              "edit-series",
	TypePrintOn:                 "print-on",
	TypePrintBetween:            "print-between",
	TypeShowStatus:              "show-status",
	TypeCreateCalendar:          "create-calendar",
	TypeEditCalendar:            "edit-calendar",
	TypeUseCalendar:             "use-calendar",
	TypeCopyEvent:               "copy-event",
	TypeCopyEventsOn:            "copy-events-on",
	TypeCopyEventsBetween:       "copy-events-between",
}

// String provides a human-readable name for the command type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unrecognized"
}

// Command is the typed descriptor produced for one input line. Fields hold
// the raw tokens at the positions fixed for Type; consumers index them by
// position.
type Command struct {
	Type   Type
	Fields []string
}

// Recognized reports whether the line matched a template.
func (c Command) Recognized() bool {
	return c.Type != TypeUnrecognized
}

// Field returns the i-th extracted field, or "" when out of range.
func (c Command) Field(i int) string {
	if i < 0 || i >= len(c.Fields) {
		return ""
	}
	return c.Fields[i]
}

// Tokenize splits a line on runs of whitespace. There is no quoting.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Match classifies tokens against the bank. Only templates of the same arity
// are considered; a template wins if every slot accepts its token and its
// secondary validator (if any) passes. Among several winners the highest
// priority is kept, ties going to the later template.
func Match(tokens []string) (Template, bool) {
	var (
		best  Template
		found bool
	)
	for _, t := range bank {
		if len(t.Slots) != len(tokens) || !t.matches(tokens) {
			continue
		}
		if t.Validate != nil && !t.Validate(tokens) {
			continue
		}
		if !found || t.Priority >= best.Priority {
			best, found = t, true
		}
	}
	return best, found
}

// TypeOf returns the command type of tokens, or TypeUnrecognized.
func TypeOf(tokens []string) Type {
	t, ok := Match(tokens)
	if !ok {
		return TypeUnrecognized
	}
	return t.Type
}

// Parse tokenizes line and extracts the descriptor of the winning template.
// An unmatched line yields TypeUnrecognized with no fields; it is not an error.
func Parse(line string) Command {
	tokens := Tokenize(line)
	t, ok := Match(tokens)
	if !ok {
		return Command{Type: TypeUnrecognized}
	}
	return Command{Type: t.Type, Fields: t.extract(tokens)}
}
