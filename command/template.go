package command

import (
	"fmt"
	"strings"
)

// SlotKind classifies one position of a command template.
type SlotKind int

const (
	SlotLiteral SlotKind = iota
	SlotWildcard
	SlotDate
	SlotDateTime
	SlotWeekday
	SlotPositiveInteger
	SlotProperty
	SlotCalendarName
	SlotAreaName
	SlotCalendarProperty
)

// placeholders maps the template notation to slot kinds.
var placeholders = map[string]SlotKind{
	"<s>":  SlotWildcard,
	"<v>":  SlotWildcard,
	"<d>":  SlotDate,
	"<dt>": SlotDateTime,
	"<w>":  SlotWeekday,
	"<n>":  SlotPositiveInteger,
	"<p>":  SlotProperty,
	"<cn>": SlotCalendarName,
	"<al>": SlotAreaName,
	"<pn>": SlotCalendarProperty,
}

// Slot is one position of a template.
type Slot struct {
	Kind    SlotKind
	Literal string
	// Notation is the word the slot was declared with, e.g. "<dt>" or "from".
	Notation string
}

// Accepts reports whether tok can fill this slot.
func (s Slot) Accepts(tok string) bool {
	switch s.Kind {
	case SlotLiteral:
		return tok == s.Literal
	case SlotWildcard, SlotCalendarName, SlotAreaName:
		return true
	case SlotDate:
		return IsValidDate(tok)
	case SlotDateTime:
		return IsValidDateTime(tok)
	case SlotWeekday:
		return IsWeekdayCode(tok)
	case SlotPositiveInteger:
		return IsPositiveInteger(tok)
	case SlotProperty:
		return IsPropertyName(tok)
	case SlotCalendarProperty:
		return IsCalendarPropertyName(tok)
	default:
		return false
	}
}

// Validator is a cross-token check run after every slot accepted its token.
type Validator func(tokens []string) bool

// Template is one entry of the command bank.
type Template struct {
	Type  Type
	Slots []Slot
	// Fields are the token positions extracted into the descriptor: every
	// non-literal slot, in order.
	Fields []int
	// Validate is optional.
	Validate Validator
	// Priority breaks ties between templates that both fully match; equal
	// priorities go to the later template in the bank.
	Priority int
}

// Pattern renders the template back into its notation.
func (t Template) Pattern() string {
	parts := make([]string, len(t.Slots))
	for i, s := range t.Slots {
		parts[i] = s.Notation
	}
	return strings.Join(parts, " ")
}

// matches runs the per-slot check only.
func (t Template) matches(tokens []string) bool {
	if len(tokens) != len(t.Slots) {
		return false
	}
	for i, s := range t.Slots {
		if !s.Accepts(tokens[i]) {
			return false
		}
	}
	return true
}

func (t Template) extract(tokens []string) []string {
	fields := make([]string, len(t.Fields))
	for i, pos := range t.Fields {
		fields[i] = tokens[pos]
	}
	return fields
}

func newTemplate(typ Type, pattern string, validate Validator) Template {
	words := strings.Fields(pattern)
	t := Template{
		Type:     typ,
		Slots:    make([]Slot, len(words)),
		Validate: validate,
	}
	for i, w := range words {
		if kind, ok := placeholders[w]; ok {
			t.Slots[i] = Slot{Kind: kind, Notation: w}
			t.Fields = append(t.Fields, i)
			continue
		}
		if strings.HasPrefix(w, "<") {
			panic(fmt.Sprintf("command: unknown placeholder %q in %q", w, pattern))
		}
		t.Slots[i] = Slot{Kind: SlotLiteral, Literal: w, Notation: w}
	}
	return t
}

// bank is scanned in order; the order matters only for equal-priority ties.
var bank = []Template{
	newTemplate(TypeExit, "exit", nil),
	newTemplate(TypeList, "list", nil),
	newTemplate(TypeExe, "exe", nil),
	newTemplate(TypeCreateEvent, "create event <s> from <dt> to <dt>",
		ordered(4, 6)),
	newTemplate(TypeCreateSeriesCount, "create event <s> from <dt> to <dt> repeats <w> for <n> times",
		all(ordered(4, 6), sameDay(4, 6), weekdayOf(8, 4))),
	newTemplate(TypeCreateSeriesUntil, "create event <s> from <dt> to <dt> repeats <w> until <d>",
		all(ordered(4, 6), sameDay(4, 6), weekdayOf(8, 4), untilBound(10, 4))),
	newTemplate(TypeCreateAllDay, "create event <s> on <d>", nil),
	newTemplate(TypeCreateAllDaySeriesCount, "create event <s> on <d> repeats <w> for <n> times", nil),
	newTemplate(TypeCreateAllDaySeriesUntil, "create event <s> on <d> repeats <w> until <d>",
		all(weekdayOf(6, 4), notBeforeDate(8, 4))),
	newTemplate(TypeEditEventSpan, "edit event <p> <s> from <dt> to <dt> with <v>",
		all(ordered(5, 7), timeValue(2, 9))),
	newTemplate(TypeEditEventsFrom, "edit event <p> <s> from <dt> with <v>",
		timeValue(2, 7)),
	newTemplate(TypeEditSeries, "edit series <p> <s> from <dt> with <v>",
		timeValue(2, 7)),
	newTemplate(TypePrintOn, "print events on <d>", nil),
	newTemplate(TypePrintBetween, "print events from <dt> to <dt>",
		ordered(3, 5)),
	newTemplate(TypeShowStatus, "show status on <dt>", nil),
	newTemplate(TypeCreateCalendar, "create calendar --name <cn> --timezone <al>", nil),
	newTemplate(TypeEditCalendar, "edit calendar --name <cn> --property <pn> <v>", nil),
	newTemplate(TypeUseCalendar, "use calendar --name <cn>", nil),
	newTemplate(TypeCopyEvent, "copy event <s> on <dt> --target <cn> to <dt>", nil),
	newTemplate(TypeCopyEventsOn, "copy events on <d> --target <cn> to <d>", nil),
	newTemplate(TypeCopyEventsBetween, "copy events between <d> and <d> --target <cn> to <d>", nil),
}

// Bank returns a copy of the template bank in scan order.
func Bank() []Template {
	out := make([]Template, len(bank))
	copy(out, bank)
	return out
}
