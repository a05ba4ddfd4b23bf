package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

const icalUTC = "20060102T150405Z"

// Engine expands weekday patterns into concrete occurrence start times
type Engine struct {
	opts ExpansionOptions
}

// NewEngine creates a new recurrence engine with DefaultExpansionOptions
func NewEngine() *Engine {
	return NewEngineWithOptions(DefaultExpansionOptions)
}

// NewEngineWithOptions creates a new recurrence engine with custom limits
func NewEngineWithOptions(opts ExpansionOptions) *Engine {
	return &Engine{opts: opts}
}

// Expand returns the start of every occurrence of p, walking forward from
// first. Each occurrence keeps first's time of day; the first occurrence is
// the earliest matching weekday on or after first's date. Times are treated
// as wall-clock values and must be in UTC.
func (e *Engine) Expand(first time.Time, p Pattern) ([]time.Time, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if e.opts.MaxOccurrences > 0 && p.Count > e.opts.MaxOccurrences {
		return nil, fmt.Errorf("%w: %d requested, limit %d", ErrTooManyOccurrences, p.Count, e.opts.MaxOccurrences)
	}
	if p.Count == 0 && dateOf(p.Until).Before(dateOf(first)) {
		return nil, nil
	}

	set, err := e.ruleSet(first, p)
	if err != nil {
		return nil, err
	}

	var out []time.Time
	next := set.Iterator()
	for {
		occ, ok := next()
		if !ok {
			break
		}
		if e.opts.MaxOccurrences > 0 && len(out) == e.opts.MaxOccurrences {
			return nil, fmt.Errorf("%w: limit %d", ErrTooManyOccurrences, e.opts.MaxOccurrences)
		}
		out = append(out, occ)
	}
	return out, nil
}

// ruleSet builds the rrule set the same way an iCalendar DTSTART/RRULE pair reads.
func (e *Engine) ruleSet(first time.Time, p Pattern) (*rrule.Set, error) {
	full := fmt.Sprintf("DTSTART:%s\nRRULE:%s", first.UTC().Format(icalUTC), p.rule())
	set, err := rrule.StrToRRuleSet(full)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RRULE '%s': %w", p.rule(), err)
	}
	return set, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
