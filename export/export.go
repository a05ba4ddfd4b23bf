package export

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cyp0633/textcal/event"
)

// DefaultProductID is the PRODID written when Options.ProductID is empty.
const DefaultProductID = "-//textcal//NONSGML v1.0//EN"

const (
	floatingLayout = "20060102T150405"
	uidLayout      = "20060102T1504"
)

// Options controls calendar rendering.
type Options struct {
	ProductID string
	// Now is written as DTSTAMP. Zero means time.Now().
	Now time.Time
}

func (o Options) normalize() Options {
	if o.ProductID == "" {
		o.ProductID = DefaultProductID
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	o.Now = o.Now.UTC().Truncate(time.Second)
	return o
}

// record is the flattened VEVENT content shared by both renderers.
type record struct {
	uid         string
	summary     string
	start       time.Time
	end         time.Time
	hasEnd      bool
	description string
	location    string
	class       string
	related     string
}

func toRecord(e event.Event) record {
	d := e.Details()
	return record{
		uid:         UID(e),
		summary:     e.Subject(),
		start:       e.Start(),
		end:         e.End(),
		hasEnd:      e.HasEnd(),
		description: d.Description,
		location:    d.Location,
		class:       classOf(d.Status),
		related:     e.Series().String(),
	}
}

// UID returns the iCalendar UID of e: its series and start, which is unique
// within a store since a series never holds two events at the same start.
func UID(e event.Event) string {
	return fmt.Sprintf("%s-%s", e.Series(), e.Start().Format(uidLayout))
}

// classOf maps a free-form status to CLASS. Unknown statuses have no CLASS.
func classOf(status string) string {
	switch strings.ToLower(status) {
	case "public":
		return "PUBLIC"
	case "private":
		return "PRIVATE"
	}
	return ""
}

// sorted returns the records ordered by start, then subject.
func sorted(events []event.Event) []record {
	recs := make([]record, len(events))
	for i, e := range events {
		recs[i] = toRecord(e)
	}
	slices.SortStableFunc(recs, func(a, b record) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}
		return cmp.Compare(a.summary, b.summary)
	})
	return recs
}
