package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/cyp0633/textcal/event"
	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(s string) time.Time {
	t, err := time.Parse(event.Layout, s)
	if err != nil {
		panic(err)
	}
	return t
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func sample(t *testing.T) []event.Event {
	t.Helper()
	b := event.NewSeriesBuilder(nil)
	series, err := b.CreateByOccurrences(event.SeriesSpec{
		Subject:   "gym",
		StartTime: event.TimeOfDay{Hour: 7, Minute: 15},
		EndTime:   event.TimeOfDay{Hour: 8, Minute: 15},
		StartDate: at("2025-06-06T00:00"),
		Weekdays:  "F",
		Details:   event.Details{Location: "Y", Status: "private"},
	}, 2)
	require.NoError(t, err)

	standup := b.Create("standup", at("2025-06-05T09:15"), at("2025-06-05T09:30"),
		event.Details{Description: "daily sync", Status: "public"})
	review := b.Create("review", at("2025-06-06T07:15"), at("2025-06-06T07:45"), event.Details{Status: "tentative"})

	// Deliberately out of order.
	return append(series, standup, review)
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	events := sample(t)
	require.NoError(t, WriteICS(&buf, events, Options{Now: fixedNow}))

	out := buf.String()
	assert.Contains(t, out, "PRODID:"+DefaultProductID)
	assert.Contains(t, out, "DTSTART:20250605T091500\r\n", "floating start, no zone suffix")
	assert.Contains(t, out, "DTSTAMP:20250601T120000Z")
	assert.Contains(t, out, "CLASS:PUBLIC")
	assert.Contains(t, out, "CLASS:PRIVATE")
	assert.NotContains(t, out, "TENTATIVE")

	cal, err := ical.NewDecoder(strings.NewReader(out)).Decode()
	require.NoError(t, err)
	vevents := cal.Events()
	require.Len(t, vevents, 4)

	var summaries []string
	for _, ev := range vevents {
		s, err := ev.Props.Text(ical.PropSummary)
		require.NoError(t, err)
		summaries = append(summaries, s)
	}
	assert.Equal(t, []string{"standup", "gym", "review", "gym"}, summaries, "sorted by start then subject")

	uid, err := vevents[0].Props.Text(ical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, UID(events[2]), uid)
	assert.True(t, strings.HasSuffix(uid, "-20250605T0915"))
}

func TestReadICS_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	events := sample(t)
	require.NoError(t, WriteICS(&buf, events, Options{Now: fixedNow, ProductID: "-//test//EN"}))

	got, err := ReadICS(&buf)
	require.NoError(t, err)
	require.Len(t, got, 4)

	byUID := make(map[string]event.Event)
	for _, e := range got {
		byUID[UID(e)] = e
	}
	for _, want := range events {
		e, ok := byUID[UID(want)]
		require.True(t, ok, want.String())
		if want.Status().OrEmpty() == "tentative" {
			assert.True(t, e.Status().IsAbsent(), "unknown status is not exported")
			continue
		}
		assert.True(t, want.Equal(e), "%s != %s", want, e)
	}
}

func TestReadICS_Invalid(t *testing.T) {
	_, err := ReadICS(strings.NewReader("not a calendar"))
	assert.Error(t, err)
}

func TestWriteXCal(t *testing.T) {
	var buf bytes.Buffer
	events := sample(t)
	require.NoError(t, WriteXCal(&buf, events, Options{Now: fixedNow}))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "icalendar", root.Tag)
	assert.Equal(t, NamespaceXCal, root.SelectAttrValue("xmlns", ""))

	vevents := root.FindElements("//vevent")
	require.Len(t, vevents, 4)
	first := vevents[0].FindElement("./properties/dtstart/date-time")
	require.NotNil(t, first)
	assert.Equal(t, "2025-06-05T09:15:00", first.Text())

	stamp := vevents[0].FindElement("./properties/dtstamp/date-time")
	require.NotNil(t, stamp)
	assert.Equal(t, "2025-06-01T12:00:00Z", stamp.Text())

	got, err := ReadXCal(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.True(t, events[2].Equal(got[0]))
}

func TestReadXCal_Invalid(t *testing.T) {
	_, err := ReadXCal(strings.NewReader("<calendar/>"))
	assert.Error(t, err)

	_, err = ReadXCal(strings.NewReader("<icalendar><vcalendar><components><vevent><properties/></vevent></components></vcalendar></icalendar>"))
	assert.Error(t, err)
}

func TestOptions_Defaults(t *testing.T) {
	o := Options{}.normalize()
	assert.Equal(t, DefaultProductID, o.ProductID)
	assert.False(t, o.Now.IsZero())
	assert.Equal(t, time.UTC, o.Now.Location())
}
