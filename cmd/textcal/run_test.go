package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/cyp0633/textcal/calendar"
	"github.com/cyp0633/textcal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

const script = `# weekly gym
create event gym from 2025-06-06T07:15 to 2025-06-06T08:15 repeats F for 3 times

create event standup from 2025-06-05T09:15 to 2025-06-05T09:30
print events on 2025-06-06
show status on 2025-06-05T09:20
exit
create event never from 2025-06-05T10:15 to 2025-06-05T11:15
`

func TestRunScript(t *testing.T) {
	store := calendar.New()
	var out bytes.Buffer

	require.NoError(t, runScript(store, strings.NewReader(script), &out, false, discard))
	assert.Equal(t, 4, store.Len(), "lines after exit are not applied")
	assert.Contains(t, out.String(), "- gym 2025-06-06T07:15 - 2025-06-06T08:15")
	assert.Contains(t, out.String(), "busy")
}

func TestRunScript_StopsOnError(t *testing.T) {
	in := "create event a from 2025-06-05T09:15 to 2025-06-05T09:30\n" +
		"create event a from 2025-06-05T09:15 to 2025-06-05T09:30\n" +
		"create event b from 2025-06-05T10:15 to 2025-06-05T10:30\n"

	store := calendar.New()
	err := runScript(store, strings.NewReader(in), io.Discard, false, discard)
	assert.ErrorIs(t, err, calendar.ErrDuplicateEvent)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, 1, store.Len())

	store = calendar.New()
	require.NoError(t, runScript(store, strings.NewReader(in), io.Discard, true, discard))
	assert.Equal(t, 2, store.Len())
}

func TestNewStore(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AllDayStart = "09:15"
	store, err := newStore(cfg, discard)
	require.NoError(t, err)
	assert.Equal(t, 9, store.AllDay().Start.Hour)

	cfg.AllDayStart = "late"
	_, err = newStore(cfg, discard)
	assert.Error(t, err)
}
