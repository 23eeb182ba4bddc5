package eventviewer

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestAppendKeepsNewestFirstAndCaps(t *testing.T) {
	m := NewModel(2)
	m.Append(Entry{Source: "editor", Summary: "one", Level: LevelError})
	m.Append(Entry{Source: "editor", Summary: "two"})
	m.Append(Entry{Source: "editor", Summary: "three"})

	if m.Len() != 2 {
		t.Fatalf("expected cap of 2 entries, got %d", m.Len())
	}
	entries := m.Entries()
	if entries[0].Summary != "three" || entries[1].Summary != "two" {
		t.Fatalf("unexpected order %+v", entries)
	}
	if m.Count(LevelError) != 0 || m.Count(LevelInfo) != 2 {
		t.Fatalf("evicted entries should leave the counts, got err=%d info=%d", m.Count(LevelError), m.Count(LevelInfo))
	}
}

func TestViewShowsHeaderAndEntries(t *testing.T) {
	m := NewModel(10)
	m.SetSize(80, 8)
	if !strings.Contains(m.View(), "No events yet") {
		t.Fatalf("expected empty placeholder, got %q", m.View())
	}

	m.Append(Entry{Source: "menu", Summary: "open", Detail: `filter:"/h"`})
	view := m.View()
	if !strings.Contains(view, "Editor events (1)") {
		t.Fatalf("expected header with count, got %q", view)
	}
	if !strings.Contains(view, "[menu]") || !strings.Contains(view, `open: filter:"/h"`) {
		t.Fatalf("expected entry in view, got %q", view)
	}
}

func TestSeverityTagsAndHeaderCounts(t *testing.T) {
	m := NewModel(10)
	m.SetSize(100, 10)
	m.Append(Entry{Source: "log", Summary: "focus: surface not materialized", Level: LevelDebug})
	m.Append(Entry{Source: "log", Summary: "slow render", Level: LevelWarn})
	m.Append(Entry{Source: "log", Summary: "editor stopped", Level: LevelError})

	view := m.View()
	for _, want := range []string{"DBG", "WRN", "ERR", "· 1 warn", "· 1 error"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}

	m.Clear()
	if m.Len() != 0 || m.Count(LevelWarn) != 0 {
		t.Fatalf("clear should reset entries and counts")
	}
}

func TestLevelFor(t *testing.T) {
	cases := map[zerolog.Level]Level{
		zerolog.TraceLevel: LevelDebug,
		zerolog.DebugLevel: LevelDebug,
		zerolog.InfoLevel:  LevelInfo,
		zerolog.NoLevel:    LevelInfo,
		zerolog.WarnLevel:  LevelWarn,
		zerolog.ErrorLevel: LevelError,
		zerolog.FatalLevel: LevelError,
		zerolog.PanicLevel: LevelError,
	}
	for in, want := range cases {
		if got := LevelFor(in); got != want {
			t.Fatalf("LevelFor(%s) = %s, want %s", in, got, want)
		}
	}
}
