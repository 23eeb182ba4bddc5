// Package eventviewer renders the debug pane: Bubble Tea messages and
// editor log lines, newest first, tagged by severity.
package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/rs/zerolog"
)

// Level is the severity an entry is shown with.
type Level int

const (
	// LevelDebug marks diagnostics.
	LevelDebug Level = iota - 1
	// LevelInfo is the zero value.
	LevelInfo
	// LevelWarn highlights potential issues.
	LevelWarn
	// LevelError highlights failures.
	LevelError
)

var levelTags = map[Level]string{
	LevelDebug: "DBG",
	LevelInfo:  "INF",
	LevelWarn:  "WRN",
	LevelError: "ERR",
}

func (l Level) String() string {
	if tag, ok := levelTags[l]; ok {
		return tag
	}
	return "???"
}

// LevelFor maps a zerolog level onto a pane severity.
func LevelFor(l zerolog.Level) Level {
	switch {
	case l >= zerolog.ErrorLevel && l != zerolog.NoLevel && l != zerolog.Disabled:
		return LevelError
	case l == zerolog.WarnLevel:
		return LevelWarn
	case l <= zerolog.DebugLevel:
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Entry is one line of the pane.
type Entry struct {
	Timestamp time.Time
	Source    string
	Summary   string
	Detail    string
	Level     Level
}

// Styles controls the pane's presentation.
type Styles struct {
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Timestamp lipgloss.Style
	Source    lipgloss.Style
	Levels    map[Level]lipgloss.Style
}

// DefaultStyles returns the stock styling for the debug pane.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Source:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Levels: map[Level]lipgloss.Style{
			LevelDebug: lipgloss.NewStyle().Faint(true),
			LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
			LevelError: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F")),
		},
	}
}

// Model keeps a bounded, newest-first log inside a scrollable viewport.
type Model struct {
	log      []Entry
	capacity int
	counts   map[Level]int

	vp     viewport.Model
	width  int
	height int
	styles Styles
}

// NewModel returns a pane that retains at most capacity entries.
func NewModel(capacity int) *Model {
	if capacity <= 0 {
		capacity = 200
	}
	return &Model{
		capacity: capacity,
		counts:   make(map[Level]int),
		vp:       viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		styles:   DefaultStyles(),
	}
}

// SetSize fits the pane, frame included, into width x height cells.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, 4), max(height, 3)
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height
	// Two border rows plus the header line.
	m.vp.SetWidth(max(1, width-2))
	m.vp.SetHeight(max(1, height-3))
	m.refresh()
}

// View renders the framed pane, or "" before the first SetSize.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.styles.Header.Render(m.header()), m.vp.View())
	return m.styles.Frame.Width(m.width).Height(m.height).Render(body)
}

// Append records entry at the top, evicting the oldest past capacity.
func (m *Model) Append(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Source == "" {
		entry.Source = "tea"
	}
	if entry.Summary == "" {
		entry.Summary = "event"
	}
	m.log = append([]Entry{entry}, m.log...)
	m.counts[entry.Level]++
	if len(m.log) > m.capacity {
		dropped := m.log[m.capacity:]
		for _, e := range dropped {
			m.counts[e.Level]--
		}
		m.log = m.log[:m.capacity]
	}
	m.refresh()
	m.vp.SetYOffset(0)
}

// Len reports how many entries are retained.
func (m *Model) Len() int { return len(m.log) }

// Count reports how many retained entries have level l.
func (m *Model) Count(l Level) int { return m.counts[l] }

// Entries returns the retained entries, newest first.
func (m *Model) Entries() []Entry {
	return append([]Entry(nil), m.log...)
}

// Clear drops every entry.
func (m *Model) Clear() {
	m.log = nil
	m.counts = make(map[Level]int)
	m.refresh()
}

func (m *Model) header() string {
	h := fmt.Sprintf("Editor events (%d)", len(m.log))
	if n := m.counts[LevelWarn]; n > 0 {
		h += fmt.Sprintf(" · %d warn", n)
	}
	if n := m.counts[LevelError]; n > 0 {
		h += fmt.Sprintf(" · %d error", n)
	}
	return h
}

func (m *Model) refresh() {
	if len(m.log) == 0 {
		m.vp.SetContent(m.styles.Timestamp.Render("No events yet"))
		return
	}
	var b strings.Builder
	for i, e := range m.log {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.line(e))
	}
	m.vp.SetContent(b.String())
}

func (m *Model) line(e Entry) string {
	text := e.Summary
	if e.Detail != "" {
		text += ": " + e.Detail
	}
	style := m.styles.Levels[e.Level]
	return strings.Join([]string{
		m.styles.Timestamp.Render(e.Timestamp.Format("15:04:05.000")),
		style.Render(e.Level.String()),
		m.styles.Source.Render("[" + e.Source + "]"),
		style.Render(text),
	}, " ")
}
