package slashmenu

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/editor"
	"tableflip.dev/blocks/pkg/tui/theme"
)

// EmptyText is shown when the filter matches no block type.
const EmptyText = "No results"

const (
	defaultLimit = 8
	frameRows    = 1
	marker       = "→ "
	blankMarker  = "  "
)

// Model renders the slash-command menu as a floating list. It owns only the
// scroll window; filtering and highlight live in the editor core.
type Model struct {
	styles theme.MenuTheme
	limit  int

	entries     []block.Descriptor
	highlight   int
	windowStart int
	rows        int

	view string
}

// New constructs a menu renderer showing at most limit rows at once.
func New(styles theme.MenuTheme, limit int) *Model {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Model{styles: styles, limit: limit, highlight: -1}
}

// Limit reports the configured maximum row count.
func (m *Model) Limit() int { return m.limit }

// Sync refreshes the rendered view from the editor's menu projection. The
// maxWidth and maxHeight bound the box including its frame.
func (m *Model) Sync(menu editor.MenuView, maxWidth, maxHeight int) {
	if !menu.Open {
		m.entries = nil
		m.highlight = -1
		m.windowStart = 0
		m.rows = 0
		m.view = ""
		return
	}
	m.entries = append(m.entries[:0], menu.Entries...)
	m.highlight = menu.Highlight
	m.updateWindow(maxHeight - 2*frameRows)
	m.view = m.render(maxWidth - 2)
}

// View returns the framed menu, or "" when closed.
func (m *Model) View() string { return m.view }

// WindowStart reports the index of the first visible entry.
func (m *Model) WindowStart() int { return m.windowStart }

// EntryAt maps a row relative to the top of the rendered box onto an entry.
func (m *Model) EntryAt(row int) (block.Descriptor, bool) {
	if m.view == "" {
		return block.Descriptor{}, false
	}
	idx := m.windowStart + row - frameRows
	if row < frameRows || idx < m.windowStart || idx >= m.windowStart+m.visible() || idx >= len(m.entries) {
		return block.Descriptor{}, false
	}
	return m.entries[idx], true
}

func (m *Model) visible() int { return m.rows }

func (m *Model) updateWindow(maxRows int) {
	total := len(m.entries)
	limit := m.limit
	if maxRows > 0 && limit > maxRows {
		limit = maxRows
	}
	if limit > total {
		limit = total
	}
	m.rows = limit
	if limit <= 0 {
		m.windowStart = 0
		return
	}
	if m.windowStart > total-limit {
		m.windowStart = total - limit
	}
	if m.windowStart < 0 {
		m.windowStart = 0
	}
	if m.highlight >= 0 {
		if m.highlight < m.windowStart {
			m.windowStart = m.highlight
		} else if m.highlight >= m.windowStart+limit {
			m.windowStart = m.highlight - limit + 1
		}
	}
}

func (m *Model) render(maxWidth int) string {
	var rows []string
	if len(m.entries) == 0 {
		rows = []string{m.styles.Empty.Render(EmptyText)}
	} else {
		end := m.windowStart + m.visible()
		for i := m.windowStart; i < end; i++ {
			rows = append(rows, m.renderEntry(m.entries[i], i == m.highlight))
		}
	}

	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row); w > width {
			width = w
		}
	}
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	content := lipgloss.NewStyle().Width(width).Align(lipgloss.Left)
	for i := range rows {
		if maxWidth > 0 && lipgloss.Width(rows[i]) > width {
			rows[i] = truncate.StringWithTail(rows[i], uint(width), "…")
		}
		rows[i] = content.Render(rows[i])
	}
	return m.styles.Frame.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderEntry(d block.Descriptor, selected bool) string {
	prefix := blankMarker
	label := m.styles.Label.Render(d.Label)
	desc := m.styles.Description.Render(d.Description)
	if selected {
		prefix = marker
		label = m.styles.SelectedLabel.Render(d.Label)
		desc = m.styles.SelectedDescription.Render(d.Description)
	}
	icon := m.styles.Icon.Render(padRight(d.Icon, 3))
	return prefix + icon + " " + label + "  " + desc
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
