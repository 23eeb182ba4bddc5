// Package app hosts the Bubble Tea program that edits a single block page.
package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/rs/zerolog"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/document"
	"tableflip.dev/blocks/pkg/editor"
	"tableflip.dev/blocks/pkg/surface"
	"tableflip.dev/blocks/pkg/tui/components/blockview"
	"tableflip.dev/blocks/pkg/tui/components/eventviewer"
	"tableflip.dev/blocks/pkg/tui/components/slashmenu"
	"tableflip.dev/blocks/pkg/tui/events"
	"tableflip.dev/blocks/pkg/tui/theme"
	"tableflip.dev/blocks/pkg/tui/ui/overlay"
)

const componentID events.ComponentID = "editor"

const helpText = "/ commands · enter new block · ctrl+x toggle · ctrl+g debug · ctrl+c quit"

// focusDrainMsg arrives one turn after an update that left focus requests
// queued, by which time the surfaces have been laid out again.
type focusDrainMsg struct{}

// Describe implements the logging helper.
func (focusDrainMsg) Describe() string { return "drain pending focus" }

func drainFocus() tea.Msg { return focusDrainMsg{} }

// Options configures the editor program.
type Options struct {
	Logger   *zerolog.Logger
	Debug    bool
	Mouse    bool
	MenuRows int
	IDSource document.IDSource
}

// Model is the root Bubble Tea model for the block editor.
type Model struct {
	editor   *editor.Editor
	registry *surface.MapRegistry
	surfaces map[string]*blockview.Surface
	menu     *slashmenu.Model
	theme    theme.Theme
	log      zerolog.Logger

	width    int
	height   int
	bodyRows int
	scroll   int
	menuRect overlay.Rect

	debugEnabled bool
	eventViewer  *eventviewer.Model
	status       string

	changes   []editor.Change
	lastFocus string
	lastMenu  menuKey
}

type menuKey struct {
	open    bool
	anchor  string
	filter  string
	matches int
}

// New constructs the editor model with a single focused empty block.
func New(opts Options) *Model {
	log := zerolog.New(io.Discard).Level(zerolog.DebugLevel)
	if opts.Logger != nil && opts.Logger.GetLevel() != zerolog.Disabled {
		log = *opts.Logger
	}
	th := theme.Default()
	m := &Model{
		registry: surface.NewRegistry(),
		surfaces: make(map[string]*blockview.Surface),
		menu:     slashmenu.New(th.Menu, opts.MenuRows),
		theme:    th,
		width:    80,
		height:   24,
	}

	m.log = log.Hook(zerolog.HookFunc(m.logToPane))
	edOpts := []editor.Option{
		editor.WithLogger(m.log),
		editor.WithObserver(m.observe),
	}
	if opts.IDSource != nil {
		edOpts = append(edOpts, editor.WithIDSource(opts.IDSource))
	}
	m.editor = editor.New(m.registry, edOpts...)

	if opts.Debug {
		m.debugEnabled = true
		m.eventViewer = eventviewer.NewModel(400)
	}
	m.layout()
	m.editor.Focus(m.editor.Focused(), surface.CaretEnd)
	m.lastFocus = m.editor.Focused()
	m.layout()
	return m
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(New(opts), progOpts...)
	_, err := p.Run()
	return err
}

// Editor exposes the editing core driven by the model.
func (m *Model) Editor() *editor.Editor { return m.editor }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update routes Bubble Tea messages into the editing core.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.noteEvent(msg)

	var cmds []tea.Cmd
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(v))
	case tea.MouseClickMsg:
		m.handleClick(v.Mouse())
	case focusDrainMsg:
		pending := m.editor.PendingFocus()
		n := m.editor.Drain()
		m.log.Debug().Int("transfers", n).Int("pending", pending).Msg("focus drained")
		if dropped := pending - n; dropped > 0 {
			cmds = append(cmds, events.DebugCmd(componentID, "focus", fmt.Sprintf("%d of %d focus requests dropped", dropped, pending)))
		}
	}

	m.layout()
	cmds = append(cmds, m.surfaceCmds()...)
	cmds = append(cmds, m.flush()...)
	if m.editor.PendingFocus() > 0 {
		cmds = append(cmds, drainFocus)
	}
	return m, tea.Batch(cmds...)
}

// View renders the page, the floating menu, the optional debug pane and the
// footer.
func (m *Model) View() (string, *tea.Cursor) {
	body := m.renderBody()
	if v := m.menu.View(); v != "" && !m.menuRect.Empty() {
		body = overlay.Compose(body, m.width, m.bodyRows, v, overlay.At(m.menuRect.X, m.menuRect.Y))
	}
	parts := []string{body}
	if m.debugEnabled && m.eventViewer != nil {
		if dv := m.eventViewer.View(); dv != "" {
			parts = append(parts, dv)
		}
	}
	parts = append(parts, m.renderFooter())
	return strings.Join(parts, "\n"), nil
}

func (m *Model) renderBody() string {
	snap := m.editor.Snapshot()
	lines := make([]string, 0, m.bodyRows)
	for i := m.scroll; i < len(snap.Blocks) && len(lines) < m.bodyRows; i++ {
		b := snap.Blocks[i]
		s, ok := m.surfaces[b.ID]
		if !ok {
			continue
		}
		lines = append(lines, blockview.Render(s, b, i, b.ID == snap.Focused, m.theme.Block))
	}
	for len(lines) < m.bodyRows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	status := m.status
	if status == "" {
		status = fmt.Sprintf("%d blocks", len(m.editor.Snapshot().Blocks))
	}
	right := m.theme.Footer.Status.Render(status)
	room := m.width - len([]rune(status)) - 2
	if room < 0 {
		room = 0
	}
	help := truncate.StringWithTail(helpText, uint(room), "…")
	pad := m.width - len([]rune(help)) - len([]rune(status))
	if pad < 1 {
		pad = 1
	}
	return m.theme.Footer.Help.Render(help) + strings.Repeat(" ", pad) + right
}

// logToPane mirrors log events into the debug pane while it is open.
func (m *Model) logToPane(_ *zerolog.Event, level zerolog.Level, msg string) {
	if m.eventViewer == nil {
		return
	}
	m.eventViewer.Append(eventviewer.Entry{
		Source:  "log",
		Summary: msg,
		Level:   eventviewer.LevelFor(level),
	})
}

// surfaceCmds collects commands the block inputs produced while taking
// focus.
func (m *Model) surfaceCmds() []tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range m.surfaces {
		if cmd := s.TakeCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (m *Model) observe(c editor.Change) {
	m.changes = append(m.changes, c)
}

// flush turns the changes gathered during an update into events.
func (m *Model) flush() []tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range m.changes {
		cmds = append(cmds, events.BlockChangeCmd(componentID, changeType(c.Action), events.RefFromBlock(c.Block)))
		if c.Action == editor.ActionRetype {
			m.status = "Turned into " + c.Block.Type.Descriptor().Label
		}
	}
	m.changes = nil

	if focused := m.editor.Focused(); focused != m.lastFocus {
		m.lastFocus = focused
		cmds = append(cmds, events.FocusCmd(componentID, focused))
	}

	mv := m.editor.Snapshot().Menu
	key := menuKey{open: mv.Open, anchor: mv.Anchor, filter: mv.Filter, matches: len(mv.Entries)}
	if key != m.lastMenu {
		m.lastMenu = key
		cmds = append(cmds, events.MenuChangeCmd(componentID, key.open, key.anchor, key.filter, key.matches))
	}
	return cmds
}

func changeType(a editor.Action) events.ChangeType {
	switch a {
	case editor.ActionInsert:
		return events.ChangeCreate
	case editor.ActionDelete:
		return events.ChangeDelete
	case editor.ActionRetype:
		return events.ChangeRetype
	default:
		return events.ChangeUpdate
	}
}

func (m *Model) toggleDebug() {
	if m.debugEnabled {
		m.debugEnabled = false
		m.eventViewer = nil
		m.status = "Debug log hidden"
		return
	}

	m.debugEnabled = true
	if m.eventViewer == nil {
		m.eventViewer = eventviewer.NewModel(400)
	}
	m.appendEvent(eventviewer.Entry{
		Summary: "debug",
		Detail:  "Debug window enabled",
		Source:  "ui",
	})
	m.status = "Debug log visible"
}

func (m *Model) noteEvent(msg tea.Msg) {
	if m.eventViewer == nil {
		return
	}

	source := "tea"
	if s, ok := eventSource(msg); ok && s != "" {
		source = s
	}

	entry := eventviewer.Entry{
		Timestamp: time.Now(),
		Source:    source,
		Summary:   fmt.Sprintf("%T", msg),
		Detail:    describeMsg(msg),
		Level:     eventviewer.LevelInfo,
	}
	if entry.Detail == "" {
		entry.Detail = fmt.Sprintf("%v", msg)
	}
	m.eventViewer.Append(entry)
}

func (m *Model) appendEvent(entry eventviewer.Entry) {
	if m.eventViewer == nil {
		return
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Source == "" {
		entry.Source = "ui"
	}
	if entry.Summary == "" {
		entry.Summary = "event"
	}
	m.eventViewer.Append(entry)
}

func describeMsg(msg tea.Msg) string {
	if d, ok := msg.(interface{ Describe() string }); ok {
		return d.Describe()
	}
	switch v := msg.(type) {
	case tea.KeyMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	case tea.MouseMsg:
		return fmt.Sprintf("mouse=%s", v)
	default:
		return ""
	}
}

func eventSource(msg tea.Msg) (string, bool) {
	switch v := msg.(type) {
	case events.BlockChangeMsg:
		return string(v.Component), true
	case events.MenuChangeMsg:
		return string(v.Component), true
	case events.FocusMsg:
		return string(v.Component), true
	case events.DebugMsg:
		return string(v.Component), true
	case focusDrainMsg:
		return "focus", true
	default:
		return "", false
	}
}

func blockAt(blocks []block.Block, i int) (block.Block, bool) {
	if i < 0 || i >= len(blocks) {
		return block.Block{}, false
	}
	return blocks[i], true
}
