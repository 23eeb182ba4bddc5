package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/blocks/pkg/block"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Block  BlockTheme
	Menu   MenuTheme
	Footer FooterTheme
}

// BlockTheme styles block rows by type.
type BlockTheme struct {
	Text        lipgloss.Style
	Heading1    lipgloss.Style
	Heading2    lipgloss.Style
	Heading3    lipgloss.Style
	Quote       lipgloss.Style
	Code        lipgloss.Style
	TodoChecked lipgloss.Style
	Marker      lipgloss.Style
	Gutter      lipgloss.Style
}

// For returns the style for a block's text.
func (t BlockTheme) For(b block.Block) lipgloss.Style {
	switch b.Type {
	case block.Heading1:
		return t.Heading1
	case block.Heading2:
		return t.Heading2
	case block.Heading3:
		return t.Heading3
	case block.Quote:
		return t.Quote
	case block.Code:
		return t.Code
	case block.Todo:
		if b.IsChecked() {
			return t.TodoChecked
		}
	}
	return t.Text
}

// MenuTheme styles the slash-command menu.
type MenuTheme struct {
	Frame               lipgloss.Style
	Icon                lipgloss.Style
	Label               lipgloss.Style
	Description         lipgloss.Style
	SelectedLabel       lipgloss.Style
	SelectedDescription lipgloss.Style
	Empty               lipgloss.Style
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

const (
	accent     = "#FF5FD7"
	background = "#1C1C1C"
)

// Blend mixes two hex colours in Lab space; t=0 yields a, t=1 yields b.
// Unparseable input returns a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	label := lipgloss.NewStyle().Bold(true)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	highlight := lipgloss.Color(Blend(background, accent, 0.35))

	return Theme{
		Block: BlockTheme{
			Text:     lipgloss.NewStyle(),
			Heading1: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("212")),
			Heading2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
			Heading3: lipgloss.NewStyle().Bold(true),
			Quote:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
			Code: lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")).
				Background(lipgloss.Color("236")),
			TodoChecked: lipgloss.NewStyle().Strikethrough(true).Faint(true),
			Marker:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Gutter:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
		Menu: MenuTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")),
			Icon:                lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Label:               label,
			Description:         desc,
			SelectedLabel:       label.Foreground(lipgloss.Color(accent)).Background(highlight),
			SelectedDescription: desc.Foreground(lipgloss.Color("252")).Background(highlight),
			Empty:               lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
		},
	}
}
