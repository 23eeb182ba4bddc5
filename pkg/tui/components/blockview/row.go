package blockview

import (
	"fmt"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/tui/theme"
)

const (
	// GutterWidth is the number of cells left of every block's marker.
	GutterWidth = 2

	gutterAdd   = "+ "
	gutterBlank = "  "
)

// Placeholder hints shown in an empty focused block.
const (
	FirstPlaceholder = "Type '/' for commands, or start writing..."
	Placeholder      = "Type '/' for commands"
)

// PlaceholderFor returns the hint for the block at index.
func PlaceholderFor(index int) string {
	if index == 0 {
		return FirstPlaceholder
	}
	return Placeholder
}

// Marker returns the decoration drawn before a block's text. Numbered
// blocks count their position in the whole page.
func Marker(b block.Block, index int) string {
	switch b.Type {
	case block.Bulleted:
		return "• "
	case block.Numbered:
		return fmt.Sprintf("%d. ", index+1)
	case block.Todo:
		if b.IsChecked() {
			return "[x] "
		}
		return "[ ] "
	case block.Quote:
		return "│ "
	case block.Code:
		return "▎ "
	default:
		return ""
	}
}

// TextLeft is the column where a block's editable text starts.
func TextLeft(b block.Block, index int) int {
	return GutterWidth + len([]rune(Marker(b, index)))
}

// OnGutter reports whether column x hits the insert gutter.
func OnGutter(x int) bool {
	return x >= 0 && x < GutterWidth
}

// OnCheckbox reports whether column x hits a to-do checkbox.
func OnCheckbox(b block.Block, x int) bool {
	return b.Type == block.Todo && x >= GutterWidth && x < GutterWidth+3
}

// Render draws the row for b. The surface supplies the input view.
func Render(s *Surface, b block.Block, index int, focused bool, styles theme.BlockTheme) string {
	gutter := gutterBlank
	if focused {
		gutter = gutterAdd
	}
	row := styles.Gutter.Render(gutter)
	if marker := Marker(b, index); marker != "" {
		row += styles.Marker.Render(marker)
	}
	return row + styles.For(b).Render(s.View())
}
