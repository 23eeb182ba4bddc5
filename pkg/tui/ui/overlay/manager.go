package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Placement controls overlay alignment and sizing. When Anchored is set the
// overlay's top-left corner sits at (MarginX, MarginY) and alignment is
// ignored.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	Anchored   bool
	MarginX    int
	MarginY    int
	Width      int
	Height     int
}

// At returns an anchored placement with its top-left corner at (x, y).
func At(x, y int) Placement {
	return Placement{Anchored: true, MarginX: x, MarginY: y}
}

// Rect is the cell region an overlay occupies once composed.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Bounds computes where Compose will draw the foreground within a
// width x height background.
func Bounds(width, height int, foreground string, placement Placement) Rect {
	if foreground == "" || width <= 0 || height <= 0 {
		return Rect{}
	}
	fgLines := strings.Split(foreground, "\n")

	overlayWidth := placement.Width
	if overlayWidth <= 0 {
		for _, line := range fgLines {
			if w := lipgloss.Width(line); w > overlayWidth {
				overlayWidth = w
			}
		}
	}
	if overlayWidth <= 0 {
		return Rect{}
	}
	if overlayWidth > width {
		overlayWidth = width
	}

	overlayHeight := placement.Height
	if overlayHeight <= 0 {
		overlayHeight = len(fgLines)
	}
	if overlayHeight > height {
		overlayHeight = height
	}

	x, y := computeOffsets(width, height, overlayWidth, overlayHeight, placement)
	return Rect{X: x, Y: y, Width: overlayWidth, Height: overlayHeight}
}

// Compose overlays the foreground view atop the background while preserving
// background content outside the overlay bounds.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bgLines := normalizeBackground(background, width, height)
	rect := Bounds(width, height, foreground, placement)
	if rect.Empty() {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	for row := 0; row < rect.Height; row++ {
		destY := rect.Y + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine := ""
		if row < len(fgLines) {
			fgLine = fgLines[row]
		}
		fgLine = padToWidth(fgLine, rect.Width)

		baseLine := bgLines[destY]
		prefix := sliceWidth(baseLine, 0, rect.X)
		suffix := sliceWidth(baseLine, rect.X+rect.Width, width)
		bgLines[destY] = prefix + fgLine + suffix
	}

	return strings.Join(bgLines, "\n")
}

func normalizeBackground(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	currWidth := lipgloss.Width(s)
	if currWidth >= width {
		return lipgloss.NewStyle().Width(width).Render(s)
	}
	return s + strings.Repeat(" ", width-currWidth)
}

// sliceWidth cuts a plain-text line by display cells. Styled lines lose
// their escape sequences at the cut.
func sliceWidth(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	if end > lipgloss.Width(s) {
		end = lipgloss.Width(s)
	}
	if start >= end {
		return ""
	}

	result := strings.Builder{}
	widthSeen := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		next := widthSeen + rw
		if next <= start {
			widthSeen = next
			continue
		}
		if widthSeen >= end || next > end {
			break
		}
		result.WriteRune(r)
		widthSeen = next
	}
	return result.String()
}

func computeOffsets(width, height, overlayWidth, overlayHeight int, placement Placement) (int, int) {
	offsetX, offsetY := placement.MarginX, placement.MarginY

	if !placement.Anchored {
		h := placement.Horizontal
		if h == 0 {
			h = lipgloss.Center
		}
		v := placement.Vertical
		if v == 0 {
			v = lipgloss.Center
		}
		switch h {
		case lipgloss.Right:
			offsetX = width - overlayWidth - placement.MarginX
		case lipgloss.Center:
			offsetX = (width - overlayWidth) / 2
		}
		switch v {
		case lipgloss.Bottom:
			offsetY = height - overlayHeight - placement.MarginY
		case lipgloss.Center:
			offsetY = (height - overlayHeight) / 2
		}
	}

	offsetX = clamp(offsetX, 0, width-overlayWidth)
	offsetY = clamp(offsetY, 0, height-overlayHeight)
	return offsetX, offsetY
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
