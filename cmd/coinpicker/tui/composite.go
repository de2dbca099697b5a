package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Layer is a rendered block drawn above the base frame at a fixed position.
// Layers are how the dropdown panel escapes the trigger's layout box.
type Layer struct {
	Content string
	Pos     Point
}

// Size returns the layer's width and height in cells.
func (l Layer) Size() Size {
	return Size{W: lipgloss.Width(l.Content), H: lipgloss.Height(l.Content)}
}

// Composite draws layers over background in order. The background is a fully
// rendered frame of height rows; it is padded when shorter and any layer row
// beyond the frame is clipped.
func Composite(background string, height int, layers ...Layer) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	for _, layer := range layers {
		size := layer.Size()
		if layer.Content == "" || layer.Pos.Y >= len(bgLines) || layer.Pos.Y+size.H <= 0 {
			continue
		}
		for i, line := range strings.Split(layer.Content, "\n") {
			row := layer.Pos.Y + i
			if row < 0 || row >= len(bgLines) {
				continue
			}
			bgLines[row] = spliceLine(bgLines[row], line, layer.Pos.X)
		}
	}

	if height > 0 && len(bgLines) > height {
		bgLines = bgLines[:height]
	}
	return strings.Join(bgLines, "\n")
}

// spliceLine replaces the cells of bg starting at column col with fg,
// keeping any styled background content on either side.
func spliceLine(bg, fg string, col int) string {
	bgWidth := ansi.StringWidth(bg)
	left := ansi.Truncate(bg, col, "")
	if w := ansi.StringWidth(left); w < col {
		left += strings.Repeat(" ", col-w)
	}

	end := col + ansi.StringWidth(fg)
	right := ""
	if end < bgWidth {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}
