package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/coinpicker/internal/window"
)

// RenderFunc renders one item. index is the item's position in the full
// list, not in the visible slice. The result may span up to ItemHeight
// lines; missing lines are left blank and extra lines are dropped.
type RenderFunc func(item string, index int, selected bool) string

// VirtualList is a fixed-height scroll container that renders only the rows
// inside its window. Everything above and below the window is accounted for
// by the scroll offset alone, so the cost of View does not depend on the
// number of items.
type VirtualList struct {
	win    window.Window
	items  []string
	offset int // scroll position in rows, within [0, MaxOffset]
	cursor int
	width  int // row width, excluding the scrollbar column
	render RenderFunc
	empty  string
}

// NewVirtualList creates a list with the given window geometry and row
// renderer.
func NewVirtualList(win window.Window, render RenderFunc) VirtualList {
	return VirtualList{
		win:    window.New(win.ItemHeight, win.VisibleCount),
		render: render,
		width:  20,
	}
}

// SetItems replaces the list content. The offset and cursor are clamped to
// the new length, as a scroll container does when its content shrinks.
func (l *VirtualList) SetItems(items []string) {
	l.items = items
	l.clamp()
}

// SetWindow changes the row geometry and re-clamps the scroll state.
func (l *VirtualList) SetWindow(win window.Window) {
	l.win = window.New(win.ItemHeight, win.VisibleCount)
	l.clamp()
}

// SetWidth sets the row width, excluding the scrollbar column.
func (l *VirtualList) SetWidth(w int) {
	l.width = max(w, 1)
}

// SetEmptyText sets the placeholder shown when the list has no items.
func (l *VirtualList) SetEmptyText(s string) {
	l.empty = s
}

// Window returns the list geometry.
func (l VirtualList) Window() window.Window { return l.win }

// Items returns the list content.
func (l VirtualList) Items() []string { return l.items }

// Len returns the number of items.
func (l VirtualList) Len() int { return len(l.items) }

// Offset returns the scroll offset in rows.
func (l VirtualList) Offset() int { return l.offset }

// Cursor returns the index of the highlighted item.
func (l VirtualList) Cursor() int { return l.cursor }

// Selected returns the highlighted item, if any.
func (l VirtualList) Selected() (string, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return "", false
	}
	return l.items[l.cursor], true
}

// Span returns the items currently inside the window.
func (l VirtualList) Span() window.Span {
	return l.win.Slice(len(l.items), l.offset)
}

// Visible returns the items currently inside the window.
func (l VirtualList) Visible() []string {
	s := l.Span()
	return l.items[s.Start:s.End()]
}

// RenderedRows returns how many items View renders.
func (l VirtualList) RenderedRows() int {
	return l.Span().Count
}

// ScrollBy moves the scroll offset by delta rows.
func (l *VirtualList) ScrollBy(delta int) {
	l.ScrollTo(l.offset + delta)
}

// ScrollTo sets the scroll offset, clamped to the scrollable range.
func (l *VirtualList) ScrollTo(offset int) {
	l.offset = l.win.Clamp(len(l.items), offset)
}

// MoveCursor moves the cursor by delta items and scrolls it into view.
func (l *VirtualList) MoveCursor(delta int) {
	l.SetCursor(l.cursor + delta)
}

// SetCursor highlights item i, clamped to the list, and scrolls it into view.
func (l *VirtualList) SetCursor(i int) {
	if len(l.items) == 0 {
		l.cursor = 0
		return
	}
	l.cursor = min(max(i, 0), len(l.items)-1)
	l.offset = l.win.Reveal(len(l.items), l.offset, l.cursor)
}

func (l *VirtualList) clamp() {
	n := len(l.items)
	l.offset = l.win.Clamp(n, l.offset)
	if l.cursor >= n {
		l.cursor = max(n-1, 0)
	}
}

// View renders exactly Height() lines: the visible rows at their positions
// relative to the scroll offset, and a scrollbar column on the right.
func (l VirtualList) View() string {
	height := l.win.Height()
	lines := make([]string, height)

	if len(l.items) == 0 && l.empty != "" {
		lines[0] = EmptyListStyle.Render(ansi.Truncate(l.empty, l.width, "…"))
	}

	span := l.Span()
	for local := 0; local < span.Count; local++ {
		index := span.Start + local
		top := l.win.Top(span, local) - l.offset
		rowLines := strings.Split(l.render(l.items[index], index, index == l.cursor), "\n")
		for k := 0; k < l.win.ItemHeight && k < len(rowLines); k++ {
			if y := top + k; y >= 0 && y < height {
				lines[y] = rowLines[k]
			}
		}
	}

	pos, length := l.win.Thumb(len(l.items), l.offset)
	var b strings.Builder
	for y, line := range lines {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(fitWidth(line, l.width))
		switch {
		case length == 0:
			b.WriteString(" ")
		case y >= pos && y < pos+length:
			b.WriteString(ScrollThumbStyle.Render("┃"))
		default:
			b.WriteString(ScrollTrackStyle.Render("│"))
		}
	}
	return b.String()
}

// fitWidth truncates or pads s to exactly w cells.
func fitWidth(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	if sw := ansi.StringWidth(s); sw < w {
		s += strings.Repeat(" ", w-sw)
	}
	return s
}
