package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/coinpicker/internal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("c%05d", i)
	}
	return items
}

func plainRender(item string, index int, selected bool) string {
	mark := " "
	if selected {
		mark = ">"
	}
	return fmt.Sprintf("%s%s#%d", mark, item, index)
}

func newTestVirtualList(ih, vc int, items []string) VirtualList {
	l := NewVirtualList(window.New(ih, vc), plainRender)
	l.SetWidth(20)
	l.SetItems(items)
	return l
}

func TestVirtualListRendersOnlyWindow(t *testing.T) {
	for _, n := range []int{10, 1000, 100000} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			calls := 0
			l := NewVirtualList(window.New(1, 9), func(item string, index int, selected bool) string {
				calls++
				return item
			})
			l.SetItems(numbered(n))
			l.ScrollTo(n / 2)

			view := l.View()
			assert.Equal(t, 9, calls)
			assert.Equal(t, 9, l.RenderedRows())
			assert.Len(t, strings.Split(view, "\n"), 9)
		})
	}
}

func TestVirtualListPassesGlobalIndex(t *testing.T) {
	l := newTestVirtualList(1, 9, numbered(100))
	l.ScrollTo(50)

	lines := strings.Split(l.View(), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "c00050#50")
	assert.Contains(t, lines[8], "c00058#58")
}

func TestVirtualListScrollClamps(t *testing.T) {
	l := newTestVirtualList(1, 9, numbered(100))

	l.ScrollTo(1000)
	assert.Equal(t, 91, l.Offset())
	assert.Equal(t, 91, l.Span().Start)
	assert.Equal(t, 9, l.Span().Count)

	l.ScrollBy(-5000)
	assert.Equal(t, 0, l.Offset())
}

func TestVirtualListPartialOffset(t *testing.T) {
	l := NewVirtualList(window.New(2, 3), func(item string, index int, _ bool) string {
		return item + "\n" + item + "-sub"
	})
	l.SetWidth(12)
	l.SetItems(numbered(10))
	l.ScrollTo(3)

	assert.Equal(t, 1, l.Span().Start)
	lines := strings.Split(l.View(), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "c00001-sub")
	assert.Contains(t, lines[1], "c00002")
	assert.NotContains(t, lines[1], "sub")
}

func TestVirtualListShortList(t *testing.T) {
	l := newTestVirtualList(1, 9, numbered(3))
	assert.Equal(t, 3, l.RenderedRows())
	assert.Equal(t, 0, l.Offset())

	lines := strings.Split(l.View(), "\n")
	require.Len(t, lines, 9)
	for _, line := range lines {
		assert.Equal(t, 21, ansi.StringWidth(line))
		assert.NotContains(t, line, "┃")
	}
}

func TestVirtualListScrollbar(t *testing.T) {
	l := newTestVirtualList(1, 9, numbered(100))
	view := l.View()
	assert.Contains(t, view, "┃")
	assert.Contains(t, view, "│")
	for _, line := range strings.Split(view, "\n") {
		assert.Equal(t, 21, ansi.StringWidth(line))
	}
}

func TestVirtualListEmpty(t *testing.T) {
	l := newTestVirtualList(1, 9, nil)
	l.SetEmptyText("No coins")

	assert.Equal(t, 0, l.RenderedRows())
	_, ok := l.Selected()
	assert.False(t, ok)

	lines := strings.Split(l.View(), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "No coins")
}

func TestVirtualListShrinkClampsState(t *testing.T) {
	l := newTestVirtualList(1, 9, numbered(100))
	l.SetCursor(95)
	assert.Equal(t, 87, l.Offset())

	l.SetItems(numbered(10))
	assert.Equal(t, 1, l.Offset())
	assert.Equal(t, 9, l.Cursor())

	l.SetItems(nil)
	assert.Equal(t, 0, l.Offset())
	assert.Equal(t, 0, l.Cursor())
}

func TestVirtualListCursorReveal(t *testing.T) {
	l := newTestVirtualList(1, 9, numbered(100))

	l.MoveCursor(12)
	assert.Equal(t, 12, l.Cursor())
	assert.Equal(t, 4, l.Offset())
	assert.Equal(t, 12, l.Span().End()-1)

	l.MoveCursor(-10)
	assert.Equal(t, 2, l.Cursor())
	assert.Equal(t, 2, l.Offset())

	l.MoveCursor(-10)
	assert.Equal(t, 0, l.Cursor())

	item, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "c00000", item)
	assert.Contains(t, strings.Split(l.View(), "\n")[0], ">c00000")
}

func TestVirtualListVisible(t *testing.T) {
	l := newTestVirtualList(1, 4, numbered(10))
	l.ScrollTo(3)
	assert.Equal(t, []string{"c00003", "c00004", "c00005", "c00006"}, l.Visible())
}

func TestVirtualListSetWindowRecomputes(t *testing.T) {
	l := newTestVirtualList(1, 9, numbered(100))
	l.ScrollTo(50)

	l.SetWindow(window.New(2, 4))
	assert.Equal(t, window.Span{Start: 25, Count: 4}, l.Span())
	assert.Len(t, strings.Split(l.View(), "\n"), 8)

	l.SetWindow(window.New(1, 200))
	assert.Equal(t, 0, l.Offset())
	assert.Equal(t, 100, l.RenderedRows())
}
