package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/coinpicker/internal/catalog"
)

// StatusBar renders the bottom row with list counts, the last action and
// keyboard shortcuts.
type StatusBar struct {
	shown     int
	total     int
	favorites int
	view      catalog.View
	loading   bool
	notice    string
	width     int
}

// NewStatusBar creates a status bar in the loading state.
func NewStatusBar() StatusBar {
	return StatusBar{loading: true}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetLoading marks a fetch as in flight.
func (s *StatusBar) SetLoading(loading bool) {
	s.loading = loading
}

// SetNotice sets the message describing the last action.
func (s *StatusBar) SetNotice(notice string) {
	s.notice = notice
}

// Update refreshes the counts from the filtered list.
func (s *StatusBar) Update(list FilteredList) {
	s.shown = len(list.Displayed())
	s.total = list.Total()
	s.favorites = len(list.Favorites())
	s.view = list.ActiveView()
}

// View renders the status bar with help on the right.
func (s StatusBar) View(help string) string {
	var left string
	if s.loading {
		left = "Loading coins…"
	} else {
		left = fmt.Sprintf("%d/%d %s · %d favorites", s.shown, s.total, s.view.String(), s.favorites)
	}
	if s.notice != "" {
		left += "  " + StatusBarNoticeStyle.Render(s.notice)
	}

	leftWidth := ansi.StringWidth(left)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	if maxHelp := availableWidth - leftWidth - 1; ansi.StringWidth(help) > maxHelp {
		help = ansi.Truncate(help, max(maxHelp, 0), "…")
	}
	gap := availableWidth - leftWidth - ansi.StringWidth(help)
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + help
	return StatusBarStyle.Width(s.width).MaxHeight(1).Render(content)
}
