package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/coinpicker/internal/catalog"
	"github.com/ruminaider/coinpicker/internal/window"
)

// DefaultListWidth is the width of a list row, excluding the scrollbar.
const DefaultListWidth = 24

// FilteredList is the panel content: a search field, the view tabs and the
// windowed list of displayed items. It is the only owner of the pipeline;
// other components change its state through ToggleFavorite, SetQuery,
// SetView, Clear and SetItems.
type FilteredList struct {
	pipeline *catalog.Pipeline
	input    textinput.Model
	tabs     TabBar
	list     VirtualList
	zones    Zones
	keys     KeyMap
	width    int
}

// NewFilteredList creates an empty list in the All Coins view with the
// given favorites preselected.
func NewFilteredList(win window.Window, favorites []string, zones Zones) FilteredList {
	p := catalog.NewPipeline(favorites...)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search…"
	ti.CharLimit = 32

	f := FilteredList{
		pipeline: p,
		input:    ti,
		tabs:     NewTabBar(p.View(), zones),
		list:     NewVirtualList(win, rowRenderer(p, zones)),
		zones:    zones,
		keys:     DefaultKeyMap(),
	}
	f.SetWidth(DefaultListWidth)
	f.sync()
	return f
}

// rowRenderer draws a row as a star toggle followed by the symbol.
func rowRenderer(p *catalog.Pipeline, zones Zones) RenderFunc {
	return func(item string, _ int, selected bool) string {
		star := StarOffStyle.Render("☆")
		if p.IsFavorite(item) {
			star = StarOnStyle.Render("★")
		}
		style := RowStyle
		if selected {
			style = CursorRowStyle
		}
		return zones.Mark(ZoneRow(item), zones.Mark(ZoneStar(item), star)+" "+style.Render(item))
	}
}

// SetWidth sets the row width, excluding the scrollbar column.
func (f *FilteredList) SetWidth(w int) {
	f.width = max(w, 8)
	f.list.SetWidth(f.width)
	// Leave room for the search glyph, the clear button and the cursor cell.
	f.input.Width = f.width - 5
}

// Width returns the rendered width, including the scrollbar column.
func (f FilteredList) Width() int { return f.width + 1 }

// SetWindow changes the list geometry.
func (f *FilteredList) SetWindow(win window.Window) {
	f.list.SetWindow(win)
}

// SetItems replaces the item set.
func (f *FilteredList) SetItems(items []string) {
	if f.pipeline.SetItems(items) {
		f.sync()
	}
}

// SetQuery replaces the search query.
func (f *FilteredList) SetQuery(q string) {
	if f.input.Value() != q {
		f.input.SetValue(q)
	}
	if f.pipeline.SetQuery(q) {
		f.refilter()
	}
}

// Clear empties the search query.
func (f *FilteredList) Clear() {
	f.SetQuery("")
}

// SetView switches the active tab. Selecting the active tab does nothing.
func (f *FilteredList) SetView(v catalog.View) {
	if f.pipeline.SetView(v) {
		f.tabs.SetActive(v)
		f.refilter()
	}
}

// ToggleFavorite flips the favorite state of item and returns a command
// reporting the new state.
func (f *FilteredList) ToggleFavorite(item string) tea.Cmd {
	fav := f.pipeline.ToggleFavorite(item)
	f.sync()
	return func() tea.Msg {
		return FavoriteToggledMsg{Symbol: item, Favorite: fav}
	}
}

// Query returns the current search query.
func (f FilteredList) Query() string { return f.pipeline.Query() }

// ActiveView returns the active tab.
func (f FilteredList) ActiveView() catalog.View { return f.pipeline.View() }

// Displayed returns the items currently listed.
func (f FilteredList) Displayed() []string { return f.pipeline.Displayed() }

// Total returns the size of the item set.
func (f FilteredList) Total() int { return len(f.pipeline.Items()) }

// Favorites returns the favorites in lexicographic order.
func (f FilteredList) Favorites() []string { return f.pipeline.Favorites() }

// IsFavorite reports whether item is a favorite.
func (f FilteredList) IsFavorite(item string) bool { return f.pipeline.IsFavorite(item) }

// List returns the windowed list.
func (f FilteredList) List() VirtualList { return f.list }

// Focus focuses the search field.
func (f *FilteredList) Focus() tea.Cmd { return f.input.Focus() }

// Blur removes focus from the search field.
func (f *FilteredList) Blur() { f.input.Blur() }

// sync pushes the pipeline's displayed items into the list.
func (f *FilteredList) sync() {
	f.list.SetItems(f.pipeline.Displayed())
	switch {
	case strings.TrimSpace(f.pipeline.Query()) != "":
		f.list.SetEmptyText("No matches")
	case f.pipeline.View() == catalog.ViewFavorites:
		f.list.SetEmptyText("No favorites yet")
	default:
		f.list.SetEmptyText("No coins")
	}
}

// refilter syncs after the query or view changed. The old cursor index
// points at an unrelated item in the new result, so the cursor moves to the
// first visible row.
func (f *FilteredList) refilter() {
	f.sync()
	f.list.SetCursor(f.list.Span().Start)
}

// Update handles keys and mouse events while the panel is open.
func (f FilteredList) Update(msg tea.Msg) (FilteredList, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return f.updateKey(msg)
	case tea.MouseMsg:
		return f.updateMouse(msg)
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f FilteredList) updateKey(msg tea.KeyMsg) (FilteredList, tea.Cmd) {
	win := f.list.Window()
	switch {
	case key.Matches(msg, f.keys.Up):
		f.list.MoveCursor(-1)
		return f, nil
	case key.Matches(msg, f.keys.Down):
		f.list.MoveCursor(1)
		return f, nil
	case key.Matches(msg, f.keys.PageUp):
		f.list.MoveCursor(-win.VisibleCount)
		return f, nil
	case key.Matches(msg, f.keys.PageDown):
		f.list.MoveCursor(win.VisibleCount)
		return f, nil
	case key.Matches(msg, f.keys.Favorite):
		if item, ok := f.list.Selected(); ok {
			return f, f.ToggleFavorite(item)
		}
		return f, nil
	case key.Matches(msg, f.keys.NextTab):
		f.SetView(f.tabs.Next())
		return f, nil
	case key.Matches(msg, f.keys.AllTab):
		f.SetView(catalog.ViewAll)
		return f, nil
	case key.Matches(msg, f.keys.Favorites):
		f.SetView(catalog.ViewFavorites)
		return f, nil
	case key.Matches(msg, f.keys.Choose):
		if item, ok := f.list.Selected(); ok {
			return f, func() tea.Msg { return CoinChosenMsg{Symbol: item} }
		}
		return f, nil
	}

	// Everything else edits the query.
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.pipeline.SetQuery(f.input.Value()) {
		f.refilter()
	}
	return f, cmd
}

func (f FilteredList) updateMouse(msg tea.MouseMsg) (FilteredList, tea.Cmd) {
	step := f.list.Window().ItemHeight
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		f.list.ScrollBy(-step)
		return f, nil
	case msg.Button == tea.MouseButtonWheelDown:
		f.list.ScrollBy(step)
		return f, nil
	case !isPress(msg):
		return f, nil
	}

	if f.Query() != "" && f.zones.InBounds(ZoneClear, msg) {
		f.Clear()
		return f, nil
	}
	for _, v := range f.tabs.Views() {
		if f.zones.InBounds(ZoneTab(v), msg) {
			f.SetView(v)
			return f, nil
		}
	}
	span := f.list.Span()
	for i, item := range f.list.Visible() {
		if f.zones.InBounds(ZoneStar(item), msg) {
			return f, f.ToggleFavorite(item)
		}
		if f.zones.InBounds(ZoneRow(item), msg) {
			f.list.SetCursor(span.Start + i)
			return f, nil
		}
	}
	return f, nil
}

// View renders the search field, divider, tabs and list.
func (f FilteredList) View() string {
	width := f.Width()

	clearBtn := "  "
	if f.Query() != "" {
		clearBtn = " " + f.zones.Mark(ZoneClear, ClearButtonStyle.Render("✕"))
	}
	search := SearchIconStyle.Render("⌕") + " " + fitWidth(f.input.View(), width-4) + clearBtn

	var b strings.Builder
	b.WriteString(search)
	b.WriteString("\n")
	b.WriteString(DividerStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(fitWidth(f.tabs.View(), width))
	b.WriteString("\n")
	b.WriteString(f.list.View())
	return b.String()
}
