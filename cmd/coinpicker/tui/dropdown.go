package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DropdownState is whether the panel is shown.
type DropdownState int

const (
	Closed DropdownState = iota
	Open
)

// String returns a lowercase name for the state.
func (s DropdownState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Dropdown is a trigger button that opens the filtered list in a floating
// panel. The panel is not part of the trigger's layout: Layer returns it
// with an absolute position for the root model to composite over the frame.
type Dropdown struct {
	label    string
	state    DropdownState
	origin   Point // top-left cell of the trigger
	viewport Viewport
	pos      Point // top-left cell of the panel while open
	list     FilteredList
	zones    Zones
	keys     KeyMap
}

// NewDropdown creates a closed dropdown whose trigger is drawn at origin.
func NewDropdown(label string, origin Point, list FilteredList, zones Zones) Dropdown {
	return Dropdown{
		label:  label,
		origin: origin,
		list:   list,
		zones:  zones,
		keys:   DefaultKeyMap(),
	}
}

// State returns whether the panel is open.
func (d Dropdown) State() DropdownState { return d.state }

// IsOpen reports whether the panel is shown.
func (d Dropdown) IsOpen() bool { return d.state == Open }

// Position returns the panel's top-left cell as of the last open or resize.
func (d Dropdown) Position() Point { return d.pos }

// List returns the panel content.
func (d Dropdown) List() FilteredList { return d.list }

// SetItems forwards a new item set to the list.
func (d *Dropdown) SetItems(items []string) {
	d.list.SetItems(items)
}

// SetViewport records the screen size and repositions an open panel.
func (d *Dropdown) SetViewport(vp Viewport) {
	d.viewport = vp
	if d.state == Open {
		d.reposition()
	}
}

// TriggerRect returns the trigger's screen region.
func (d Dropdown) TriggerRect() Rect {
	v := d.triggerView()
	return Rect{X: d.origin.X, Y: d.origin.Y, W: lipgloss.Width(v), H: lipgloss.Height(v)}
}

// PanelSize returns the size of the rendered panel.
func (d Dropdown) PanelSize() Size {
	v := d.panelView()
	return Size{W: lipgloss.Width(v), H: lipgloss.Height(v)}
}

// Open shows the panel below the trigger and focuses the search field.
func (d *Dropdown) Open() tea.Cmd {
	if d.state == Open {
		return nil
	}
	d.state = Open
	d.reposition()
	focus := d.list.Focus()
	return tea.Batch(focus, toggled(true))
}

// Close hides the panel.
func (d *Dropdown) Close() tea.Cmd {
	if d.state == Closed {
		return nil
	}
	d.state = Closed
	d.list.Blur()
	return toggled(false)
}

// Toggle opens a closed panel and closes an open one.
func (d *Dropdown) Toggle() tea.Cmd {
	if d.state == Open {
		return d.Close()
	}
	return d.Open()
}

func toggled(open bool) tea.Cmd {
	return func() tea.Msg { return DropdownToggledMsg{Open: open} }
}

func (d *Dropdown) reposition() {
	d.pos = Place(d.TriggerRect(), d.PanelSize(), d.viewport)
}

// Update handles resize, mouse and key events.
func (d Dropdown) Update(msg tea.Msg) (Dropdown, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetViewport(Viewport{Width: msg.Width, Height: msg.Height})
		return d, nil

	case tea.MouseMsg:
		return d.updateMouse(msg)

	case tea.KeyMsg:
		if d.state == Closed {
			if key.Matches(msg, d.keys.Open) {
				return d, d.Open()
			}
			return d, nil
		}
		if key.Matches(msg, d.keys.Close) {
			if d.list.Query() != "" {
				d.list.Clear()
				return d, nil
			}
			return d, d.Close()
		}
	}

	if d.state == Closed {
		return d, nil
	}
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

func (d Dropdown) updateMouse(msg tea.MouseMsg) (Dropdown, tea.Cmd) {
	if isPress(msg) && d.zones.InBounds(ZoneTrigger, msg) {
		return d, d.Toggle()
	}
	if d.state == Closed {
		return d, nil
	}
	if !d.zones.InBounds(ZonePanel, msg) {
		if isPress(msg) {
			return d, d.Close()
		}
		return d, nil
	}
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

func (d Dropdown) triggerView() string {
	style := TriggerStyle
	arrow := "▾"
	if d.state == Open {
		style = TriggerActiveStyle
		arrow = "▴"
	}
	return style.Render("⌕ " + d.label + " " + arrow)
}

// TriggerView renders the trigger button.
func (d Dropdown) TriggerView() string {
	return d.zones.Mark(ZoneTrigger, d.triggerView())
}

func (d Dropdown) panelView() string {
	return PanelStyle.Render(d.list.View())
}

// Layer returns the panel positioned for compositing. It reports false
// while the panel is closed.
func (d Dropdown) Layer() (Layer, bool) {
	if d.state == Closed {
		return Layer{}, false
	}
	return Layer{Content: d.zones.Mark(ZonePanel, d.panelView()), Pos: d.pos}, true
}
