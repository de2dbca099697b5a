package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDropdown(zones *fakeZones) Dropdown {
	d := NewDropdown("Search", Point{X: 2, Y: 1}, newTestList(zones), zones)
	d, _ = d.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return d
}

func TestDropdownStartsClosed(t *testing.T) {
	d := newTestDropdown(newFakeZones())
	assert.Equal(t, Closed, d.State())
	_, ok := d.Layer()
	assert.False(t, ok)
}

func TestDropdownOpensBelowTrigger(t *testing.T) {
	d := newTestDropdown(newFakeZones())

	d, cmd := d.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, d.IsOpen())

	trigger := d.TriggerRect()
	assert.Equal(t, Point{X: trigger.X, Y: trigger.Bottom() + ScreenPadding}, d.Position())

	layer, ok := d.Layer()
	require.True(t, ok)
	assert.Equal(t, d.Position(), layer.Pos)
	assert.Equal(t, d.PanelSize(), layer.Size())
}

func TestDropdownTriggerClickToggles(t *testing.T) {
	zones := newFakeZones()
	d := newTestDropdown(zones)

	d, _ = d.Update(zones.press(ZoneTrigger))
	assert.Equal(t, Open, d.State())

	d, _ = d.Update(zones.press(ZoneTrigger))
	assert.Equal(t, Closed, d.State())
}

func TestDropdownOutsidePressCloses(t *testing.T) {
	zones := newFakeZones()
	d := newTestDropdown(zones)
	d.Open()

	d, _ = d.Update(zones.press(ZonePanel))
	assert.True(t, d.IsOpen())

	d, _ = d.Update(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	assert.True(t, d.IsOpen())

	d, _ = d.Update(zones.press())
	assert.False(t, d.IsOpen())
}

func TestDropdownIgnoresPressWhileClosed(t *testing.T) {
	zones := newFakeZones()
	d := newTestDropdown(zones)

	d, cmd := d.Update(zones.press(ZonePanel, ZoneStar("btc")))
	assert.Nil(t, cmd)
	assert.False(t, d.IsOpen())
	assert.False(t, d.List().IsFavorite("btc"))
}

func TestDropdownPanelPressReachesList(t *testing.T) {
	zones := newFakeZones()
	d := newTestDropdown(zones)
	d.Open()

	d, _ = d.Update(zones.press(ZonePanel, ZoneStar("btc")))
	assert.True(t, d.IsOpen())
	assert.True(t, d.List().IsFavorite("btc"))
}

func TestDropdownResizeRepositionsOpenPanel(t *testing.T) {
	d := newTestDropdown(newFakeZones())
	d.Open()
	before := d.Position()

	d, _ = d.Update(tea.WindowSizeMsg{Width: 20, Height: 12})
	assert.True(t, d.IsOpen())
	assert.Equal(t, Point{X: 0, Y: 0}, d.Position())

	d, _ = d.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, before, d.Position())
}

func TestDropdownResizeWhileClosed(t *testing.T) {
	d := newTestDropdown(newFakeZones())
	d, _ = d.Update(tea.WindowSizeMsg{Width: 40, Height: 40})
	assert.False(t, d.IsOpen())

	d.Open()
	panel := d.PanelSize()
	assert.Equal(t, Place(d.TriggerRect(), panel, Viewport{Width: 40, Height: 40}), d.Position())
}

func TestDropdownEscape(t *testing.T) {
	d := newTestDropdown(newFakeZones())
	d.Open()

	d, _ = d.Update(keyRunes("sol"))
	assert.Equal(t, []string{"sol"}, d.List().Displayed())

	d, _ = d.Update(keyType(tea.KeyEscape))
	assert.True(t, d.IsOpen())
	assert.Equal(t, "", d.List().Query())

	d, _ = d.Update(keyType(tea.KeyEscape))
	assert.False(t, d.IsOpen())
}

func TestDropdownKeysIgnoredWhileClosed(t *testing.T) {
	d := newTestDropdown(newFakeZones())
	d, _ = d.Update(keyRunes("x"))
	assert.False(t, d.IsOpen())
	assert.Equal(t, "", d.List().Query())
}

func TestDropdownTriggerView(t *testing.T) {
	d := newTestDropdown(newFakeZones())
	closed := d.TriggerRect()
	assert.Contains(t, d.TriggerView(), "⌕ Search ▾")

	d.Open()
	assert.Contains(t, d.TriggerView(), "⌕ Search ▴")
	assert.Equal(t, closed, d.TriggerRect())
}
