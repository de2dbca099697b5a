package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/coinpicker/internal/window"
)

// fakeZones reports a hit for whichever zones the next press targets.
type fakeZones struct {
	hit map[string]bool
}

func newFakeZones() *fakeZones {
	return &fakeZones{hit: map[string]bool{}}
}

func (z *fakeZones) Mark(_, s string) string { return s }

func (z *fakeZones) Scan(frame string) string { return frame }

func (z *fakeZones) InBounds(id string, _ tea.MouseMsg) bool { return z.hit[id] }

// press returns a left-button press landing in the given zones.
func (z *fakeZones) press(ids ...string) tea.MouseMsg {
	z.hit = map[string]bool{}
	for _, id := range ids {
		z.hit[id] = true
	}
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

var coinSet = []string{"ada", "btc", "doge", "eth", "ltc", "sol"}

func newTestList(zones Zones, favorites ...string) FilteredList {
	f := NewFilteredList(window.New(1, 9), favorites, zones)
	f.SetItems(coinSet)
	f.Focus()
	return f
}
