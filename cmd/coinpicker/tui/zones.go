package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/ruminaider/coinpicker/internal/catalog"
)

// Zones marks clickable regions while rendering and answers hit tests for
// mouse events against the last scanned frame.
type Zones interface {
	Mark(id, s string) string
	Scan(frame string) string
	InBounds(id string, msg tea.MouseMsg) bool
}

// Zone IDs.
const (
	ZoneTrigger = "trigger"
	ZonePanel   = "panel"
	ZoneClear   = "clear"
)

// ZoneTab returns the zone ID of a view tab.
func ZoneTab(v catalog.View) string { return "tab:" + v.String() }

// ZoneStar returns the zone ID of an item's favorite star.
func ZoneStar(item string) string { return "star:" + item }

// ZoneRow returns the zone ID of an item's row.
func ZoneRow(item string) string { return "row:" + item }

// bubbleZones is the Zones implementation backed by bubblezone.
type bubbleZones struct {
	m *zone.Manager
}

// NewZones returns Zones backed by a new bubblezone manager.
func NewZones() Zones {
	return bubbleZones{m: zone.New()}
}

func (z bubbleZones) Mark(id, s string) string { return z.m.Mark(id, s) }

func (z bubbleZones) Scan(frame string) string { return z.m.Scan(frame) }

func (z bubbleZones) InBounds(id string, msg tea.MouseMsg) bool {
	info := z.m.Get(id)
	return info != nil && info.InBounds(msg)
}

// isPress reports whether msg is a left-button press.
func isPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
