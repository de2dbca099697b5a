package tui

import (
	"strings"

	"github.com/ruminaider/coinpicker/internal/catalog"
)

// TabBar renders the view tabs above the list. The active tab is drawn
// disabled; selecting it again does nothing.
type TabBar struct {
	views  []catalog.View
	active catalog.View
	zones  Zones
}

// NewTabBar creates a tab bar with Favorites and All Coins, in that order.
func NewTabBar(active catalog.View, zones Zones) TabBar {
	return TabBar{
		views:  []catalog.View{catalog.ViewFavorites, catalog.ViewAll},
		active: active,
		zones:  zones,
	}
}

// Active returns the selected view.
func (t TabBar) Active() catalog.View { return t.active }

// SetActive selects v and reports whether the selection changed.
func (t *TabBar) SetActive(v catalog.View) bool {
	if v == t.active {
		return false
	}
	t.active = v
	return true
}

// Next returns the view after the active one, wrapping around.
func (t TabBar) Next() catalog.View {
	for i, v := range t.views {
		if v == t.active {
			return t.views[(i+1)%len(t.views)]
		}
	}
	return t.views[0]
}

// Views returns the tabs in display order.
func (t TabBar) Views() []catalog.View { return t.views }

// View renders the tabs on one line.
func (t TabBar) View() string {
	parts := make([]string, 0, len(t.views))
	for _, v := range t.views {
		style := InactiveTabStyle
		if v == t.active {
			style = ActiveTabStyle
		}
		parts = append(parts, t.zones.Mark(ZoneTab(v), style.Render(v.String())))
	}
	return strings.Join(parts, " ")
}
