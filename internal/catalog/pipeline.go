// Package catalog turns the loaded coin list into the list shown to the
// user: fuzzy search first, then the optional favorites restriction.
package catalog

import (
	"slices"
	"strings"
)

// View selects whether the favorites set restricts the displayed items.
type View int

const (
	ViewAll View = iota
	ViewFavorites
)

// String returns the tab label for the view.
func (v View) String() string {
	switch v {
	case ViewAll:
		return "All Coins"
	case ViewFavorites:
		return "Favorites"
	default:
		return "Unknown"
	}
}

// Pipeline owns the item set, search query, active view and favorites, and
// keeps the derived displayed list in sync with them.
//
// A Pipeline is not safe for concurrent use; it is owned by a single UI
// component and mutated only through its methods.
type Pipeline struct {
	index     *Index
	query     string
	view      View
	favorites Favorites
	displayed []string
}

// NewPipeline returns an empty pipeline in the All view with the given
// favorites preselected.
func NewPipeline(favorites ...string) *Pipeline {
	p := &Pipeline{
		index:     NewIndex(nil),
		favorites: NewFavorites(favorites...),
	}
	p.recompute()
	return p
}

// Items returns the current item set.
func (p *Pipeline) Items() []string { return p.index.Items() }

// Query returns the current search query.
func (p *Pipeline) Query() string { return p.query }

// View returns the active view.
func (p *Pipeline) View() View { return p.view }

// Displayed returns the items to render, in display order. The slice must
// not be modified.
func (p *Pipeline) Displayed() []string { return p.displayed }

// IsFavorite reports whether item is a favorite.
func (p *Pipeline) IsFavorite(item string) bool { return p.favorites.Has(item) }

// Favorites returns the favorites in lexicographic order.
func (p *Pipeline) Favorites() []string { return p.favorites.Sorted() }

// SetItems replaces the item set. The search index is rebuilt only when the
// items differ from the current set.
func (p *Pipeline) SetItems(items []string) bool {
	if slices.Equal(items, p.index.Items()) {
		return false
	}
	p.index = NewIndex(slices.Clone(items))
	p.recompute()
	return true
}

// SetQuery replaces the search query and reports whether it changed.
func (p *Pipeline) SetQuery(q string) bool {
	if q == p.query {
		return false
	}
	prev := strings.TrimSpace(p.query)
	p.query = q
	if strings.TrimSpace(q) != prev {
		p.recompute()
	}
	return true
}

// Clear resets the search query.
func (p *Pipeline) Clear() bool {
	return p.SetQuery("")
}

// SetView switches the active view. Selecting the active view is a no-op.
func (p *Pipeline) SetView(v View) bool {
	if v == p.view {
		return false
	}
	p.view = v
	p.recompute()
	return true
}

// ToggleFavorite flips the favorite state of item and reports whether it is
// now a favorite. In the Favorites view an unfavorited item leaves the
// displayed list immediately; in the All view the displayed list is
// unaffected.
func (p *Pipeline) ToggleFavorite(item string) bool {
	now := p.favorites.Toggle(item)
	if p.view == ViewFavorites {
		p.recompute()
	}
	return now
}

func (p *Pipeline) recompute() {
	candidates := Search(p.index, p.query)
	if p.view == ViewFavorites {
		filtered := candidates[:0]
		for _, it := range candidates {
			if p.favorites.Has(it) {
				filtered = append(filtered, it)
			}
		}
		candidates = filtered
	}
	p.displayed = candidates
}
