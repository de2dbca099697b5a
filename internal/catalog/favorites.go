package catalog

import "sort"

// Favorites is the set of items the user starred.
type Favorites map[string]struct{}

// NewFavorites returns a set holding items. Empty strings are ignored.
func NewFavorites(items ...string) Favorites {
	f := make(Favorites, len(items))
	for _, it := range items {
		if it != "" {
			f[it] = struct{}{}
		}
	}
	return f
}

// Has reports whether item is a favorite.
func (f Favorites) Has(item string) bool {
	_, ok := f[item]
	return ok
}

// Toggle flips membership of item and reports whether it is now a favorite.
func (f Favorites) Toggle(item string) bool {
	if f.Has(item) {
		delete(f, item)
		return false
	}
	f[item] = struct{}{}
	return true
}

// Sorted returns the favorites in lexicographic order.
func (f Favorites) Sorted() []string {
	out := make([]string, 0, len(f))
	for it := range f {
		out = append(out, it)
	}
	sort.Strings(out)
	return out
}
