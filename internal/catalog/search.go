package catalog

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

const (
	// MaxErrorRatio is the largest share of query characters that may be
	// wrong (substituted, missing or extra) for a typo-tolerant match.
	MaxErrorRatio = 0.6

	// MinTypoQueryLen is the shortest query for which typo-tolerant matches
	// are considered. Shorter queries only match as subsequences.
	MinTypoQueryLen = 3
)

// Index is a search index over an ItemSet. It is built once per ItemSet and
// reused for every query.
type Index struct {
	items  []string
	folded [][]rune
}

// NewIndex builds an index over items. The slice is retained, not copied.
func NewIndex(items []string) *Index {
	folded := make([][]rune, len(items))
	for i, it := range items {
		folded[i] = []rune(strings.ToLower(it))
	}
	return &Index{items: items, folded: folded}
}

// String implements fuzzy.Source.
func (x *Index) String(i int) string { return x.items[i] }

// Len implements fuzzy.Source.
func (x *Index) Len() int { return len(x.items) }

// Items returns the indexed items.
func (x *Index) Items() []string { return x.items }

// Search returns the items matching query, best match first.
//
// Items containing the query as a subsequence come first, ordered by the
// fuzzy engine's score. Items that only match with typos follow, ordered by
// the number of edits needed to turn the query into some substring of the
// item. Ties keep index order. A blank query returns every item.
func Search(idx *Index, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]string(nil), idx.items...)
	}

	matches := fuzzy.FindFrom(query, idx)
	out := make([]string, 0, len(matches))
	seen := make(map[int]bool, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
		seen[m.Index] = true
	}

	pattern := []rune(strings.ToLower(query))
	if len(pattern) < MinTypoQueryLen {
		return out
	}
	budget := int(float64(len(pattern)) * MaxErrorRatio)
	if budget >= len(pattern) {
		budget = len(pattern) - 1
	}
	if budget <= 0 {
		return out
	}

	type near struct {
		index int
		dist  int
	}
	var approx []near
	for i, text := range idx.folded {
		if seen[i] {
			continue
		}
		if d := substringDistance(pattern, text, budget); d <= budget {
			approx = append(approx, near{index: i, dist: d})
		}
	}
	sort.SliceStable(approx, func(a, b int) bool {
		return approx[a].dist < approx[b].dist
	})
	for _, n := range approx {
		out = append(out, idx.items[n.index])
	}
	return out
}

// substringDistance returns the smallest edit distance between pattern and
// any substring of text. Rows stop early once every cell exceeds budget.
func substringDistance(pattern, text []rune, budget int) int {
	prev := make([]int, len(text)+1)
	cur := make([]int, len(text)+1)
	for i := 1; i <= len(pattern); i++ {
		cur[0] = i
		best := cur[0]
		for j := 1; j <= len(text); j++ {
			cost := 1
			if pattern[i-1] == text[j-1] {
				cost = 0
			}
			v := prev[j-1] + cost
			if d := prev[j] + 1; d < v {
				v = d
			}
			if d := cur[j-1] + 1; d < v {
				v = d
			}
			cur[j] = v
			if v < best {
				best = v
			}
		}
		if best > budget {
			return best
		}
		prev, cur = cur, prev
	}
	min := prev[0]
	for _, v := range prev[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
