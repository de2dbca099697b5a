// Package window implements the arithmetic behind windowed (virtual) list
// rendering: which contiguous slice of a long list is visible for a given
// scroll offset, and where each visible row sits inside the virtual content.
//
// All heights and offsets are measured in rows.
package window

// Window describes a fixed-height scroll container holding items of uniform
// height.
type Window struct {
	ItemHeight   int // rows per item, always >= 1
	VisibleCount int // items visible at once, always >= 1
}

// Span is the contiguous slice of items currently rendered.
type Span struct {
	Start int
	Count int
}

// End returns the exclusive end index of the span.
func (s Span) End() int {
	return s.Start + s.Count
}

// New returns a Window. Values below 1 are raised to 1 so the offset
// division is always defined; callers validate user input before this point.
func New(itemHeight, visibleCount int) Window {
	if itemHeight < 1 {
		itemHeight = 1
	}
	if visibleCount < 1 {
		visibleCount = 1
	}
	return Window{ItemHeight: itemHeight, VisibleCount: visibleCount}
}

// Height returns the container height.
func (w Window) Height() int {
	return w.ItemHeight * w.VisibleCount
}

// SpacerHeight returns the height of the virtual content for n items.
func (w Window) SpacerHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return n * w.ItemHeight
}

// MaxOffset returns the largest scroll offset that still fills the container.
func (w Window) MaxOffset(n int) int {
	max := w.SpacerHeight(n) - w.Height()
	if max < 0 {
		return 0
	}
	return max
}

// Clamp limits offset to [0, MaxOffset(n)].
func (w Window) Clamp(n, offset int) int {
	if offset < 0 {
		return 0
	}
	if max := w.MaxOffset(n); offset > max {
		return max
	}
	return offset
}

// Slice returns the span of items visible at offset:
// Start = floor(offset / ItemHeight), Count = VisibleCount truncated to the
// items that remain. The offset is not clamped; an offset past the end
// yields an empty span.
func (w Window) Slice(n, offset int) Span {
	if n <= 0 {
		return Span{}
	}
	if offset < 0 {
		offset = 0
	}
	start := offset / w.ItemHeight
	if start > n {
		start = n
	}
	count := w.VisibleCount
	if rest := n - start; count > rest {
		count = rest
	}
	return Span{Start: start, Count: count}
}

// Top returns the position, within the virtual content, of the local-th
// row of span.
func (w Window) Top(span Span, local int) int {
	return (local + span.Start) * w.ItemHeight
}

// Reveal returns the offset closest to offset at which item index is fully
// inside the container.
func (w Window) Reveal(n, offset, index int) int {
	if n <= 0 {
		return 0
	}
	if index < 0 {
		index = 0
	}
	if index >= n {
		index = n - 1
	}
	top := index * w.ItemHeight
	bottom := top + w.ItemHeight
	if top < offset {
		offset = top
	}
	if bottom > offset+w.Height() {
		offset = bottom - w.Height()
	}
	return w.Clamp(n, offset)
}

// Thumb returns the position and length of a scrollbar thumb for a track of
// Height() rows. A zero length means the list fits and no thumb is drawn.
func (w Window) Thumb(n, offset int) (pos, length int) {
	track := w.Height()
	total := w.SpacerHeight(n)
	if total <= track {
		return 0, 0
	}
	length = track * track / total
	if length < 1 {
		length = 1
	}
	max := w.MaxOffset(n)
	if max > 0 {
		pos = w.Clamp(n, offset) * (track - length) / max
	}
	return pos, length
}
