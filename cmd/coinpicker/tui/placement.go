package tui

// ScreenPadding is the gap kept between the panel and the trigger, and
// between the panel and the screen edge, in cells.
const ScreenPadding = 1

// Point is a cell position on the screen.
type Point struct{ X, Y int }

// Size is a width and height in cells.
type Size struct{ W, H int }

// Rect is a screen region in cells.
type Rect struct{ X, Y, W, H int }

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Right returns the first column right of the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Viewport describes the visible screen and how far the content under it is
// scrolled. A full-screen program keeps ScrollX and ScrollY at zero.
type Viewport struct {
	Width, Height    int
	ScrollX, ScrollY int
}

// Place computes the panel's top-left corner for a trigger. The panel opens
// just below the trigger and is shifted up or left when it would overflow
// the viewport; it never starts above or left of the screen origin.
func Place(trigger Rect, panel Size, vp Viewport) Point {
	top := min(trigger.Bottom()+vp.ScrollY+ScreenPadding, vp.Height-panel.H-ScreenPadding)
	left := min(trigger.X+vp.ScrollX, vp.Width-panel.W-ScreenPadding)
	return Point{X: max(left, 0), Y: max(top, 0)}
}
