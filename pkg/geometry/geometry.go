// Package geometry provides the integer point and rectangle types used
// throughout the toolkit. All coordinates are absolute surface pixels;
// nothing in the widget tree is positioned relative to its parent.
package geometry

// Point represents a 2D pixel position.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect represents an axis-aligned rectangle with integer position and size.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Translated returns a copy of the rectangle offset by (dx, dy).
func (r Rect) Translated(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Pos returns the top-left corner of the rectangle.
func (r Rect) Pos() Point {
	return Point{X: r.X, Y: r.Y}
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the overlap of two rectangles, or the zero Rect if
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.X+r.W, other.X+other.W)
	bottom := min(r.Y+r.H, other.Y+other.H)
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}
