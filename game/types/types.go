package types

import "math"

// Vector2 is a position on the board or a unit direction.
type Vector2 struct {
	X, Y float32
}

// Directions. The zero vector means "no change".
var (
	Zero  = Vector2{}
	Up    = Vector2{X: 0, Y: -1}
	Down  = Vector2{X: 0, Y: 1}
	Left  = Vector2{X: -1, Y: 0}
	Right = Vector2{X: 1, Y: 0}
)

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(k float32) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Length returns the Euclidean norm.
func (v Vector2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Size holds the board dimensions in pixels.
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float32
}

// Square returns the size×size box at pos.
func Square(pos Vector2, size float32) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size, H: size}
}

func (r Rect) Position() Vector2 {
	return Vector2{X: r.X, Y: r.Y}
}

// Intersects reports whether the two boxes overlap. Boxes that only share
// an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

type Color struct {
	R, G, B uint8
}

var (
	Black  = Color{0, 0, 0}
	White  = Color{255, 255, 255}
	Yellow = Color{255, 255, 0}
	Green  = Color{0, 255, 0}
	Red    = Color{255, 0, 0}
)

// ShapeKind selects how a frontend renders a Shape.
type ShapeKind int

const (
	ShapeSquare ShapeKind = iota
	ShapeCircle
)

// Shape is a filled primitive handed to a Sink. A circle is inscribed in
// its bounds.
type Shape struct {
	Kind   ShapeKind
	Bounds Rect
	Fill   Color
}

// Sink receives shapes to draw. Entities draw themselves into a Sink and
// never own the rendering surface.
type Sink interface {
	Draw(Shape)
}
