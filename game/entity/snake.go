package entity

import (
	"snake-arcade/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Snake is the player-controlled actor: a round head followed by square
// segments of the same size. body[0] is the segment right behind the head,
// the last element is the tail.
type Snake struct {
	head    types.Vector2
	body    []types.Vector2
	size    float32
	history *DirectionHistory
}

// NewSnake centers the head horizontally at a quarter of the screen height
// with length segments stacked below it, all heading up.
func NewSnake(screen types.Size, size float32, length int) *Snake {
	head := types.Vector2{
		X: float32(screen.Width) / 2,
		Y: float32(screen.Height)/4 - size/2,
	}
	return NewSnakeAt(head, size, length)
}

// NewSnakeAt builds the initial vertical snake with its head at pos.
func NewSnakeAt(pos types.Vector2, size float32, length int) *Snake {
	s := &Snake{
		head:    pos,
		body:    make([]types.Vector2, length),
		size:    size,
		history: NewDirectionHistory(length+1, types.Up),
	}
	for i := range s.body {
		pos = pos.Add(types.Vector2{X: 0, Y: size})
		s.body[i] = pos
	}
	return s
}

// Turn sets the direction for the next step. A zero direction is ignored.
func (s *Snake) Turn(dir types.Vector2) {
	if dir.IsZero() {
		return
	}
	s.history.SetLatest(dir)
}

// Step moves every part one segment. Each segment replays the direction
// the part ahead of it used one tick earlier.
func (s *Snake) Step() {
	s.head = s.head.Add(s.history.Back(0).Scale(s.size))
	for i := range s.body {
		s.body[i] = s.body[i].Add(s.history.Back(i + 1).Scale(s.size))
	}
	s.history.Advance()
}

// Grow attaches a segment where the tail was before its last move.
func (s *Snake) Grow() {
	tail := s.head
	if len(s.body) > 0 {
		tail = s.body[len(s.body)-1]
	}
	s.body = append(s.body, tail.Sub(s.history.Trail().Scale(s.size)))
	s.history.Extend()
}

// IsCollidedWith reports whether the head's bounds overlap r.
func (s *Snake) IsCollidedWith(r types.Rect) bool {
	return s.HeadBounds().Intersects(r)
}

// Collision classifies the terminal condition for the current position.
// The segment adjacent to the head is never tested; the head always
// touches it.
func (s *Snake) Collision(screen types.Size) CollisionType {
	for _, part := range s.body[min(1, len(s.body)):] {
		if s.IsCollidedWith(types.Square(part, s.size)) {
			return SelfCollision
		}
	}
	if !bounded(0, s.head.X, screen.Width) || !bounded(0, s.head.Y, screen.Height) {
		return WallCollision
	}
	return NoCollision
}

func (s *Snake) IsAlive(screen types.Size) bool {
	return s.Collision(screen) == NoCollision
}

func bounded(lo int, t float32, hi int) bool {
	return float32(lo) <= t && t <= float32(hi)
}

// Length returns the number of body segments, head excluded.
func (s *Snake) Length() int {
	return len(s.body)
}

func (s *Snake) Size() float32 {
	return s.size
}

func (s *Snake) Head() types.Vector2 {
	return s.head
}

func (s *Snake) HeadBounds() types.Rect {
	return types.Square(s.head, s.size)
}

// Body returns a copy of the segment positions, head side first.
func (s *Snake) Body() []types.Vector2 {
	body := make([]types.Vector2, len(s.body))
	copy(body, s.body)
	return body
}

// Heading returns the direction the head takes on the next step.
func (s *Snake) Heading() types.Vector2 {
	return s.history.Latest()
}

// HistoryLen returns the number of directions tracked for the next step.
func (s *Snake) HistoryLen() int {
	return s.history.Len()
}

func (s *Snake) Draw(sink types.Sink) {
	for _, part := range s.body {
		sink.Draw(types.Shape{Kind: types.ShapeSquare, Bounds: types.Square(part, s.size), Fill: types.Green})
	}
	sink.Draw(types.Shape{Kind: types.ShapeCircle, Bounds: s.HeadBounds(), Fill: types.Yellow})
}
