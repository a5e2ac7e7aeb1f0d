package entity

import (
	"testing"

	"snake-arcade/game/types"
)

type recorder struct {
	shapes []types.Shape
}

func (r *recorder) Draw(s types.Shape) {
	r.shapes = append(r.shapes, s)
}

func TestNewSnake_Layout(t *testing.T) {
	s := NewSnake(types.Size{Width: 800, Height: 600}, 20, 15)

	if got, want := s.Head(), (types.Vector2{X: 400, Y: 140}); got != want {
		t.Fatalf("head = %v, want %v", got, want)
	}
	if s.Length() != 15 {
		t.Fatalf("length = %d, want 15", s.Length())
	}
	if s.HistoryLen() != 16 {
		t.Fatalf("history length = %d, want 16", s.HistoryLen())
	}
	for i, part := range s.Body() {
		want := types.Vector2{X: 400, Y: 140 + 20*float32(i+1)}
		if part != want {
			t.Errorf("body[%d] = %v, want %v", i, part, want)
		}
	}
	if s.Heading() != types.Up {
		t.Errorf("heading = %v, want up", s.Heading())
	}
}

func TestStep_DefaultUp(t *testing.T) {
	s := NewSnakeAt(types.Vector2{X: 400, Y: 150}, 20, 3)
	before := s.Body()

	s.Step()

	if got, want := s.Head(), (types.Vector2{X: 400, Y: 130}); got != want {
		t.Fatalf("head = %v, want %v", got, want)
	}
	for i, part := range s.Body() {
		if want := before[i].Add(types.Vector2{Y: -20}); part != want {
			t.Errorf("body[%d] = %v, want %v", i, part, want)
		}
	}
}

func TestTurn_ZeroIsNoop(t *testing.T) {
	s := NewSnakeAt(types.Vector2{X: 100, Y: 100}, 10, 2)
	s.Turn(types.Left)
	s.Turn(types.Zero)
	if s.Heading() != types.Left {
		t.Fatalf("heading = %v, want left", s.Heading())
	}
}

func TestTurn_LastWinsWithinTick(t *testing.T) {
	s := NewSnakeAt(types.Vector2{X: 100, Y: 100}, 10, 2)
	s.Turn(types.Left)
	s.Turn(types.Right)
	s.Step()
	if got, want := s.Head(), (types.Vector2{X: 110, Y: 100}); got != want {
		t.Fatalf("head = %v, want %v", got, want)
	}
	if s.HistoryLen() != 3 {
		t.Fatalf("history length = %d, want 3", s.HistoryLen())
	}
}

// Each segment must trace the head's trajectory shifted by its distance
// from the head.
func TestStep_RelaysHeadPath(t *testing.T) {
	const size = 10
	s := NewSnakeAt(types.Vector2{X: 500, Y: 500}, size, 4)

	turns := []types.Vector2{
		types.Left, types.Zero, types.Down, types.Down, types.Right,
		types.Zero, types.Up, types.Left, types.Zero, types.Zero,
	}

	// Positions the head has occupied, the initial body included as if the
	// head had come straight up through it.
	trail := []types.Vector2{}
	body := s.Body()
	for i := len(body) - 1; i >= 0; i-- {
		trail = append(trail, body[i])
	}
	trail = append(trail, s.Head())

	for tick, dir := range turns {
		s.Turn(dir)
		s.Step()
		trail = append(trail, s.Head())

		for d, part := range s.Body() {
			want := trail[len(trail)-2-d]
			if part != want {
				t.Fatalf("tick %d: body[%d] = %v, want %v", tick, d, part, want)
			}
		}
		if s.HistoryLen() != s.Length()+1 {
			t.Fatalf("tick %d: history %d, body %d", tick, s.HistoryLen(), s.Length())
		}
	}
}

func TestGrow_Continuity(t *testing.T) {
	const size = 20
	s := NewSnakeAt(types.Vector2{X: 400, Y: 300}, size, 3)
	s.Turn(types.Right)
	s.Step()
	s.Step()
	s.Step()

	tail := s.Body()[s.Length()-1]
	s.Grow()

	body := s.Body()
	if len(body) != 4 {
		t.Fatalf("length = %d, want 4", len(body))
	}
	if d := body[3].Sub(tail).Length(); d != size {
		t.Fatalf("gap between new tail and previous tail = %v, want %v", d, size)
	}
	if s.HistoryLen() != 5 {
		t.Fatalf("history length = %d, want 5", s.HistoryLen())
	}
}

// Growing on two consecutive ticks keeps the chain gap free and the new
// segments follow the same path.
func TestGrow_ConsecutiveTicks(t *testing.T) {
	const size = 20
	s := NewSnakeAt(types.Vector2{X: 400, Y: 300}, size, 2)
	s.Turn(types.Left)

	for tick := 0; tick < 6; tick++ {
		s.Step()
		if tick == 1 || tick == 2 {
			s.Grow()
		}
		if s.HistoryLen() != s.Length()+1 {
			t.Fatalf("tick %d: history %d, body %d", tick, s.HistoryLen(), s.Length())
		}
		prev := s.Head()
		for i, part := range s.Body() {
			if d := part.Sub(prev).Length(); d != size {
				t.Fatalf("tick %d: segment %d is %v away from its leader", tick, i, d)
			}
			prev = part
		}
	}
	if s.Length() != 4 {
		t.Fatalf("length = %d, want 4", s.Length())
	}
}

func TestGrow_TwiceWithoutStep(t *testing.T) {
	s := NewSnakeAt(types.Vector2{X: 100, Y: 100}, 10, 1)
	s.Grow()
	s.Grow()
	want := []types.Vector2{{X: 100, Y: 110}, {X: 100, Y: 120}, {X: 100, Y: 130}}
	for i, part := range s.Body() {
		if part != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, part, want[i])
		}
	}
}

// Two grows between steps follow the path the tail actually took, around
// the corner, rather than extending straight back.
func TestGrow_TwiceAfterCorner(t *testing.T) {
	s := NewSnakeAt(types.Vector2{X: 100, Y: 100}, 10, 1)
	s.Turn(types.Right)
	s.Step()
	s.Step()

	s.Grow()
	s.Grow()
	want := []types.Vector2{{X: 110, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 110}}
	for i, part := range s.Body() {
		if part != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, part, want[i])
		}
	}

	s.Step()
	prev := s.Head()
	for i, part := range s.Body() {
		if d := part.Sub(prev).Length(); d != 10 {
			t.Fatalf("segment %d is %v away from its leader", i, d)
		}
		prev = part
	}
}

func TestGrow_EmptyBody(t *testing.T) {
	s := NewSnakeAt(types.Vector2{X: 100, Y: 100}, 10, 0)
	s.Grow()
	if got, want := s.Body()[0], (types.Vector2{X: 100, Y: 110}); got != want {
		t.Fatalf("body[0] = %v, want %v", got, want)
	}
}

func TestCollision(t *testing.T) {
	screen := types.Size{Width: 800, Height: 600}
	tests := []struct {
		name  string
		setup func() *Snake
		want  CollisionType
	}{
		{
			name:  "fresh snake",
			setup: func() *Snake { return NewSnake(screen, 20, 15) },
			want:  NoCollision,
		},
		{
			name:  "head on right edge",
			setup: func() *Snake { return NewSnakeAt(types.Vector2{X: 800, Y: 100}, 20, 2) },
			want:  NoCollision,
		},
		{
			name:  "head past right edge",
			setup: func() *Snake { return NewSnakeAt(types.Vector2{X: 801, Y: 100}, 20, 2) },
			want:  WallCollision,
		},
		{
			name:  "head above top edge",
			setup: func() *Snake { return NewSnakeAt(types.Vector2{X: 100, Y: -20}, 20, 2) },
			want:  WallCollision,
		},
		{
			name: "u-turn into own body",
			setup: func() *Snake {
				s := NewSnakeAt(types.Vector2{X: 400, Y: 300}, 20, 5)
				s.Turn(types.Left)
				s.Step()
				s.Turn(types.Down)
				s.Step()
				s.Turn(types.Right)
				s.Step()
				return s
			},
			want: SelfCollision,
		},
		{
			name: "reversal runs into the second segment",
			setup: func() *Snake {
				s := NewSnakeAt(types.Vector2{X: 400, Y: 300}, 20, 3)
				s.Turn(types.Down)
				s.Step()
				return s
			},
			want: SelfCollision,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setup()
			if got := s.Collision(screen); got != tt.want {
				t.Fatalf("Collision() = %v, want %v", got, tt.want)
			}
			if s.IsAlive(screen) != (tt.want == NoCollision) {
				t.Fatalf("IsAlive() disagrees with Collision()")
			}
		})
	}
}

// The segment right behind the head is skipped even when overlapping.
func TestCollision_SkipsAdjacentSegment(t *testing.T) {
	s := NewSnakeAt(types.Vector2{X: 100, Y: 100}, 20, 1)
	s.body[0] = s.head
	if !s.IsAlive(types.Size{Width: 800, Height: 600}) {
		t.Fatal("overlap with body[0] must not end the game")
	}
}

func TestIsCollidedWith_Symmetric(t *testing.T) {
	s := NewSnakeAt(types.Vector2{X: 100, Y: 100}, 20, 0)
	boxes := []types.Rect{
		{X: 110, Y: 110, W: 20, H: 20},
		{X: 120, Y: 100, W: 20, H: 20},
		{X: 90, Y: 90, W: 5, H: 5},
		{X: 95, Y: 95, W: 50, H: 50},
	}
	for _, b := range boxes {
		if s.IsCollidedWith(b) != b.Intersects(s.HeadBounds()) {
			t.Errorf("asymmetric result for %v", b)
		}
	}
	if !s.IsCollidedWith(boxes[0]) || s.IsCollidedWith(boxes[1]) {
		t.Error("overlap must collide and shared edge must not")
	}
}

func TestDraw(t *testing.T) {
	s := NewSnakeAt(types.Vector2{X: 100, Y: 100}, 20, 2)
	var r recorder
	s.Draw(&r)
	if len(r.shapes) != 3 {
		t.Fatalf("drew %d shapes, want 3", len(r.shapes))
	}
	head := r.shapes[2]
	if head.Kind != types.ShapeCircle || head.Bounds != s.HeadBounds() {
		t.Errorf("head drawn as %+v", head)
	}
}
