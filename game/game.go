package game

import (
	"log"
	"time"

	"snake-arcade/config"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Surface is the display and input collaborator. Display blocks until the
// next frame is due.
type Surface interface {
	types.Sink
	PollEvent() (Event, bool)
	DrawText(text string, pos types.Vector2, size int)
	Clear()
	Display()
}

// Sounds plays short cues. Implementations must not block.
type Sounds interface {
	Eat()
	GameOver()
}

type silence struct{}

func (silence) Eat()      {}
func (silence) GameOver() {}

// Outcome is the result of one tick.
type Outcome int

const (
	TickContinue Outcome = iota
	TickClosed
	TickOver
)

type Game struct {
	screen  types.Size
	surface Surface
	clock   Clock
	sounds  Sounds

	snake *entity.Snake
	foods *manager.FoodManager
	state *manager.StateManager

	text     string
	textPos  types.Vector2
	fontSize int
	wait     time.Duration
	cause    entity.CollisionType
}

type Option func(*Game)

func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

func WithSounds(s Sounds) Option {
	return func(g *Game) {
		if s != nil {
			g.sounds = s
		}
	}
}

// NewGame builds a paused session on the given surface.
func NewGame(cfg config.Config, surface Surface, rng manager.Source, opts ...Option) *Game {
	screen := types.Size{Width: cfg.ScreenWidth, Height: cfg.ScreenHeight}
	g := &Game{
		screen:   screen,
		surface:  surface,
		sounds:   silence{},
		snake:    entity.NewSnake(screen, cfg.SegmentSize, cfg.SnakeLength),
		foods:    manager.NewFoodManager(screen, cfg.SegmentSize, cfg.FoodCount, rng),
		state:    manager.NewStateManager(true),
		textPos:  types.Vector2{X: float32(cfg.ScreenWidth) * 0.60, Y: float32(cfg.ScreenHeight) * 0.01},
		fontSize: cfg.FontSize,
		wait:     cfg.GameOverWait,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = NewClock()
	}
	return g
}

// Tick runs one frame: input, simulation, consumption, terminal check and
// rendering.
func (g *Game) Tick() Outcome {
	for {
		ev, ok := g.surface.PollEvent()
		if !ok {
			break
		}
		switch ev.Kind {
		case EventClosed:
			return TickClosed
		case EventKeyPressed:
			if ev.Key == KeyPause {
				log.Printf("game %v", g.state.TogglePause())
				continue
			}
			g.snake.Turn(Direction(ev.Key))
		}
	}

	g.text = g.state.Readout(g.snake.Length(), g.clock.Elapsed())
	if !g.state.IsPaused() {
		g.snake.Step()
	}

	if g.foods.IsEaten(g.snake) {
		g.snake.Grow()
		g.sounds.Eat()
	}

	if g.cause = g.snake.Collision(g.screen); g.cause != entity.NoCollision {
		g.state.End()
		g.text = g.state.Readout(g.snake.Length(), g.clock.Elapsed())
		log.Printf("game over: %v collision at %v, length %d", g.cause, g.snake.Head(), g.snake.Length())
		g.sounds.GameOver()
		return TickOver
	}

	g.render()
	return TickContinue
}

// Run drives ticks until the surface closes or the snake dies. After a
// death the final board stays up for the configured wait. The return
// value is the process exit code.
func (g *Game) Run() int {
	for {
		switch g.Tick() {
		case TickClosed:
			return 0
		case TickOver:
			g.gameOver()
			return 0
		}
	}
}

func (g *Game) gameOver() {
	g.clock.Restart()
	for g.clock.Elapsed() <= g.wait {
		for {
			ev, ok := g.surface.PollEvent()
			if !ok {
				break
			}
			if ev.Kind == EventClosed {
				return
			}
		}
		g.render()
	}
}

func (g *Game) render() {
	g.surface.Clear()
	g.surface.DrawText(g.text, g.textPos, g.fontSize)
	g.snake.Draw(g.surface)
	g.foods.Draw(g.surface)
	g.surface.Display()
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Foods() *manager.FoodManager {
	return g.foods
}

func (g *Game) State() manager.State {
	return g.state.State()
}

// Text returns the readout shown on the last rendered frame.
func (g *Game) Text() string {
	return g.text
}

// Cause returns why the session ended, NoCollision while it runs.
func (g *Game) Cause() entity.CollisionType {
	return g.cause
}
