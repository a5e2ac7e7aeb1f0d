// Package terminal draws the board on a character terminal with tcell.
// One board cell maps to two columns so squares look square.
package terminal

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/types"
)

const block = '█'

type Screen struct {
	screen tcell.Screen
	cell   float32
	ticker *time.Ticker
}

// New initialises the controlling terminal.
func New(cfg config.Config) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("problem creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init problem: %w", err)
	}
	return NewWithScreen(s, cfg), nil
}

// NewWithScreen wraps an initialised tcell screen.
func NewWithScreen(s tcell.Screen, cfg config.Config) *Screen {
	s.HideCursor()
	s.Clear()
	return &Screen{
		screen: s,
		cell:   cfg.SegmentSize,
		ticker: time.NewTicker(time.Second / time.Duration(cfg.FrameRate)),
	}
}

// PollEvent drains the tcell queue without blocking.
func (s *Screen) PollEvent() (game.Event, bool) {
	for s.screen.HasPendingEvent() {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return game.Closed(), true
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			return translate(ev), true
		}
	}
	return game.Event{}, false
}

func translate(ev *tcell.EventKey) game.Event {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Closed()
	case tcell.KeyUp:
		return game.KeyPressed(game.KeyUp)
	case tcell.KeyDown:
		return game.KeyPressed(game.KeyDown)
	case tcell.KeyLeft:
		return game.KeyPressed(game.KeyLeft)
	case tcell.KeyRight:
		return game.KeyPressed(game.KeyRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return game.Closed()
		case ' ':
			return game.KeyPressed(game.KeyPause)
		case 'w', 'W':
			return game.KeyPressed(game.KeyUp)
		case 's', 'S':
			return game.KeyPressed(game.KeyDown)
		case 'a', 'A':
			return game.KeyPressed(game.KeyLeft)
		case 'd', 'D':
			return game.KeyPressed(game.KeyRight)
		}
	}
	return game.KeyPressed(game.KeyOther)
}

// Cell converts a board position to terminal coordinates.
func (s *Screen) Cell(pos types.Vector2) (col, row int) {
	col = int(math.Floor(float64(pos.X/s.cell))) * 2
	row = int(math.Floor(float64(pos.Y / s.cell)))
	return col, row
}

func (s *Screen) Draw(sh types.Shape) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(sh.Fill.R), int32(sh.Fill.G), int32(sh.Fill.B)))
	col, row := s.Cell(sh.Bounds.Position())
	s.screen.SetContent(col, row, block, nil, style)
	s.screen.SetContent(col+1, row, block, nil, style)
}

func (s *Screen) DrawText(text string, pos types.Vector2, _ int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	col, row := s.Cell(pos)
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

// Display shows the frame and waits for the next frame tick.
func (s *Screen) Display() {
	s.screen.Show()
	<-s.ticker.C
}

func (s *Screen) Close() {
	s.ticker.Stop()
	s.screen.Fini()
}
