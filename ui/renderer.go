package ui

import (
	"fmt"
	"os"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is the raylib frontend: it owns the OS window, the frame pacing
// and the font used for the readout.
type Window struct {
	font   rl.Font
	closed bool
}

// NewWindow opens the window and loads the font. A missing font file is a
// *game.ResourceError wrapping game.ErrResourceNotFound; one that cannot
// be read or decoded wraps game.ErrResourceLoad.
func NewWindow(cfg config.Config) (*Window, error) {
	if err := checkFont(cfg.FontPath); err != nil {
		return nil, err
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), cfg.Title)
	if !rl.IsWindowReady() {
		rl.CloseWindow()
		return nil, fmt.Errorf("failed to open %dx%d window", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	rl.SetTargetFPS(int32(cfg.FrameRate))

	// raylib falls back to its built-in font when loading fails
	font := rl.LoadFont(cfg.FontPath)
	if font.Texture.ID == 0 || font.Texture.ID == rl.GetFontDefault().Texture.ID {
		rl.CloseWindow()
		return nil, &game.ResourceError{Kind: "font", Path: cfg.FontPath, Err: game.ErrResourceLoad}
	}
	return &Window{font: font}, nil
}

// checkFont makes sure the font file exists and is readable before any
// window is opened.
func checkFont(path string) error {
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return &game.ResourceError{Kind: "font", Path: path, Err: game.ErrResourceNotFound}
	case err != nil:
		return &game.ResourceError{Kind: "font", Path: path, Err: fmt.Errorf("%w: %v", game.ErrResourceLoad, err)}
	case len(data) == 0:
		return &game.ResourceError{Kind: "font", Path: path, Err: fmt.Errorf("%w: empty file", game.ErrResourceLoad)}
	}
	return nil
}

// PollEvent returns queued key presses and, once, the window close request.
func (w *Window) PollEvent() (game.Event, bool) {
	if !w.closed && rl.WindowShouldClose() {
		w.closed = true
		return game.Closed(), true
	}
	code := rl.GetKeyPressed()
	if code == 0 {
		return game.Event{}, false
	}
	return game.KeyPressed(keyFor(code)), true
}

func keyFor(code int32) game.Key {
	switch code {
	case rl.KeySpace:
		return game.KeyPause
	case rl.KeyW, rl.KeyUp:
		return game.KeyUp
	case rl.KeyS, rl.KeyDown:
		return game.KeyDown
	case rl.KeyA, rl.KeyLeft:
		return game.KeyLeft
	case rl.KeyD, rl.KeyRight:
		return game.KeyRight
	default:
		return game.KeyOther
	}
}

func (w *Window) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

func (w *Window) Draw(s types.Shape) {
	color := toColor(s.Fill)
	switch s.Kind {
	case types.ShapeCircle:
		radius := s.Bounds.W / 2
		rl.DrawCircleV(rl.Vector2{X: s.Bounds.X + radius, Y: s.Bounds.Y + radius}, radius, color)
	default:
		rl.DrawRectangleV(
			rl.Vector2{X: s.Bounds.X, Y: s.Bounds.Y},
			rl.Vector2{X: s.Bounds.W, Y: s.Bounds.H},
			color)
	}
}

func (w *Window) DrawText(text string, pos types.Vector2, size int) {
	rl.DrawTextEx(w.font, text, rl.Vector2{X: pos.X, Y: pos.Y}, float32(size), 1, rl.White)
}

// Display presents the frame; raylib waits here to hold the target FPS.
func (w *Window) Display() {
	rl.EndDrawing()
}

func (w *Window) Close() {
	rl.UnloadFont(w.font)
	rl.CloseWindow()
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
