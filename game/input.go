package game

import "snake-arcade/game/types"

type EventKind int

const (
	EventClosed EventKind = iota
	EventKeyPressed
)

// Key is a frontend-independent key code.
type Key int

const (
	KeyOther Key = iota
	KeyPause
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

type Event struct {
	Kind EventKind
	Key  Key
}

func Closed() Event {
	return Event{Kind: EventClosed}
}

func KeyPressed(k Key) Event {
	return Event{Kind: EventKeyPressed, Key: k}
}

// Direction maps a key to a movement direction. Keys that do not steer
// map to the zero vector.
func Direction(k Key) types.Vector2 {
	switch k {
	case KeyUp:
		return types.Up
	case KeyDown:
		return types.Down
	case KeyLeft:
		return types.Left
	case KeyRight:
		return types.Right
	default:
		return types.Zero
	}
}
