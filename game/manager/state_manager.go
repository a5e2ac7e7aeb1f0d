package manager

import (
	"fmt"
	"time"
)

// State is the session phase driven by the loop controller.
type State int

const (
	Running State = iota
	Paused
	Over
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "over"
	}
}

const PausedPrompt = "Press [Space] to unpause Snake."

// StateManager tracks the Running/Paused/Over machine and formats the
// on-screen readout.
type StateManager struct {
	state State
}

// NewStateManager starts a session, paused until the player presses the
// pause key.
func NewStateManager(paused bool) *StateManager {
	sm := &StateManager{state: Running}
	if paused {
		sm.state = Paused
	}
	return sm
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) IsPaused() bool {
	return sm.state == Paused
}

func (sm *StateManager) IsOver() bool {
	return sm.state == Over
}

// TogglePause flips Running and Paused. A finished session stays over.
func (sm *StateManager) TogglePause() State {
	switch sm.state {
	case Running:
		sm.state = Paused
	case Paused:
		sm.state = Running
	}
	return sm.state
}

// End moves the session to Over.
func (sm *StateManager) End() {
	sm.state = Over
}

// Readout returns the text shown above the board.
func (sm *StateManager) Readout(length int, elapsed time.Duration) string {
	switch sm.state {
	case Paused:
		return PausedPrompt
	case Over:
		return fmt.Sprintf("Game over. Length: %d    Time (sec): %d", length, Seconds(elapsed))
	default:
		return fmt.Sprintf("Length: %d    Time (sec): %d", length, Seconds(elapsed))
	}
}

// Seconds truncates d to whole seconds.
func Seconds(d time.Duration) uint {
	if d < 0 {
		return 0
	}
	return uint(d / time.Second)
}
