package manager

import (
	"testing"
	"time"
)

func TestStateManager_Toggle(t *testing.T) {
	sm := NewStateManager(true)
	if sm.State() != Paused {
		t.Fatalf("initial state = %v, want paused", sm.State())
	}
	if got := sm.TogglePause(); got != Running {
		t.Fatalf("first toggle = %v, want running", got)
	}
	if got := sm.TogglePause(); got != Paused {
		t.Fatalf("second toggle = %v, want paused", got)
	}

	sm.End()
	if got := sm.TogglePause(); got != Over || !sm.IsOver() {
		t.Fatalf("toggle after end = %v, want over", got)
	}
}

func TestStateManager_Readout(t *testing.T) {
	tests := []struct {
		name    string
		paused  bool
		end     bool
		elapsed time.Duration
		want    string
	}{
		{"paused", true, false, 0, PausedPrompt},
		{"running", false, false, 2500 * time.Millisecond, "Length: 7    Time (sec): 2"},
		{"over", false, true, 61 * time.Second, "Game over. Length: 7    Time (sec): 61"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewStateManager(tt.paused)
			if tt.end {
				sm.End()
			}
			if got := sm.Readout(7, tt.elapsed); got != tt.want {
				t.Errorf("Readout() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeconds(t *testing.T) {
	if Seconds(-time.Second) != 0 || Seconds(1999*time.Millisecond) != 1 {
		t.Fatal("Seconds must truncate and clamp at zero")
	}
}
