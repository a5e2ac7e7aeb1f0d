// Package sound plays short sine cues through the system speaker.
package sound

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const SampleRate = beep.SampleRate(44100)

// Cue is a tone played for a game event.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

var (
	EatCue      = Cue{Freq: 880, Duration: 50 * time.Millisecond}
	GameOverCue = Cue{Freq: 220, Duration: 400 * time.Millisecond}
)

// Streamer renders the cue at the given sample rate.
func (c Cue) Streamer(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, c.Freq)
	if err != nil {
		return nil, fmt.Errorf("tone %vHz: %w", c.Freq, err)
	}
	return beep.Take(sr.N(c.Duration), sine), nil
}

// Player queues cues on the speaker. Play never blocks the caller.
type Player struct {
	sr beep.SampleRate
}

// NewPlayer opens the speaker.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Player{sr: SampleRate}, nil
}

func (p *Player) play(c Cue) {
	s, err := c.Streamer(p.sr)
	if err != nil {
		log.Printf("sound: %v", err)
		return
	}
	speaker.Play(s)
}

func (p *Player) Eat() {
	p.play(EatCue)
}

func (p *Player) GameOver() {
	p.play(GameOverCue)
}

func (p *Player) Close() {
	speaker.Close()
}
