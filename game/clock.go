package game

import "time"

// Clock measures session time.
type Clock interface {
	Elapsed() time.Duration
	Restart()
}

type wallClock struct {
	start time.Time
}

// NewClock returns a clock started now.
func NewClock() Clock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

func (c *wallClock) Restart() {
	c.start = time.Now()
}
