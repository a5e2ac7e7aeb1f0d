package entity

import "snake-arcade/game/types"

// DirectionHistory records the direction used by each part of the snake,
// indexed from the most recent entry. Back(0) is the direction the head
// takes on the next step, Back(i+1) the one body segment i takes.
type DirectionHistory struct {
	dirs  []types.Vector2 // oldest first
	trail []types.Vector2 // directions dropped off the oldest end, newest first
}

// maxTrail bounds how many retired directions are kept for growth.
const maxTrail = 8

// NewDirectionHistory returns a history of n entries all set to dir.
func NewDirectionHistory(n int, dir types.Vector2) *DirectionHistory {
	dirs := make([]types.Vector2, n)
	for i := range dirs {
		dirs[i] = dir
	}
	return &DirectionHistory{dirs: dirs, trail: []types.Vector2{dir}}
}

func (h *DirectionHistory) Len() int {
	return len(h.dirs)
}

// Latest returns the pending direction for the next step.
func (h *DirectionHistory) Latest() types.Vector2 {
	return h.dirs[len(h.dirs)-1]
}

// SetLatest overwrites the pending direction without growing the history.
func (h *DirectionHistory) SetLatest(dir types.Vector2) {
	h.dirs[len(h.dirs)-1] = dir
}

// Back returns the direction k entries before the latest one.
func (h *DirectionHistory) Back(k int) types.Vector2 {
	return h.dirs[len(h.dirs)-1-k]
}

// Advance appends a copy of the latest direction and retires the oldest
// entry into the trail, keeping the length unchanged.
func (h *DirectionHistory) Advance() {
	if len(h.trail) < maxTrail {
		h.trail = append(h.trail, types.Vector2{})
	}
	copy(h.trail[1:], h.trail)
	h.trail[0] = h.dirs[0]
	copy(h.dirs, h.dirs[1:])
	// the last slot still holds the latest direction after the shift
}

// Trail returns the most recent retired direction: the move that brought
// the oldest tracked part to where it is. Once the retired entries are
// used up it falls back to the oldest tracked direction.
func (h *DirectionHistory) Trail() types.Vector2 {
	if len(h.trail) == 0 {
		return h.dirs[0]
	}
	return h.trail[0]
}

// Extend moves the trail to the oldest end so a newly attached tail
// replays the move its predecessor made. Consecutive calls walk further
// back along the retired directions.
func (h *DirectionHistory) Extend() {
	dir := h.Trail()
	if len(h.trail) > 0 {
		h.trail = h.trail[1:]
	}
	h.dirs = append(h.dirs, types.Vector2{})
	copy(h.dirs[1:], h.dirs)
	h.dirs[0] = dir
}
