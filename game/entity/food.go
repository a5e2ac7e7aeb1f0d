package entity

import "snake-arcade/game/types"

// Food is a square item placed on the spawn lattice.
type Food struct {
	Position types.Vector2
	Size     float32
}

func (f Food) Bounds() types.Rect {
	return types.Square(f.Position, f.Size)
}

func (f Food) Draw(sink types.Sink) {
	sink.Draw(types.Shape{Kind: types.ShapeSquare, Bounds: f.Bounds(), Fill: types.Red})
}
