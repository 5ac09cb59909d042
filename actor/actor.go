package actor

import (
	"math"

	"github.com/hollowroot/overworld/input"
	"github.com/hollowroot/overworld/tilemap"
)

// Direction is the player's facing, used to pick the sprite strip.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned box in world pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Player is the single controllable actor. X/Y is the top-left of the
// sprite bounding box in world pixels.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Facing        Direction
	Moving        bool

	// Frame is a fractional animation phase in [0, frameCount).
	Frame        float64
	frameCount   int
	frameAdvance float64

	// feet hitbox shape relative to the sprite box
	hitboxPadX float64
	feetHeight float64
}

// Config holds the tunables the player is built from.
type Config struct {
	X, Y         float64
	Width        float64
	Height       float64
	Speed        float64
	FrameCount   int
	FrameAdvance float64
	HitboxPadX   float64
	FeetHeight   float64
}

func NewPlayer(cfg Config) *Player {
	p := &Player{
		X:            cfg.X,
		Y:            cfg.Y,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Speed:        cfg.Speed,
		Facing:       DirDown,
		frameCount:   cfg.FrameCount,
		frameAdvance: cfg.FrameAdvance,
		hitboxPadX:   cfg.HitboxPadX,
		feetHeight:   cfg.FeetHeight,
	}
	if p.frameCount < 1 {
		p.frameCount = 1
	}
	return p
}

// Update advances the player one tick: builds the candidate displacement
// from held directions, resolves each axis against the grid independently,
// then steps the walk animation.
//
// Axis order is x first, then y from the committed x. A blocked diagonal
// still moves along the open axis, which is what makes the player slide
// along walls. Diagonal input moves at full speed on both axes; the vector
// is intentionally not normalized.
func (p *Player) Update(in *input.State, m *tilemap.TileMap) {
	var dx, dy float64
	if in.Up {
		dy -= p.Speed
		p.Facing = DirUp
	}
	if in.Down {
		dy += p.Speed
		p.Facing = DirDown
	}
	if in.Left {
		dx -= p.Speed
		p.Facing = DirLeft
	}
	if in.Right {
		dx += p.Speed
		p.Facing = DirRight
	}

	// Moving reflects input, not the resolved result: walking into a wall
	// still plays the walk animation.
	p.Moving = dx != 0 || dy != 0

	if dx != 0 && p.canMove(p.X+dx, p.Y, m) {
		p.X += dx
	}
	if dy != 0 && p.canMove(p.X, p.Y+dy, m) {
		p.Y += dy
	}

	p.stepAnimation()
}

// FeetRect returns the collision rectangle for the given sprite top-left:
// inset horizontally and covering only the bottom band of the sprite, so
// the player's head can overlap wall tiles above.
func (p *Player) FeetRect(x, y float64) Rect {
	return Rect{
		X:      x + p.hitboxPadX,
		Y:      y + p.Height - p.feetHeight,
		Width:  p.Width - 2*p.hitboxPadX,
		Height: p.feetHeight,
	}
}

// canMove samples the four corners of the feet hitbox at the candidate
// position. Any blocked corner rejects the move.
func (p *Player) canMove(x, y float64, m *tilemap.TileMap) bool {
	r := p.FeetRect(x, y)
	return !m.Blocked(r.X, r.Y) &&
		!m.Blocked(r.X+r.Width, r.Y) &&
		!m.Blocked(r.X, r.Y+r.Height) &&
		!m.Blocked(r.X+r.Width, r.Y+r.Height)
}

func (p *Player) stepAnimation() {
	if !p.Moving {
		p.Frame = 0
		return
	}
	p.Frame += p.frameAdvance
	if p.Frame >= float64(p.frameCount) {
		p.Frame = math.Mod(p.Frame, float64(p.frameCount))
	}
}

// FrameIndex is the current whole frame within the sprite strip.
func (p *Player) FrameIndex() int {
	return int(p.Frame)
}

// FrameCount returns the length of the walk cycle.
func (p *Player) FrameCount() int {
	return p.frameCount
}

// Center returns the middle of the sprite bounding box, which is what the
// camera follows.
func (p *Player) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}
