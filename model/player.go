package model

import (
	"math"

	"github.com/sirupsen/logrus"

	"raymaze/collision"
	"raymaze/vec"
)

const (
	DefaultTurnAngle = 0.05
	DefaultStep      = 2.0
	DefaultSize      = 0.5
)

// Intent is the set of movement keys held down during a frame.
type Intent struct {
	TurnCW   bool
	TurnCCW  bool
	Forward  bool
	Backward bool
}

type Player struct {
	Position vec.Vec3
	// Direction is kept at unit length; only Turn changes it.
	Direction vec.Vec3

	// Size is the side of the square bounding box used against walls.
	Size float64
	// Step scales Direction into a single frame's movement.
	Step float64
	// TurnAngle is the rotation per frame in radians.
	TurnAngle float64

	Moved bool
}

func NewPlayer(pos, dir vec.Vec3) *Player {
	dir.Z = 0
	dir.Normalize()
	return &Player{
		Position:  pos,
		Direction: dir,
		Size:      DefaultSize,
		Step:      DefaultStep,
		TurnAngle: DefaultTurnAngle,
	}
}

// Heading returns the direction's angle in radians.
func (p *Player) Heading() float64 {
	return math.Atan2(p.Direction.Y, p.Direction.X)
}

// Turn rotates the player clockwise and/or counter-clockwise. Holding both
// cancels out.
func (p *Player) Turn(in Intent) {
	if in.TurnCW {
		p.rotate(p.TurnAngle)
	}
	if in.TurnCCW {
		p.rotate(-p.TurnAngle)
	}
}

// Rotate turns the player by an arbitrary angle in radians.
func (p *Player) Rotate(angle float64) {
	p.Direction.Rotate(angle)
}

func (p *Player) rotate(angle float64) {
	before := p.Heading()
	p.Direction.Rotate(angle)
	logrus.WithFields(logrus.Fields{
		"before": before,
		"after":  p.Heading(),
	}).Debug("player turned")
}

// BoundingBox returns the player's box centered on pos.
func (p *Player) BoundingBox(pos vec.Vec3) collision.Rect {
	return collision.Rect{
		X: pos.X - p.Size/2,
		Y: pos.Y - p.Size/2,
		W: p.Size,
		H: p.Size,
	}
}

// Move steps forward or backward along Direction, forward taking precedence.
// The step is dropped whole if the player's box at the new position touches
// any wall. It returns whether the position changed.
func (p *Player) Move(in Intent, walls []collision.Rect) bool {
	p.Moved = false
	if !in.Forward && !in.Backward {
		return false
	}

	step := p.Direction
	step.Scale(p.Step)
	if !in.Forward {
		step.Invert()
	}

	next := p.Position
	next.Translate(step)

	if collision.AnyOverlap(p.BoundingBox(next), walls) {
		return false
	}

	p.Position.X, p.Position.Y = next.X, next.Y
	p.Moved = true
	logrus.WithFields(logrus.Fields{
		"x": p.Position.X,
		"y": p.Position.Y,
	}).Debug("player moved")
	return true
}

// Update applies a frame of input: turn first, then move.
func (p *Player) Update(in Intent, walls []collision.Rect) {
	p.Turn(in)
	p.Move(in, walls)
}
