package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"raymaze/collision"
	"raymaze/vec"
)

func TestNewPlayerNormalizesDirection(t *testing.T) {
	p := NewPlayer(vec.New(33, 33, 0), vec.New(3, 4, 9))
	assert.InDelta(t, 0.6, p.Direction.X, vec.Epsilon)
	assert.InDelta(t, 0.8, p.Direction.Y, vec.Epsilon)
	assert.Zero(t, p.Direction.Z)
	assert.Equal(t, DefaultStep, p.Step)
	assert.Equal(t, DefaultSize, p.Size)
	assert.Equal(t, DefaultTurnAngle, p.TurnAngle)
}

func TestTurn(t *testing.T) {
	p := NewPlayer(vec.New(0, 0, 0), vec.New(1, 0, 0))

	p.Turn(Intent{TurnCW: true})
	assert.InDelta(t, DefaultTurnAngle, p.Heading(), vec.Epsilon)

	p.Turn(Intent{TurnCCW: true})
	p.Turn(Intent{TurnCCW: true})
	assert.InDelta(t, -DefaultTurnAngle, p.Heading(), vec.Epsilon)

	p.Turn(Intent{TurnCW: true, TurnCCW: true})
	assert.InDelta(t, -DefaultTurnAngle, p.Heading(), vec.Epsilon, "both keys cancel")

	for i := 0; i < 5000; i++ {
		p.Turn(Intent{TurnCW: true})
	}
	assert.InDelta(t, 1.0, p.Direction.Length(), vec.Epsilon)

	p.Rotate(math.Pi)
	assert.InDelta(t, 1.0, p.Direction.Length(), vec.Epsilon)
}

func TestMove(t *testing.T) {
	walls := []collision.Rect{{X: 64, Y: 32, W: 32, H: 32}}

	tests := []struct {
		name  string
		start vec.Vec3
		dir   vec.Vec3
		in    Intent
		moved bool
		want  vec.Vec3
	}{
		{"forward free", vec.New(40, 48, 0), vec.New(1, 0, 0), Intent{Forward: true}, true, vec.New(42, 48, 0)},
		{"backward free", vec.New(40, 48, 0), vec.New(1, 0, 0), Intent{Backward: true}, true, vec.New(38, 48, 0)},
		{"forward precedence", vec.New(40, 48, 0), vec.New(1, 0, 0), Intent{Forward: true, Backward: true}, true, vec.New(42, 48, 0)},
		{"blocked by wall", vec.New(62, 48, 0), vec.New(1, 0, 0), Intent{Forward: true}, false, vec.New(62, 48, 0)},
		{"touching counts as blocked", vec.New(61.75, 48, 0), vec.New(1, 0, 0), Intent{Forward: true}, false, vec.New(61.75, 48, 0)},
		{"no intent", vec.New(40, 48, 0), vec.New(1, 0, 0), Intent{}, false, vec.New(40, 48, 0)},
		{"backing away from wall", vec.New(63, 48, 0), vec.New(1, 0, 0), Intent{Backward: true}, true, vec.New(61, 48, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.start, tt.dir)
			dir := p.Direction
			assert.Equal(t, tt.moved, p.Move(tt.in, walls))
			assert.Equal(t, tt.moved, p.Moved)
			assert.InDelta(t, tt.want.X, p.Position.X, 1e-9)
			assert.InDelta(t, tt.want.Y, p.Position.Y, 1e-9)
			assert.Equal(t, dir, p.Direction, "moving never changes direction")
		})
	}
}

func TestMoveLandsExactlyOnProposal(t *testing.T) {
	p := NewPlayer(vec.New(100, 100, 0), vec.New(1, 1, 0))
	want := p.Position
	step := p.Direction
	step.Scale(p.Step)
	want.Translate(step)

	assert.True(t, p.Move(Intent{Forward: true}, nil))
	assert.Equal(t, want.X, p.Position.X)
	assert.Equal(t, want.Y, p.Position.Y)
}

func TestUpdateTurnsThenMoves(t *testing.T) {
	p := NewPlayer(vec.New(100, 100, 0), vec.New(1, 0, 0))
	p.TurnAngle = math.Pi / 2
	p.Update(Intent{TurnCW: true, Forward: true}, nil)
	assert.InDelta(t, 100.0, p.Position.X, 1e-9)
	assert.InDelta(t, 102.0, p.Position.Y, 1e-9)
}

func TestBoundingBox(t *testing.T) {
	p := NewPlayer(vec.New(0, 0, 0), vec.New(1, 0, 0))
	assert.Equal(t, collision.Rect{X: 9.75, Y: 19.75, W: 0.5, H: 0.5}, p.BoundingBox(vec.New(10, 20, 0)))
}
