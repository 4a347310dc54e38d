// Package session holds one running maze: the level, the player walking it
// and the caster that renders what the player sees. A frontend feeds it one
// Intent per frame and draws the Frame it returns.
package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"

	"raymaze/collision"
	"raymaze/config"
	"raymaze/level"
	"raymaze/maze"
	"raymaze/model"
	"raymaze/raycast"
	"raymaze/vec"
)

// EndStateTurn is how far the player spins per frame once the maze is solved.
const EndStateTurn = 0.01

// Frame is everything needed to draw one frame.
type Frame struct {
	Walls   []collision.Rect
	Origin  vec.Vec3
	Dir     vec.Vec3
	Hits    []raycast.Hit
	Heights []float64

	// Aim is where the ray straight ahead lands; AimedCell is the open cell
	// in front of that wall.
	Aim          raycast.Hit
	AimedCell    int
	AimedEntered bool

	Won bool
}

// PlayerState is a detached copy of the player's fields.
type PlayerState struct {
	Position  vec.Vec3
	Direction vec.Vec3
	Size      float64
	Step      float64
	TurnAngle float64
	Moved     bool
}

type Session struct {
	cfg    config.Config
	seed   int64
	level  *level.Level
	player *model.Player
	caster *raycast.Caster

	won    bool
	frames int
}

// ResolveSeed returns seed, or a clock based seed when seed is 0.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// New generates a maze from cfg and spawns the player at the level's start,
// facing along +x.
func New(cfg config.Config) (*Session, error) {
	seed := ResolveSeed(cfg.Maze.Seed)
	return NewWithSource(cfg, seed, rand.New(rand.NewSource(seed)))
}

// NewWithSource is New with an explicit random source. seed is only recorded
// for logging.
func NewWithSource(cfg config.Config, seed int64, src maze.Source) (*Session, error) {
	grid, err := maze.Generate(cfg.Maze.Size, src)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	lvl, err := level.New(grid, cfg.Maze.Size, cfg.Maze.CellSize)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	p := model.NewPlayer(lvl.StartPosition(), vec.New(1, 0, 0))
	p.Size = cfg.Player.Size
	p.Step = cfg.Player.Step
	p.TurnAngle = cfg.Player.TurnAngle

	s := &Session{
		cfg:    cfg,
		seed:   seed,
		level:  lvl,
		player: p,
		caster: raycast.New(lvl,
			raycast.WithMaxSteps(cfg.Raycast.MaxSteps),
			raycast.WithHeightCoefficient(cfg.Raycast.HeightCoefficient),
		),
	}
	lvl.MarkEntered(lvl.CellIndex(p.Position))

	logrus.WithFields(logrus.Fields{
		"seed":  seed,
		"size":  cfg.Maze.Size,
		"walls": len(lvl.WallRects()),
	}).Info("session started")
	return s, nil
}

func (s *Session) Level() *level.Level     { return s.level }
func (s *Session) Player() *model.Player   { return s.player }
func (s *Session) Caster() *raycast.Caster { return s.caster }
func (s *Session) Seed() int64             { return s.seed }
func (s *Session) Won() bool               { return s.won }
func (s *Session) Frames() int             { return s.frames }

// Step advances the session by one frame. Before the exit is reached the
// player acts on in; afterwards input is ignored and the player slowly spins
// in place.
func (s *Session) Step(in model.Intent) (Frame, error) {
	s.frames++

	if s.won {
		s.player.Rotate(EndStateTurn)
	} else {
		s.player.Update(in, s.level.WallRects())
		s.checkWin()
	}

	s.level.MarkEntered(s.level.CellIndex(s.player.Position))
	return s.Frame()
}

func (s *Session) checkWin() {
	if s.level.CellIndex(s.player.Position) != s.level.ExitIndex() {
		return
	}
	s.won = true
	logrus.WithFields(logrus.Fields{
		"frames": s.frames,
		"seed":   s.seed,
	}).Info("maze solved")
}

// Frame casts the view for the player's current position without advancing
// the session.
func (s *Session) Frame() (Frame, error) {
	origin, dir := s.player.Position, s.player.Direction
	vh := float64(s.cfg.Window.Height)

	hits, err := s.caster.Fan(origin, dir, s.cfg.Camera.FOV, s.cfg.Camera.Rays)
	if err != nil {
		return Frame{}, fmt.Errorf("frame %d: %w", s.frames, err)
	}
	aim, err := s.caster.Cast(origin, dir)
	if err != nil {
		return Frame{}, fmt.Errorf("frame %d aim: %w", s.frames, err)
	}
	aimed := s.caster.PointedCell(aim, dir)

	return Frame{
		Walls:        s.level.WallRects(),
		Origin:       origin,
		Dir:          dir,
		Hits:         hits,
		Heights:      s.caster.Heights(hits, origin, dir, vh),
		Aim:          aim,
		AimedCell:    aimed,
		AimedEntered: s.level.IsEntered(aimed),
		Won:          s.won,
	}, nil
}

// Snapshot copies the player so callers can keep it across frames.
func (s *Session) Snapshot() (PlayerState, error) {
	var st PlayerState
	if err := copier.Copy(&st, s.player); err != nil {
		return PlayerState{}, fmt.Errorf("snapshot: %w", err)
	}
	return st, nil
}
