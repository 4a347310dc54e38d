/*
Package raycast finds where rays leaving a point hit the walls of a square
grid, and turns those hits into the column heights of a first-person view.

Each ray is traced twice: once across the horizontal grid lines and once
across the vertical ones. Both searches step one cell at a time until they land
inside a wall cell, and the nearer of the two landings is the hit.
*/
package raycast

import (
	"errors"
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"raymaze/vec"
)

const (
	// CoordinateOffset nudges a crossing past the grid line when stepping up
	// or left, so the point falls in the cell on the far side of the line.
	CoordinateOffset = 0.01

	DefaultMaxSteps          = 10
	DefaultHeightCoefficient = 16.0
)

var (
	ErrZeroDirection   = errors.New("ray direction has no length")
	ErrInvalidRayCount = errors.New("ray count must be positive")
)

// Orientation tells which family of grid lines a ray crossed when it hit.
type Orientation int

const (
	// Horizontal hits were found stepping in y across horizontal grid lines.
	Horizontal Orientation = iota
	// Vertical hits were found stepping in x across vertical grid lines.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Hit is the point where a ray meets a wall.
type Hit struct {
	Point       geom.Vector2
	Orientation Orientation
}

// Vec returns the hit point as a vector with z = 0.
func (h Hit) Vec() vec.Vec3 {
	return vec.New(h.Point.X, h.Point.Y, 0)
}

// Grid is the wall map the caster reads. *level.Level implements it.
type Grid interface {
	Size() int
	CellSize() float64
	IsWall(row, col int) bool
}

type Caster struct {
	grid              Grid
	maxSteps          int
	heightCoefficient float64
}

type Option func(*Caster)

// WithMaxSteps caps how many cells each axis search may step through.
func WithMaxSteps(n int) Option {
	return func(c *Caster) {
		if n > 0 {
			c.maxSteps = n
		}
	}
}

func WithHeightCoefficient(k float64) Option {
	return func(c *Caster) {
		if k > 0 {
			c.heightCoefficient = k
		}
	}
}

func New(grid Grid, opts ...Option) *Caster {
	c := &Caster{
		grid:              grid,
		maxSteps:          DefaultMaxSteps,
		heightCoefficient: DefaultHeightCoefficient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Caster) MaxSteps() int { return c.maxSteps }

// hit reports whether x, y lies inside an in-bounds wall cell.
func (c *Caster) hit(x, y float64) bool {
	cell := c.grid.CellSize()
	n := c.grid.Size()
	row, col := int(math.Floor(y/cell)), int(math.Floor(x/cell))
	if row < 0 || row >= n || col < 0 || col >= n {
		return false
	}
	return c.grid.IsWall(row, col)
}

// HorizontalHit steps from origin along dir across horizontal grid lines and
// returns the first crossing that lands in a wall. ok is false when dir has
// no y component and therefore never crosses a horizontal line. When the step
// cap runs out the last crossing is returned as is.
func (c *Caster) HorizontalHit(origin, dir vec.Vec3) (p vec.Vec3, ok bool) {
	if vec.IsZero(dir.Y) {
		return vec.New(origin.X, origin.Y, 0), false
	}
	cell := c.grid.CellSize()
	invSlope := dir.X / dir.Y

	lineY, stepY := math.Ceil(origin.Y/cell)*cell, cell
	offset := 0.0
	if dir.Y < 0 {
		lineY, stepY = math.Floor(origin.Y/cell)*cell, -cell
		offset = -CoordinateOffset
	}

	at := func(i int) vec.Vec3 {
		y := lineY + float64(i)*stepY + offset
		return vec.New(origin.X+(y-origin.Y)*invSlope, y, 0)
	}

	p = at(0)
	for i := 1; !c.hit(p.X, p.Y) && i <= c.maxSteps; i++ {
		p = at(i)
	}
	return p, true
}

// VerticalHit is HorizontalHit with the axes swapped.
func (c *Caster) VerticalHit(origin, dir vec.Vec3) (p vec.Vec3, ok bool) {
	if vec.IsZero(dir.X) {
		return vec.New(origin.X, origin.Y, 0), false
	}
	cell := c.grid.CellSize()
	slope := dir.Y / dir.X

	lineX, stepX := math.Ceil(origin.X/cell)*cell, cell
	offset := 0.0
	if dir.X < 0 {
		lineX, stepX = math.Floor(origin.X/cell)*cell, -cell
		offset = -CoordinateOffset
	}

	at := func(i int) vec.Vec3 {
		x := lineX + float64(i)*stepX + offset
		return vec.New(x, origin.Y+(x-origin.X)*slope, 0)
	}

	p = at(0)
	for i := 1; !c.hit(p.X, p.Y) && i <= c.maxSteps; i++ {
		p = at(i)
	}
	return p, true
}

// Cast returns the nearest wall hit along dir from origin.
func (c *Caster) Cast(origin, dir vec.Vec3) (Hit, error) {
	h, hok := c.HorizontalHit(origin, dir)
	v, vok := c.VerticalHit(origin, dir)

	switch {
	case !hok && !vok:
		return Hit{}, ErrZeroDirection
	case !vok:
		return newHit(h, Horizontal), nil
	case !hok:
		return newHit(v, Vertical), nil
	case distance2D(origin, h) < distance2D(origin, v):
		return newHit(h, Horizontal), nil
	default:
		return newHit(v, Vertical), nil
	}
}

// Fan casts n rays spread over fov radians centered on dir. The first ray is
// dir rotated by -fov/2 and each following one is rotated by fov/n before it
// is cast, so hits come back in left to right screen order.
func (c *Caster) Fan(origin, dir vec.Vec3, fov float64, n int) ([]Hit, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fan of %d rays: %w", n, ErrInvalidRayCount)
	}
	step := fov / float64(n)

	ray := dir
	ray.Rotate(-fov / 2)

	hits := make([]Hit, n)
	for i := range hits {
		ray.Rotate(step)
		hit, err := c.Cast(origin, ray)
		if err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
		hits[i] = hit
	}
	return hits, nil
}

// Height converts ray, the vector from the eye to a hit, into an on-screen
// wall height. It divides by the ray's length along the unit view direction
// dir rather than its euclidean length, which keeps walls from bulging at the
// edges of the view.
func (c *Caster) Height(ray, dir vec.Vec3, viewportHeight float64) float64 {
	return ProjectHeight(ray, dir, viewportHeight, c.heightCoefficient)
}

// ProjectHeight is Height with an explicit coefficient. The result is clamped
// to [0, viewportHeight].
func ProjectHeight(ray, dir vec.Vec3, viewportHeight, coefficient float64) float64 {
	h := coefficient * viewportHeight / vec.Dot(ray, dir)
	return geom.Clamp(h, 0, viewportHeight)
}

// Heights projects every hit seen from origin, preserving order.
func (c *Caster) Heights(hits []Hit, origin, dir vec.Vec3, viewportHeight float64) []float64 {
	eye := vec.New(origin.X, origin.Y, 0)
	heights := make([]float64, len(hits))
	for i, hit := range hits {
		heights[i] = c.Height(vec.Sub(hit.Vec(), eye), dir, viewportHeight)
	}
	return heights
}

// PointedCell returns the index of the cell on the near side of the wall
// that hit landed on, i.e. the open cell the ray left when it struck. If dir
// gives no side to step back to, the index of the hit cell itself is returned.
func (c *Caster) PointedCell(hit Hit, dir vec.Vec3) int {
	cell := c.grid.CellSize()
	n := c.grid.Size()
	index := int(math.Floor(hit.Point.Y/cell))*n + int(math.Floor(hit.Point.X/cell))

	switch hit.Orientation {
	case Vertical:
		if dir.X < 0 {
			return index + 1
		}
		if dir.X > 0 {
			return index - 1
		}
	case Horizontal:
		if dir.Y < 0 {
			return index + n
		}
		if dir.Y > 0 {
			return index - n
		}
	}
	return index
}

func newHit(p vec.Vec3, o Orientation) Hit {
	return Hit{Point: geom.Vector2{X: p.X, Y: p.Y}, Orientation: o}
}

func distance2D(a, b vec.Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
