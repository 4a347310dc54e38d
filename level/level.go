// Package level wraps a generated maze into a fixed-size world: wall
// rectangles for collision and drawing, and a status grid tracking where the
// player has been.
package level

import (
	"errors"
	"fmt"
	"math"

	"github.com/jinzhu/copier"

	"raymaze/collision"
	"raymaze/maze"
	"raymaze/vec"
)

var ErrGridSize = errors.New("grid is not size*size")

type Level struct {
	size     int
	cellSize float64
	grid     maze.Grid
	status   maze.Grid
	walls    []collision.Rect
}

// New takes ownership of grid. The wall rects and status grid are derived once
// here and the grid is never resized afterwards.
func New(grid maze.Grid, size int, cellSize float64) (*Level, error) {
	if size <= 0 || len(grid) != size*size {
		return nil, fmt.Errorf("level of size %d with %d cells: %w", size, len(grid), ErrGridSize)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("cell size %v must be positive", cellSize)
	}
	status, err := InitStatus(grid)
	if err != nil {
		return nil, err
	}
	return &Level{
		size:     size,
		cellSize: cellSize,
		grid:     grid,
		status:   status,
		walls:    BuildWallRects(grid, size, cellSize),
	}, nil
}

// BuildWallRects emits one cellSize square per wall cell in row-major order.
func BuildWallRects(grid maze.Grid, size int, cellSize float64) []collision.Rect {
	rects := make([]collision.Rect, 0, len(grid))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if grid[row*size+col] != maze.Wall {
				continue
			}
			rects = append(rects, collision.Rect{
				X: float64(col) * cellSize,
				Y: float64(row) * cellSize,
				W: cellSize,
				H: cellSize,
			})
		}
	}
	return rects
}

// InitStatus returns an independent copy of grid.
func InitStatus(grid maze.Grid) (maze.Grid, error) {
	status := make(maze.Grid, 0, len(grid))
	if err := copier.CopyWithOption(&status, grid, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy status grid: %w", err)
	}
	return status, nil
}

func (l *Level) Size() int { return l.size }
func (l *Level) CellSize() float64 { return l.cellSize }
func (l *Level) Grid() maze.Grid { return l.grid }
func (l *Level) WallRects() []collision.Rect { return l.walls }
func (l *Level) Status(index int) maze.Cell { return l.status[index] }
func (l *Level) StatusAt(row, col int) maze.Cell { return l.status[row*l.size+col] }

// InBounds reports whether index addresses a cell of the grid.
func (l *Level) InBounds(index int) bool {
	return index >= 0 && index < len(l.grid)
}

// IsWall reports whether row, col is a wall. Cells outside the grid count as
// walls.
func (l *Level) IsWall(row, col int) bool {
	if row < 0 || row >= l.size || col < 0 || col >= l.size {
		return true
	}
	return l.grid[row*l.size+col] == maze.Wall
}

// CellOf returns the row and column containing the world point x, y.
func (l *Level) CellOf(x, y float64) (row, col int) {
	return int(math.Floor(y / l.cellSize)), int(math.Floor(x / l.cellSize))
}

// CellIndex returns the row-major index of the cell containing pos.
func (l *Level) CellIndex(pos vec.Vec3) int {
	row, col := l.CellOf(pos.X, pos.Y)
	return row*l.size + col
}

// MarkEntered flags the cell at index as walked into. Out of range indices are
// ignored and reported as false.
func (l *Level) MarkEntered(index int) bool {
	if !l.InBounds(index) {
		return false
	}
	l.status[index] = maze.Entered
	return true
}

// IsEntered reports whether the player has walked into the cell at index.
func (l *Level) IsEntered(index int) bool {
	return l.InBounds(index) && l.status[index] == maze.Entered
}

// ExitIndex is the bottom-right room, the goal of the maze.
func (l *Level) ExitIndex() int {
	return l.size*l.size - l.size - 2
}

// StartPosition is the world point the player spawns at, just inside the
// top-left room.
func (l *Level) StartPosition() vec.Vec3 {
	return vec.New(l.cellSize+1, l.cellSize+1, 0)
}
