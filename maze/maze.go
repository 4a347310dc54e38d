/*
Package maze carves square mazes out of a solid grid with a randomized
depth-first traversal.

Rooms sit on odd row/column offsets, one cell in from the border; the cells
between two rooms are walls until the traversal carves through them. A room's
neighbours are the four rooms two cells away:

	    X
	    #
	X # C # X
	    #
	    X
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Cell is the state of one grid cell. The same grid doubles as the wall map:
// a cell never visited by the traversal stays a wall.
type Cell int

const (
	Visited   Cell = 0
	Unvisited Cell = 1
	// Entered marks cells the player has physically walked into. It only
	// appears in a level's status grid, never in a generated maze.
	Entered Cell = 2

	Open = Visited
	Wall = Unvisited
)

const (
	MinSize = 3

	numDirections = 4
	noNeighbor    = -1
)

var (
	ErrInvalidSize = errors.New("maze size must be odd and at least 3")
	ErrEmptyStack  = errors.New("pop from empty stack")
)

// Source is the randomness the generator draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Grid is a size*size row-major slice of cells.
type Grid []Cell

// Size returns the side length of a square grid.
func (g Grid) Size() int {
	n := 0
	for n*n < len(g) {
		n++
	}
	return n
}

// At returns the cell at row, col in a grid of side n.
func (g Grid) At(n, row, col int) Cell {
	return g[row*n+col]
}

// String renders the grid with '#' for walls and ' ' for open cells, one row per line.
func (g Grid) String() string {
	n := g.Size()
	var b strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			switch g.At(n, row, col) {
			case Wall:
				b.WriteByte('#')
			case Entered:
				b.WriteByte('.')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Start returns the index the traversal starts from: one cell down and one
// right from the top-left corner.
func Start(size int) int {
	return size + 1
}

// Generate builds a size*size maze. size must be odd so that rooms and the
// walls between them line up with the border.
func Generate(size int, src Source) (Grid, error) {
	if size < MinSize || size%2 == 0 {
		return nil, fmt.Errorf("generate %d: %w", size, ErrInvalidSize)
	}

	grid := make(Grid, size*size)
	for i := range grid {
		grid[i] = Unvisited
	}

	visited, err := carve(grid, size, src)
	if err != nil {
		return nil, fmt.Errorf("generate %d: %w", size, err)
	}

	logrus.WithFields(logrus.Fields{
		"size":  size,
		"rooms": visited,
	}).Debug("maze generated")

	return grid, nil
}

// carve runs the traversal in place and returns the number of rooms visited.
func carve(grid Grid, size int, src Source) (int, error) {
	stack := NewStack[int](size * size / 4)
	stack.Push(Start(size))

	rooms := 0
	for !stack.IsEmpty() {
		current, err := stack.Top()
		if err != nil {
			return rooms, err
		}
		if grid[current] != Visited {
			rooms++
		}
		grid[current] = Visited

		neighbors := neighborsOf(current, grid, size)
		move := pickNeighbor(neighbors, grid, src)
		if move == noNeighbor {
			if _, err := stack.Pop(); err != nil {
				return rooms, err
			}
			continue
		}

		next := neighbors[move]
		grid[between(next, move, size)] = Visited
		stack.Push(next)
	}
	return rooms, nil
}

// neighborsOf lists the unvisited rooms around current in up, down, left,
// right order. Missing neighbours are noNeighbor.
func neighborsOf(current int, grid Grid, size int) [numDirections]int {
	n := [numDirections]int{noNeighbor, noNeighbor, noNeighbor, noNeighbor}
	if up := current - 2*size; up >= 0 && grid[up] == Unvisited {
		n[0] = up
	}
	if down := current + 2*size; down < size*size && grid[down] == Unvisited {
		n[1] = down
	}
	if current%size >= 2 && grid[current-2] == Unvisited {
		n[2] = current - 2
	}
	if current%size < size-2 && grid[current+2] == Unvisited {
		n[3] = current + 2
	}
	return n
}

// pickNeighbor draws directions uniformly until it lands on a usable one.
// It returns noNeighbor without drawing when none are usable.
func pickNeighbor(neighbors [numDirections]int, grid Grid, src Source) int {
	valid := 0
	for _, idx := range neighbors {
		if idx != noNeighbor {
			valid++
		}
	}
	if valid == 0 {
		return noNeighbor
	}
	for {
		d := src.Intn(numDirections)
		if neighbors[d] != noNeighbor && grid[neighbors[d]] != Visited {
			return d
		}
	}
}

// between returns the wall cell separating next from the room it was reached
// from, given the direction of the move.
func between(next, move, size int) int {
	switch move {
	case 0:
		return next + size
	case 1:
		return next - size
	case 2:
		return next + 1
	default:
		return next - 1
	}
}
