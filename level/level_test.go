package level

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raymaze/collision"
	"raymaze/maze"
	"raymaze/vec"
)

func generated(t *testing.T, size int, seed int64) maze.Grid {
	t.Helper()
	grid, err := maze.Generate(size, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return grid
}

func TestBuildWallRectsSingleWall(t *testing.T) {
	grid := maze.Grid{
		maze.Open, maze.Open, maze.Open,
		maze.Open, maze.Wall, maze.Open,
		maze.Open, maze.Open, maze.Open,
	}
	rects := BuildWallRects(grid, 3, 32)
	require.Len(t, rects, 1)
	assert.Equal(t, collision.Rect{X: 32, Y: 32, W: 32, H: 32}, rects[0])
}

func TestBuildWallRectsMatchesGrid(t *testing.T) {
	const cellSize = 32.0
	grid := generated(t, 23, 7)
	rects := BuildWallRects(grid, 23, cellSize)

	walls := 0
	for _, c := range grid {
		if c == maze.Wall {
			walls++
		}
	}
	assert.Len(t, rects, walls)

	prev := -1
	for _, r := range rects {
		col := int(math.Floor(r.X / cellSize))
		row := int(math.Floor(r.Y / cellSize))
		idx := row*23 + col
		assert.Equal(t, maze.Wall, grid[idx])
		assert.Greater(t, idx, prev, "row-major order")
		prev = idx
		assert.Equal(t, cellSize, r.W)
		assert.Equal(t, cellSize, r.H)
	}
}

func TestInitStatusIsIndependent(t *testing.T) {
	grid := generated(t, 7, 1)
	status, err := InitStatus(grid)
	require.NoError(t, err)
	assert.Equal(t, grid, status)

	status[8] = maze.Entered
	assert.NotEqual(t, maze.Entered, grid[8], "mutating status leaves the grid alone")
}

func TestNewValidates(t *testing.T) {
	_, err := New(make(maze.Grid, 8), 3, 32)
	assert.ErrorIs(t, err, ErrGridSize)

	_, err = New(make(maze.Grid, 9), 3, 0)
	assert.Error(t, err)
}

func TestLevel(t *testing.T) {
	grid := generated(t, 5, 2)
	l, err := New(grid, 5, 32)
	require.NoError(t, err)

	assert.Equal(t, 5, l.Size())
	assert.Equal(t, 32.0, l.CellSize())
	assert.Equal(t, 18, l.ExitIndex())
	assert.Equal(t, maze.Open, grid[l.ExitIndex()], "exit room is carved")

	start := l.StartPosition()
	assert.Equal(t, vec.New(33, 33, 0), start)
	assert.Equal(t, maze.Start(5), l.CellIndex(start))

	assert.True(t, l.IsWall(0, 0))
	assert.True(t, l.IsWall(-1, 2), "outside counts as wall")
	assert.True(t, l.IsWall(2, 5))
	assert.False(t, l.IsWall(1, 1))

	assert.False(t, l.IsEntered(6))
	assert.True(t, l.MarkEntered(6))
	assert.True(t, l.IsEntered(6))
	assert.Equal(t, maze.Entered, l.Status(6))
	assert.Equal(t, maze.Entered, l.StatusAt(1, 1))
	assert.Equal(t, maze.Open, l.Grid()[6], "wall grid is not touched")

	assert.False(t, l.MarkEntered(-1))
	assert.False(t, l.MarkEntered(25))
	assert.False(t, l.IsEntered(99))
}
