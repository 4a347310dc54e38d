package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlap(t *testing.T) {
	wall := Rect{X: 32, Y: 32, W: 32, H: 32}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{X: 40, Y: 40, W: 1, H: 1}, true},
		{"partial", Rect{X: 20, Y: 20, W: 20, H: 20}, true},
		{"touching left edge", Rect{X: 31, Y: 40, W: 1, H: 1}, true},
		{"touching bottom edge", Rect{X: 40, Y: 64, W: 1, H: 1}, true},
		{"left of", Rect{X: 10, Y: 40, W: 1, H: 1}, false},
		{"right of", Rect{X: 64.5, Y: 40, W: 1, H: 1}, false},
		{"above", Rect{X: 40, Y: 30, W: 1, H: 1}, false},
		{"below", Rect{X: 40, Y: 65, W: 1, H: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlap(tt.r, wall))
			assert.Equal(t, tt.want, Overlap(wall, tt.r), "overlap is symmetric")
		})
	}
}

func TestAnyOverlap(t *testing.T) {
	walls := []Rect{
		{X: 0, Y: 0, W: 32, H: 32},
		{X: 64, Y: 0, W: 32, H: 32},
	}
	assert.False(t, AnyOverlap(Rect{X: 40, Y: 10, W: 0.5, H: 0.5}, walls))
	assert.True(t, AnyOverlap(Rect{X: 70, Y: 10, W: 0.5, H: 0.5}, walls))
	assert.False(t, AnyOverlap(Rect{X: 70, Y: 10, W: 0.5, H: 0.5}, nil))
}
