package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want int
	}{
		{"equal", 1.0, 1.0, 0},
		{"within epsilon", 1.0, 1.0 + 5e-7, 0},
		{"less", 1.0, 1.1, -1},
		{"greater", 2.0, 1.0, 1},
		{"negative zero", -0.0, 0.0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestDotAndDistance(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -5, 6)
	assert.InDelta(t, 12.0, Dot(a, b), Epsilon)
	assert.InDelta(t, 5.0, Distance(New(0, 0, 0), New(3, 4, 0)), Epsilon)
}

func TestTranslateScaleInvert(t *testing.T) {
	v := New(1, 1, 0)
	v.Translate(New(2, -3, 1))
	assert.Equal(t, New(3, -2, 1), v)

	v.Scale(2)
	assert.Equal(t, New(6, -4, 2), v)

	v.Invert()
	assert.Equal(t, New(-6, 4, -2), v)
}

func TestRotate(t *testing.T) {
	v := New(1, 0, 7)
	v.Rotate(math.Pi / 2)
	assert.InDelta(t, 0.0, v.X, Epsilon)
	assert.InDelta(t, 1.0, v.Y, Epsilon)
	assert.Equal(t, 7.0, v.Z, "z is untouched by rotation")
}

func TestRotatePreservesUnitLength(t *testing.T) {
	d := New(1, 0, 0)
	for i := 0; i < 10000; i++ {
		d.Rotate(0.05)
		assert.InDelta(t, 1.0, d.Length(), Epsilon)
	}

	for _, angle := range []float64{-math.Pi, -1, 0, 0.3, math.Pi / 3, 2 * math.Pi, 100} {
		u := New(math.Sqrt2/2, math.Sqrt2/2, 0)
		u.Rotate(angle)
		assert.InDelta(t, 1.0, u.Length(), Epsilon, "angle %v", angle)
	}
}

func TestNormalize(t *testing.T) {
	v := New(3, 4, 0)
	v.Normalize()
	assert.InDelta(t, 0.6, v.X, Epsilon)
	assert.InDelta(t, 0.8, v.Y, Epsilon)

	zero := New(0, 5e-7, 0)
	zero.Normalize()
	assert.Equal(t, New(0, 5e-7, 0), zero, "near-zero vectors are left alone")
}
