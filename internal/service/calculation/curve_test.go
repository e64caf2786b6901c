package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pts(xy ...float64) Curve {
	c := make(Curve, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		c = append(c, CurvePoint{X: Number(xy[i]), Y: Number(xy[i+1])})
	}
	return c
}

func TestInterpolate_EmptyAndSinglePoint(t *testing.T) {
	assert.Equal(t, 0.0, Interpolate(10, nil))
	assert.Equal(t, 0.0, ReverseInterpolate(10, Curve{}))

	single := pts(500, 70)
	assert.Equal(t, 70.0, Interpolate(500, single))
	assert.Equal(t, 70.0, Interpolate(10, single))
	assert.Equal(t, 70.0, Interpolate(9000, single))
	assert.Equal(t, 500.0, ReverseInterpolate(1, single))
}

func TestInterpolate_ExactAtKnots(t *testing.T) {
	// stored out of order on purpose
	curve := pts(200, 150, 0, 0, 100, 50, 350, 151.7)

	for _, p := range curve {
		assert.Equal(t, p.Y.Float(), Interpolate(p.X.Float(), curve), "x=%v", p.X)
	}
}

func TestInterpolate_Segments(t *testing.T) {
	curve := pts(200, 150, 0, 0, 100, 50)

	assert.InDelta(t, 25.0, Interpolate(50, curve), 1e-9)
	assert.InDelta(t, 100.0, Interpolate(150, curve), 1e-9)
}

func TestInterpolate_Extrapolation(t *testing.T) {
	curve := pts(0, 0, 100, 50, 200, 150)

	// left: line through (0,0) and (100,50)
	assert.InDelta(t, -50.0, Interpolate(-100, curve), 1e-9)
	assert.InDelta(t, -5.0, Interpolate(-10, curve), 1e-9)

	// right: line through (100,50) and (200,150)
	assert.InDelta(t, 250.0, Interpolate(300, curve), 1e-9)
	assert.InDelta(t, 1150.0, Interpolate(1200, curve), 1e-9)
}

func TestReverseInterpolate_InverseConsistency(t *testing.T) {
	curve := pts(0, 10, 100, 50, 250, 80, 400, 200)

	for _, x := range []float64{-20, 0, 12.5, 99, 100, 180, 333, 400, 650} {
		y := Interpolate(x, curve)
		assert.InDelta(t, x, ReverseInterpolate(y, curve), 1e-9, "x=%v", x)
	}
}

func TestReverseInterpolate_Extrapolation(t *testing.T) {
	curve := pts(0, 0, 100, 50, 200, 150)

	assert.InDelta(t, 50.0, ReverseInterpolate(25, curve), 1e-9)
	assert.InDelta(t, 300.0, ReverseInterpolate(250, curve), 1e-9)
	assert.InDelta(t, -100.0, ReverseInterpolate(-50, curve), 1e-9)
}

func TestInterpolate_DuplicateXFirstStoredWins(t *testing.T) {
	curve := pts(0, 0, 100, 10, 100, 20, 200, 40)
	assert.Equal(t, 10.0, Interpolate(100, curve))
	assert.InDelta(t, 25.0, Interpolate(150, curve), 1e-9)

	swapped := pts(100, 20, 0, 0, 100, 10, 200, 40)
	assert.Equal(t, 20.0, Interpolate(100, swapped))
	assert.InDelta(t, 30.0, Interpolate(150, swapped), 1e-9)
}

func TestReverseInterpolate_FlatSegment(t *testing.T) {
	curve := pts(0, 5, 10, 5, 20, 15)

	assert.InDelta(t, 0.0, ReverseInterpolate(5, curve), 1e-9)
	assert.InDelta(t, 10.0, ReverseInterpolate(10, curve), 1e-9)
}
