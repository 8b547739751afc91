package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObstaclePlacement(t *testing.T) {
	c := straightCurve(t)
	scene := NewMemoryScene()
	var field ObstacleField

	first := field.Place(c, NewRand(3), scene)
	assert.Len(t, first, ObstaclesPerStage)
	assert.Equal(t, ObstaclesPerStage, scene.Len())
	for _, o := range first {
		assert.Equal(t, KindObstacle, o.Kind)
		assert.Equal(t, ObstacleY, o.Position.Y())
		// The straight curve runs along x=0, so x is pure jitter.
		assert.LessOrEqual(t, math.Abs(o.Position.X()), ObstacleJitter)
		assert.LessOrEqual(t, o.Position.Z(), 0.0)
		assert.GreaterOrEqual(t, o.Position.Z(), -20.0)
	}

	second := field.Place(c, NewRand(4), scene)
	assert.Len(t, second, ObstaclesPerStage)
	assert.Equal(t, ObstaclesPerStage, scene.Len())
	assert.Equal(t, 2*ObstaclesPerStage, scene.Added)
	assert.Equal(t, ObstaclesPerStage, scene.Removed)
	for _, o := range first {
		assert.NotContains(t, scene.Items(), o)
	}
}
